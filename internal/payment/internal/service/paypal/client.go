// Copyright 2024 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/artmart/internal/payment/internal/domain"
	"github.com/ecodeclub/artmart/internal/payment/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"golang.org/x/oauth2/clientcredentials"
)

// PayPal Orders v2 的两阶段协议: 先创建订单(意向), 买家在前端授权,
// 服务端再对意向执行捕获。认证走 OAuth2 client credentials
type Config struct {
	BaseURL      string        `yaml:"baseURL"`
	ClientID     string        `yaml:"clientID"`
	ClientSecret string        `yaml:"clientSecret"`
	Timeout      time.Duration `yaml:"timeout"`
}

var _ service.GatewayService = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	baseURL    string
	l          *elog.Component
}

func NewClient(cfg Config) *Client {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.BaseURL + "/v1/oauth2/token",
	}
	httpClient := cc.Client(context.Background())
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		l:          elog.DefaultLogger,
	}
}

type amountBody struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type createOrderReq struct {
	Intent        string `json:"intent"`
	PurchaseUnits []struct {
		Amount amountBody `json:"amount"`
	} `json:"purchase_units"`
}

type orderResp struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string     `json:"id"`
				Status string     `json:"status"`
				Amount amountBody `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

type errorResp struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Details []struct {
		Issue       string `json:"issue"`
		Description string `json:"description"`
	} `json:"details"`
}

func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: %d", service.ErrInvalidAmount, amount)
	}

	var req createOrderReq
	req.Intent = "CAPTURE"
	req.PurchaseUnits = make([]struct {
		Amount amountBody `json:"amount"`
	}, 1)
	req.PurchaseUnits[0].Amount = amountBody{
		CurrencyCode: currency,
		Value:        centsToValue(amount),
	}

	var resp orderResp
	if err := c.post(ctx, "/v2/checkout/orders", req, &resp); err != nil {
		gatewayRequests.WithLabelValues("create", "error").Inc()
		return "", fmt.Errorf("%w: %s", service.ErrGatewayUnavailable, err.Error())
	}
	if resp.ID == "" {
		gatewayRequests.WithLabelValues("create", "error").Inc()
		return "", fmt.Errorf("%w: 响应缺少意向ID", service.ErrGatewayUnavailable)
	}
	gatewayRequests.WithLabelValues("create", "ok").Inc()
	return resp.ID, nil
}

func (c *Client) CaptureIntent(ctx context.Context, intentID string) (domain.Capture, error) {
	var resp orderResp
	err := c.post(ctx, fmt.Sprintf("/v2/checkout/orders/%s/capture", intentID), struct{}{}, &resp)
	if err != nil {
		var gwErr *gatewayError
		if errors.As(err, &gwErr) && gwErr.hasIssue("ORDER_ALREADY_CAPTURED") {
			gatewayRequests.WithLabelValues("capture", "duplicate").Inc()
			return domain.Capture{}, fmt.Errorf("%w: %s", service.ErrDuplicateCapture, intentID)
		}
		gatewayRequests.WithLabelValues("capture", "error").Inc()
		return domain.Capture{}, fmt.Errorf("%w: %s", service.ErrGatewayCaptureFailed, err.Error())
	}

	if resp.Status != "COMPLETED" {
		c.l.Warn("PayPal捕获返回非完成状态",
			elog.String("intentID", intentID),
			elog.String("status", resp.Status),
		)
		gatewayRequests.WithLabelValues("capture", "error").Inc()
		return domain.Capture{}, fmt.Errorf("%w: 状态为%s", service.ErrGatewayCaptureFailed, resp.Status)
	}

	capture, err := c.extractCapture(intentID, resp)
	if err != nil {
		gatewayRequests.WithLabelValues("capture", "error").Inc()
		return domain.Capture{}, err
	}
	gatewayRequests.WithLabelValues("capture", "ok").Inc()
	gatewayCapturedAmount.Add(float64(capture.Amount))
	return capture, nil
}

func (c *Client) extractCapture(intentID string, resp orderResp) (domain.Capture, error) {
	if len(resp.PurchaseUnits) == 0 || len(resp.PurchaseUnits[0].Payments.Captures) == 0 {
		return domain.Capture{}, fmt.Errorf("%w: 响应缺少捕获记录", service.ErrGatewayCaptureFailed)
	}
	cap3rd := resp.PurchaseUnits[0].Payments.Captures[0]
	amount, err := valueToCents(cap3rd.Amount.Value)
	if err != nil {
		return domain.Capture{}, fmt.Errorf("%w: 金额解析失败: %s", service.ErrGatewayCaptureFailed, err.Error())
	}
	return domain.Capture{
		IntentID:  intentID,
		Amount:    amount,
		Reference: cap3rd.ID,
	}, nil
}

// gatewayError 网关返回的业务错误, 4xx带错误体
type gatewayError struct {
	statusCode int
	body       errorResp
}

func (e *gatewayError) Error() string {
	return fmt.Sprintf("网关返回%d: %s", e.statusCode, e.body.Name)
}

func (e *gatewayError) hasIssue(issue string) bool {
	for _, d := range e.body.Details {
		if d.Issue == issue {
			return true
		}
	}
	return false
}

func (c *Client) post(ctx context.Context, path string, reqBody any, respBody any) error {
	data, err := json.Marshal(reqBody)
	if err != nil {
		return errors.Wrap(err, "序列化请求失败")
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "构造请求失败")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "请求网关失败")
	}
	defer func() { _ = httpResp.Body.Close() }()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return errors.Wrap(err, "读取响应失败")
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		var eResp errorResp
		// 错误体解析失败也没关系, statusCode足够定位
		_ = json.Unmarshal(raw, &eResp)
		return &gatewayError{statusCode: httpResp.StatusCode, body: eResp}
	}

	if err = json.Unmarshal(raw, respBody); err != nil {
		return errors.Wrap(err, "解析响应失败")
	}
	return nil
}

// centsToValue 分转为网关要求的十进制字符串, 999 -> "9.99"
func centsToValue(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func valueToCents(value string) (int64, error) {
	whole, frac, found := strings.Cut(value, ".")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	if !found {
		return w * 100, nil
	}
	if len(frac) == 1 {
		frac += "0"
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, err
	}
	return w*100 + f, nil
}

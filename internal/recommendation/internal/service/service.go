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

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

var (
	// ErrClientError 客户端错误(4xx), 不应重试
	ErrClientError = errors.New("客户端错误")
	// ErrServerError 服务端错误(5xx), 应该重试
	ErrServerError = errors.New("服务端错误")
	// ErrNetworkError 网络错误, 应该重试
	ErrNetworkError = errors.New("网络错误")
)

// HTTPClient 便于测试时 mock
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Service 推荐服务的薄客户端。嵌入向量的计算和相似度检索都在外部服务中,
// 本端只负责查询推荐和上报购买信号
//
//go:generate mockgen -source=./service.go -destination=../../mocks/recommendation.mock.go -package=recommendationmocks -typed=true Service
type Service interface {
	// Suggest 查询为某个用户推荐的作品ID列表
	Suggest(ctx context.Context, userID int64, limit int) ([]int64, error)
	// ReportPurchase 上报一笔购买信号, 服务端错误按指数退避重试
	ReportPurchase(ctx context.Context, userID, artworkID, price int64) error
}

type HTTPRecommendationService struct {
	baseURL     string
	client      HTTPClient
	interval    time.Duration
	maxInterval time.Duration
	maxRetries  int32
}

var _ Service = (*HTTPRecommendationService)(nil)

func NewHTTPRecommendationService(baseURL string, client HTTPClient,
	interval, maxInterval time.Duration, maxRetries int32) *HTTPRecommendationService {
	return &HTTPRecommendationService{
		baseURL:     baseURL,
		client:      client,
		interval:    interval,
		maxInterval: maxInterval,
		maxRetries:  maxRetries,
	}
}

func (s *HTTPRecommendationService) Suggest(ctx context.Context, userID int64, limit int) ([]int64, error) {
	url := fmt.Sprintf("%s/api/v1/suggest?userId=%d&limit=%d", s.baseURL, userID, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: 创建请求失败: %v", ErrClientError, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: 请求失败: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := s.classifyStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var body struct {
		ArtworkIDs []int64 `json:"artworkIds"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: 解析响应失败: %v", ErrServerError, err)
	}
	return body.ArtworkIDs, nil
}

func (s *HTTPRecommendationService) ReportPurchase(ctx context.Context, userID, artworkID, price int64) error {
	return s.doWithRetry(ctx, func() error {
		return s.reportPurchaseOnce(ctx, userID, artworkID, price)
	})
}

func (s *HTTPRecommendationService) reportPurchaseOnce(ctx context.Context, userID, artworkID, price int64) error {
	reqBody := map[string]any{
		"userId":    userID,
		"artworkId": artworkID,
		"price":     price,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("%w: 序列化请求失败: %v", ErrClientError, err)
	}

	url := fmt.Sprintf("%s/api/v1/signals/purchase", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: 创建请求失败: %v", ErrClientError, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: 请求失败: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()
	return s.classifyStatus(resp.StatusCode)
}

func (s *HTTPRecommendationService) classifyStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code >= 400 && code < 500:
		return fmt.Errorf("%w: 状态码 %d", ErrClientError, code)
	default:
		return fmt.Errorf("%w: 状态码 %d", ErrServerError, code)
	}
}

func (s *HTTPRecommendationService) doWithRetry(ctx context.Context, operation func() error) error {
	retryStrategy, err := retry.NewExponentialBackoffRetryStrategy(s.interval, s.maxInterval, s.maxRetries)
	if err != nil {
		return fmt.Errorf("创建重试策略失败: %w", err)
	}

	var lastErr error
	for {
		if ctx.Err() != nil {
			return fmt.Errorf("context已取消: %w", ctx.Err())
		}

		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		// 客户端错误不重试
		if errors.Is(err, ErrClientError) {
			return err
		}

		next, ok := retryStrategy.Next()
		if !ok {
			return fmt.Errorf("超过最大重试次数, 最后一次错误: %w", lastErr)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("context已取消: %w", ctx.Err())
		case <-time.After(next):
		}
	}
}

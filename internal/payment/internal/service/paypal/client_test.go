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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/artmart/internal/payment/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient 起一个假网关, handler只处理业务端点, token端点由这里兜底
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/oauth2/token" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"bearer","expires_in":3600}`))
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:      srv.URL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Timeout:      time.Second,
	})
}

func TestClient_CreateIntent(t *testing.T) {
	t.Run("创建意向", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v2/checkout/orders", r.URL.Path)
			var req createOrderReq
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "CAPTURE", req.Intent)
			require.Len(t, req.PurchaseUnits, 1)
			assert.Equal(t, amountBody{CurrencyCode: "USD", Value: "40.00"}, req.PurchaseUnits[0].Amount)
			_, _ = w.Write([]byte(`{"id":"PAY-1","status":"CREATED"}`))
		})

		intentID, err := client.CreateIntent(context.Background(), 4000, "USD")
		require.NoError(t, err)
		assert.Equal(t, "PAY-1", intentID)
	})

	t.Run("非正金额直接拒绝", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("非正金额不应该打到网关")
		})
		for _, amount := range []int64{0, -100} {
			_, err := client.CreateIntent(context.Background(), amount, "USD")
			assert.ErrorIs(t, err, service.ErrInvalidAmount)
		}
	})

	t.Run("服务端错误", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"name":"INTERNAL_SERVER_ERROR"}`))
		})
		_, err := client.CreateIntent(context.Background(), 4000, "USD")
		assert.ErrorIs(t, err, service.ErrGatewayUnavailable)
	})

	t.Run("响应缺少意向ID", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"CREATED"}`))
		})
		_, err := client.CreateIntent(context.Background(), 4000, "USD")
		assert.ErrorIs(t, err, service.ErrGatewayUnavailable)
	})
}

func TestClient_CaptureIntent(t *testing.T) {
	t.Run("捕获成功", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v2/checkout/orders/PAY-1/capture", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"id": "PAY-1",
				"status": "COMPLETED",
				"purchase_units": [{
					"payments": {
						"captures": [{"id": "TXN-1", "status": "COMPLETED",
							"amount": {"currency_code": "USD", "value": "40.00"}}]
					}
				}]
			}`))
		})

		capture, err := client.CaptureIntent(context.Background(), "PAY-1")
		require.NoError(t, err)
		assert.Equal(t, "PAY-1", capture.IntentID)
		assert.Equal(t, "TXN-1", capture.Reference)
		assert.Equal(t, int64(4000), capture.Amount)
	})

	t.Run("重复捕获", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{
				"name": "UNPROCESSABLE_ENTITY",
				"details": [{"issue": "ORDER_ALREADY_CAPTURED", "description": "Order already captured."}]
			}`))
		})

		_, err := client.CaptureIntent(context.Background(), "PAY-1")
		assert.ErrorIs(t, err, service.ErrDuplicateCapture)
	})

	t.Run("其他网关错误按捕获失败处理", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{
				"name": "UNPROCESSABLE_ENTITY",
				"details": [{"issue": "ORDER_NOT_APPROVED"}]
			}`))
		})

		_, err := client.CaptureIntent(context.Background(), "PAY-1")
		assert.ErrorIs(t, err, service.ErrGatewayCaptureFailed)
		assert.NotErrorIs(t, err, service.ErrDuplicateCapture)
	})

	t.Run("捕获状态非完成", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"PAY-1","status":"PENDING"}`))
		})

		_, err := client.CaptureIntent(context.Background(), "PAY-1")
		assert.ErrorIs(t, err, service.ErrGatewayCaptureFailed)
	})

	t.Run("响应缺少捕获记录", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"PAY-1","status":"COMPLETED"}`))
		})

		_, err := client.CaptureIntent(context.Background(), "PAY-1")
		assert.ErrorIs(t, err, service.ErrGatewayCaptureFailed)
	})
}

func TestCentsConversion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		cents int64
		value string
	}{
		{cents: 0, value: "0.00"},
		{cents: 5, value: "0.05"},
		{cents: 999, value: "9.99"},
		{cents: 4000, value: "40.00"},
		{cents: 123456, value: "1234.56"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.value, centsToValue(tc.cents))
		got, err := valueToCents(tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.cents, got)
	}

	// 网关偶尔省略末尾的零
	got, err := valueToCents("9.9")
	require.NoError(t, err)
	assert.Equal(t, int64(990), got)

	got, err = valueToCents("40")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), got)

	_, err = valueToCents("abc")
	assert.Error(t, err)
}

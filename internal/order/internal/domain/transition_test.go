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

package domain

import (
	"testing"

	"github.com/ecodeclub/artmart/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSellerID = int64(200)
	testBuyerID  = int64(100)
)

func testOrder(method payment.Method, status OrderStatus) Order {
	return Order{
		ID:          1,
		SN:          "SN100",
		BuyerID:     testBuyerID,
		Method:      method,
		Status:      status,
		TotalAmount: 1500,
		Lines: []OrderLine{
			{OrderID: 1, ArtworkID: 11, SellerID: testSellerID, Title: "日出", Price: 1500},
		},
	}
}

func TestOrder_Advance(t *testing.T) {
	t.Parallel()

	allStatuses := []OrderStatus{
		StatusPending, StatusPaid, StatusAccepted,
		StatusShipped, StatusDelivered, StatusPaymentReceived,
	}
	allowed := map[payment.Method]map[OrderStatus]OrderStatus{
		payment.MethodCashOnDelivery: {
			StatusPending:   StatusAccepted,
			StatusAccepted:  StatusShipped,
			StatusShipped:   StatusDelivered,
			StatusDelivered: StatusPaymentReceived,
		},
		payment.MethodGateway: {
			StatusPaid:     StatusAccepted,
			StatusAccepted: StatusShipped,
			StatusShipped:  StatusDelivered,
		},
	}

	// 穷举 (支付方式, 当前状态, 目标状态), 流转表之外的组合必须全部被拒绝
	for _, method := range []payment.Method{payment.MethodCashOnDelivery, payment.MethodGateway} {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				order := testOrder(method, from)
				updated, err := order.Advance(to, testSellerID)
				if allowed[method][from] == to {
					require.NoError(t, err, "method=%d from=%d to=%d", method, from, to)
					assert.Equal(t, to, updated.Status)
				} else {
					assert.ErrorIs(t, err, ErrInvalidTransition, "method=%d from=%d to=%d", method, from, to)
					assert.Equal(t, from, updated.Status)
				}
			}
		}
	}
}

func TestOrder_Advance_Unauthorized(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		actorID int64
	}{
		{name: "买家不能流转自己的订单", actorID: testBuyerID},
		{name: "无关用户不能流转订单", actorID: 999},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := testOrder(payment.MethodCashOnDelivery, StatusPending)
			updated, err := order.Advance(StatusAccepted, tc.actorID)
			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.Equal(t, StatusPending, updated.Status)
		})
	}
}

func TestOrder_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		order   Order
		wantErr bool
	}{
		{
			name: "行价之和等于总价",
			order: Order{
				TotalAmount: 3000,
				Lines: []OrderLine{
					{ArtworkID: 1, SellerID: 2, Price: 1000},
					{ArtworkID: 2, SellerID: 3, Price: 2000},
				},
			},
		},
		{
			name: "行价之和不等于总价",
			order: Order{
				TotalAmount: 2999,
				Lines: []OrderLine{
					{ArtworkID: 1, SellerID: 2, Price: 1000},
					{ArtworkID: 2, SellerID: 3, Price: 2000},
				},
			},
			wantErr: true,
		},
		{
			name:    "空订单行总价必须为零",
			order:   Order{TotalAmount: 100},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

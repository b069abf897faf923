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
	"errors"

	"github.com/ecodeclub/artmart/internal/payment"
)

var (
	ErrInvalidTransition = errors.New("非法的订单状态流转")
	ErrUnauthorized      = errors.New("无权操作该订单")
)

// transition 状态只进不退, 流转表之外的一切请求都拒绝
type transition struct {
	from OrderStatus
	to   OrderStatus
	// method 为0表示不区分支付方式
	method payment.Method
}

var transitions = []transition{
	// 货到付款从待处理开始, 网关订单捕获后即为已支付
	{from: StatusPending, to: StatusAccepted, method: payment.MethodCashOnDelivery},
	{from: StatusPaid, to: StatusAccepted, method: payment.MethodGateway},
	{from: StatusAccepted, to: StatusShipped},
	{from: StatusShipped, to: StatusDelivered},
	// 网关订单在已支付时资金已结清, 永远不会到达已收款
	{from: StatusDelivered, to: StatusPaymentReceived, method: payment.MethodCashOnDelivery},
}

// Advance 校验并返回流转后的订单。所有流转都只有订单行上的卖家可以触发,
// 校验失败时订单保持原状
func (o Order) Advance(to OrderStatus, actorID int64) (Order, error) {
	if !o.hasSeller(actorID) {
		return o, ErrUnauthorized
	}
	for _, t := range transitions {
		if t.from != o.Status || t.to != to {
			continue
		}
		if t.method != 0 && t.method != o.Method {
			continue
		}
		o.Status = to
		return o, nil
	}
	return o, ErrInvalidTransition
}

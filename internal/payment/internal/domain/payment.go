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

type Method uint8

func (m Method) ToUint8() uint8 {
	return uint8(m)
}

const (
	// MethodGateway 外部网关两阶段支付: 先创建意向再捕获
	MethodGateway Method = 1
	// MethodCashOnDelivery 货到付款, 不经过网关, 没有任何外部状态
	MethodCashOnDelivery Method = 2
)

// Capture 对已创建意向的最终扣款结果
type Capture struct {
	IntentID string
	// Amount 网关实际捕获的金额, 单位为分
	Amount int64
	// Reference 网关侧的外部交易引用
	Reference string
}

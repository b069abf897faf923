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

// Notification 订单动态产生的站内通知, 买家和订单行上的每个卖家各一条
type Notification struct {
	ID      int64
	UID     int64
	OrderSN string
	// OrderStatus 触发本条通知的订单状态
	OrderStatus uint8
	Content     string
	Read        bool
	Ctime       int64
	Utime       int64
}

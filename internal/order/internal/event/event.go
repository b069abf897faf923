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

package event

const OrderEventName = "order_events"

// OrderEvent 订单创建和每次状态流转都会发出, 供通知、推荐等旁路消费,
// 投递失败绝不回滚产生它的事务
type OrderEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerID"`
	// ActorID 触发本次变更的用户, 创建订单时等于买家
	ActorID int64  `json:"actorID"`
	Status  uint8  `json:"status"`
	Lines   []Line `json:"lines"`
}

type Line struct {
	ArtworkID int64 `json:"artworkID"`
	SellerID  int64 `json:"sellerID"`
	Price     int64 `json:"price"`
}

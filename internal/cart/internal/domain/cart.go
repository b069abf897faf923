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

// Cart 购物车归属于唯一的买家, 首次加购时隐式创建, 结算成功后清空而非删除
type Cart struct {
	BuyerID int64
	Items   []CartItem
}

// CartItem 展示字段来自加购时刻的作品信息, 价格以结算时刻为准, 这里仅供展示
type CartItem struct {
	ArtworkID int64
	SellerID  int64
	Title     string
	Image     string
	Price     int64
	Ctime     int64
}

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

package web

// AddCartItemReq 加购请求
type AddCartItemReq struct {
	ArtworkID int64 `json:"artworkID"`
}

// RemoveCartItemReq 移除购物车条目请求
type RemoveCartItemReq struct {
	ArtworkID int64 `json:"artworkID"`
}

type CartResp struct {
	Cart Cart `json:"cart"`
}

type Cart struct {
	Items       []CartItem `json:"items"`
	TotalAmount int64      `json:"totalAmount"`
}

type CartItem struct {
	ArtworkID int64  `json:"artworkID"`
	SellerID  int64  `json:"sellerID"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
}

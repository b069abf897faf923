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

type PreviewCheckoutResp struct {
	TotalAmount int64       `json:"totalAmount"`
	Items       []OrderLine `json:"items"`
}

type CreateIntentResp struct {
	IntentID string `json:"intentId"`
}

type CaptureOrderReq struct {
	RequestID string   `json:"requestId"`
	IntentID  string   `json:"intentId"`
	Shipping  Shipping `json:"shipping"`
}

type CreateCODOrderReq struct {
	RequestID string   `json:"requestId"`
	Shipping  Shipping `json:"shipping"`
}

type UpdateOrderStatusReq struct {
	Status uint8 `json:"status"`
}

type OrderResp struct {
	Order Order `json:"order"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type Order struct {
	ID               int64       `json:"id"`
	SN               string      `json:"sn"`
	Method           uint8       `json:"method"`
	Status           uint8       `json:"status"`
	TotalAmount      int64       `json:"totalAmount"`
	PaymentReference string      `json:"paymentReference,omitempty"`
	Shipping         Shipping    `json:"shipping"`
	Lines            []OrderLine `json:"lines"`
	Ctime            int64       `json:"ctime"`
}

type OrderLine struct {
	ArtworkID int64  `json:"artworkId"`
	SellerID  int64  `json:"sellerId"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
}

// Shipping 下单时买家填写的收货信息, 全部为可选文本, 原样存储
type Shipping struct {
	Recipient   string `json:"recipient"`
	Phone       string `json:"phone"`
	Street      string `json:"street"`
	District    string `json:"district"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
	GiftMessage string `json:"giftMessage"`
}

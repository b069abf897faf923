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
	"fmt"

	"github.com/ecodeclub/artmart/internal/payment"
)

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusPending 货到付款订单的初始状态
	StatusPending OrderStatus = 1
	// StatusPaid 网关订单捕获成功后的初始状态, 资金已结清
	StatusPaid      OrderStatus = 2
	StatusAccepted  OrderStatus = 3
	StatusShipped   OrderStatus = 4
	StatusDelivered OrderStatus = 5
	// StatusPaymentReceived 仅货到付款订单可达的终态
	StatusPaymentReceived OrderStatus = 6
)

// Order 结算成功时一次性创建, 除status和时间戳外不可变
type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	Method  payment.Method
	Status  OrderStatus
	// TotalAmount 恒等于各行冻结价格之和
	TotalAmount int64
	// PaymentIntentID 网关支付意向ID, 仅网关订单存在, 也是幂等防护的键
	PaymentIntentID string
	// PaymentReference 网关侧交易引用, 捕获成功后回填
	PaymentReference string
	Shipping         ShippingSnapshot
	Lines            []OrderLine
	Ctime            int64
	Utime            int64
}

// Validate 校验行价之和与总价的恒等式
func (o Order) Validate() error {
	var sum int64
	for _, line := range o.Lines {
		sum += line.Price
	}
	if sum != o.TotalAmount {
		return fmt.Errorf("订单总价%d与行价之和%d不一致", o.TotalAmount, sum)
	}
	return nil
}

func (o Order) hasSeller(uid int64) bool {
	for _, line := range o.Lines {
		if line.SellerID == uid {
			return true
		}
	}
	return false
}

// OrderLine 购买时刻冻结的一行作品, 之后目录改价不影响历史订单
type OrderLine struct {
	OrderID   int64
	ArtworkID int64
	SellerID  int64
	Title     string
	Image     string
	Price     int64
}

// ShippingSnapshot 下单时从买家输入原样拷贝, 不引用可变的个人资料
type ShippingSnapshot struct {
	Recipient   string
	Phone       string
	Street      string
	District    string
	City        string
	State       string
	Zip         string
	Country     string
	GiftMessage string
}

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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/artmart/internal/order/internal/domain"
	"github.com/ecodeclub/artmart/internal/order/internal/repository/dao"
	"github.com/ecodeclub/artmart/internal/payment"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrEmptyCart              = dao.ErrEmptyCart
	ErrOrderNotFound          = dao.ErrOrderNotFound
	ErrConcurrentStatusChange = dao.ErrConcurrentStatusChange
)

type OrderRepository interface {
	// CreateFromCart 原子地完成订单创建与购物车清空。created为false表示
	// 撞上了支付意向的幂等防护, 返回的是已存在的订单
	CreateFromCart(ctx context.Context, order domain.Order) (domain.Order, bool, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus) error
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, error)
	CountBySellerID(ctx context.Context, sellerID int64) (int64, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateFromCart(ctx context.Context, order domain.Order) (domain.Order, bool, error) {
	entity, lines, created, err := o.d.CreateFromCart(ctx, o.toEntity(order))
	if err != nil {
		return domain.Order{}, false, err
	}
	res := o.toDomain(entity, lines)
	// 总价与行价之和的恒等式在落库边界上把关
	if err := res.Validate(); err != nil {
		return domain.Order{}, false, err
	}
	return res, created, nil
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	entity, lines, err := o.d.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(entity, lines), nil
}

func (o *orderRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (domain.Order, error) {
	entity, lines, err := o.d.FindByPaymentIntentID(ctx, intentID)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(entity, lines), nil
}

func (o *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus) error {
	return o.d.UpdateStatus(ctx, orderID, from.ToUint8(), to.ToUint8())
}

func (o *orderRepository) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	entities, err := o.d.ListByBuyerID(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomainList(ctx, entities)
}

func (o *orderRepository) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.CountByBuyerID(ctx, buyerID)
}

func (o *orderRepository) ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, error) {
	entities, err := o.d.ListBySellerID(ctx, sellerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomainList(ctx, entities)
}

func (o *orderRepository) CountBySellerID(ctx context.Context, sellerID int64) (int64, error) {
	return o.d.CountBySellerID(ctx, sellerID)
}

func (o *orderRepository) toDomainList(ctx context.Context, entities []dao.Order) ([]domain.Order, error) {
	if len(entities) == 0 {
		return []domain.Order{}, nil
	}
	ids := slice.Map(entities, func(idx int, src dao.Order) int64 {
		return src.Id
	})
	lines, err := o.d.FindLinesByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	linesByOrder := make(map[int64][]dao.OrderLine, len(entities))
	for _, line := range lines {
		linesByOrder[line.OrderId] = append(linesByOrder[line.OrderId], line)
	}
	return slice.Map(entities, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src, linesByOrder[src.Id])
	}), nil
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:      order.ID,
		SN:      order.SN,
		BuyerId: order.BuyerID,
		Method:  order.Method.ToUint8(),
		Status:  order.Status.ToUint8(),
		PaymentIntentId: sql.NullString{
			String: order.PaymentIntentID,
			Valid:  order.PaymentIntentID != "",
		},
		PaymentReference: sql.NullString{
			String: order.PaymentReference,
			Valid:  order.PaymentReference != "",
		},
		TotalAmount: order.TotalAmount,
		Recipient:   order.Shipping.Recipient,
		Phone:       order.Shipping.Phone,
		Street:      order.Shipping.Street,
		District:    order.Shipping.District,
		City:        order.Shipping.City,
		State:       order.Shipping.State,
		Zip:         order.Shipping.Zip,
		Country:     order.Shipping.Country,
		GiftMessage: order.Shipping.GiftMessage,
	}
}

func (o *orderRepository) toDomain(order dao.Order, lines []dao.OrderLine) domain.Order {
	return domain.Order{
		ID:               order.Id,
		SN:               order.SN,
		BuyerID:          order.BuyerId,
		Method:           payment.Method(order.Method),
		Status:           domain.OrderStatus(order.Status),
		TotalAmount:      order.TotalAmount,
		PaymentIntentID:  order.PaymentIntentId.String,
		PaymentReference: order.PaymentReference.String,
		Shipping: domain.ShippingSnapshot{
			Recipient:   order.Recipient,
			Phone:       order.Phone,
			Street:      order.Street,
			District:    order.District,
			City:        order.City,
			State:       order.State,
			Zip:         order.Zip,
			Country:     order.Country,
			GiftMessage: order.GiftMessage,
		},
		Lines: slice.Map(lines, func(idx int, src dao.OrderLine) domain.OrderLine {
			return domain.OrderLine{
				OrderID:   src.OrderId,
				ArtworkID: src.ArtworkId,
				SellerID:  src.SellerId,
				Title:     src.Title,
				Image:     src.Image,
				Price:     src.Price,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}

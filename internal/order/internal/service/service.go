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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/artmart/internal/cart"
	"github.com/ecodeclub/artmart/internal/order/internal/domain"
	"github.com/ecodeclub/artmart/internal/order/internal/event"
	"github.com/ecodeclub/artmart/internal/order/internal/repository"
	"github.com/ecodeclub/artmart/internal/payment"
	"github.com/ecodeclub/artmart/internal/pkg/sequencenumber"
	"github.com/ecodeclub/artmart/internal/recon"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart            = repository.ErrEmptyCart
	ErrOrderNotFound        = repository.ErrOrderNotFound
	ErrInvalidAmount        = payment.ErrInvalidAmount
	ErrInvalidTransition    = domain.ErrInvalidTransition
	ErrUnauthorized         = domain.ErrUnauthorized
	ErrGatewayUnavailable   = payment.ErrGatewayUnavailable
	ErrGatewayCaptureFailed = payment.ErrGatewayCaptureFailed
)

const currency = "USD"

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// PreviewCheckout 返回当前购物车的快照和应付总额, 没有任何副作用
	PreviewCheckout(ctx context.Context, buyerID int64) (cart.Cart, int64, error)
	// CreateGatewayIntent 在网关侧为购物车总额预占一笔支付。本系统不落任何
	// 持久状态, 调用方超时后直接重试即可
	CreateGatewayIntent(ctx context.Context, buyerID int64) (string, error)
	// CaptureAndCreateOrder 捕获网关支付并原子地创建订单、清空购物车。
	// 同一意向重复调用返回同一订单
	CaptureAndCreateOrder(ctx context.Context, buyerID int64, intentID string, shipping domain.ShippingSnapshot) (domain.Order, error)
	// CreateCODOrder 货到付款下单, 不经过网关
	CreateCODOrder(ctx context.Context, buyerID int64, shipping domain.ShippingSnapshot) (domain.Order, error)
	// UpdateStatus 卖家推进订单状态, 非法流转和越权一律拒绝
	UpdateStatus(ctx context.Context, orderID, actorID int64, target domain.OrderStatus) (domain.Order, error)
	ListBuyerOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	ListSellerOrders(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, int64, error)
	// OrderExistsByIntentID 供对账任务核对已捕获支付是否落成订单
	OrderExistsByIntentID(ctx context.Context, intentID string) (bool, error)
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	gatewaySvc payment.GatewayService,
	reconSvc recon.Service,
	snGenerator *sequencenumber.Generator,
	producer event.OrderEventProducer) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		gatewaySvc:  gatewaySvc,
		reconSvc:    reconSvc,
		snGenerator: snGenerator,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	gatewaySvc  payment.GatewayService
	reconSvc    recon.Service
	snGenerator *sequencenumber.Generator
	producer    event.OrderEventProducer
	logger      *elog.Component
}

func (s *service) PreviewCheckout(ctx context.Context, buyerID int64) (cart.Cart, int64, error) {
	c, err := s.cartSvc.GetCart(ctx, buyerID)
	if err != nil {
		return cart.Cart{}, 0, fmt.Errorf("获取购物车失败: %w", err)
	}
	if len(c.Items) == 0 {
		return cart.Cart{}, 0, ErrEmptyCart
	}
	var total int64
	for _, item := range c.Items {
		total += item.Price
	}
	return c, total, nil
}

func (s *service) CreateGatewayIntent(ctx context.Context, buyerID int64) (string, error) {
	_, total, err := s.PreviewCheckout(ctx, buyerID)
	if err != nil {
		return "", err
	}
	// 零元购物车走不了网关, 买家应改用货到付款
	if total <= 0 {
		return "", ErrInvalidAmount
	}
	intentID, err := s.gatewaySvc.CreateIntent(ctx, total, currency)
	if err != nil {
		return "", fmt.Errorf("创建支付意向失败: %w", err)
	}
	return intentID, nil
}

func (s *service) CaptureAndCreateOrder(ctx context.Context, buyerID int64, intentID string, shipping domain.ShippingSnapshot) (domain.Order, error) {
	// 捕获之前先查一次, 重试请求不必再打网关
	existing, err := s.repo.FindByPaymentIntentID(ctx, intentID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrOrderNotFound) {
		return domain.Order{}, fmt.Errorf("查询支付意向订单失败: %w", err)
	}

	capture, err := s.gatewaySvc.CaptureIntent(ctx, intentID)
	if err != nil {
		if errors.Is(err, payment.ErrDuplicateCapture) {
			// 钱已经在更早的请求中扣了。订单存在就返回订单,
			// 不存在说明上次落库失败, 只能留对账记录
			existing, ferr := s.repo.FindByPaymentIntentID(ctx, intentID)
			if ferr == nil {
				return existing, nil
			}
			s.recordReconciliation(ctx, intentID, buyerID, 0, "重复捕获但订单缺失")
			return domain.Order{}, fmt.Errorf("支付已捕获但订单缺失, 已登记对账: %w", err)
		}
		return domain.Order{}, fmt.Errorf("捕获支付失败: %w", err)
	}

	order, err := s.createOrder(ctx, domain.Order{
		BuyerID:          buyerID,
		Method:           payment.MethodGateway,
		Status:           domain.StatusPaid,
		PaymentIntentID:  capture.IntentID,
		PaymentReference: capture.Reference,
		Shipping:         shipping,
	})
	if err != nil {
		// 资金已经划走, 订单却没落成, 这是唯一需要人工对账的窗口
		s.logger.Error("捕获成功但订单创建失败",
			elog.FieldErr(err),
			elog.String("intentID", intentID),
			elog.Int64("buyerID", buyerID),
			elog.Int64("amount", capture.Amount))
		s.recordReconciliation(ctx, intentID, buyerID, capture.Amount, err.Error())
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}
	// 意向创建和捕获之间购物车可能被改动过, 资金已按意向金额入账,
	// 差额只能留给对账, 订单本身照常返回
	if capture.Amount != order.TotalAmount {
		s.logger.Warn("捕获金额与订单总额不一致",
			elog.String("intentID", intentID),
			elog.Int64("captured", capture.Amount),
			elog.Int64("orderTotal", order.TotalAmount))
		s.recordReconciliation(ctx, intentID, buyerID, capture.Amount,
			fmt.Sprintf("捕获金额%d与订单总额%d不一致", capture.Amount, order.TotalAmount))
	}
	return order, nil
}

func (s *service) CreateCODOrder(ctx context.Context, buyerID int64, shipping domain.ShippingSnapshot) (domain.Order, error) {
	return s.createOrder(ctx, domain.Order{
		BuyerID:  buyerID,
		Method:   payment.MethodCashOnDelivery,
		Status:   domain.StatusPending,
		Shipping: shipping,
	})
}

func (s *service) createOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	sn, err := s.snGenerator.Generate(order.BuyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	order.SN = sn
	created, fresh, err := s.repo.CreateFromCart(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	if fresh {
		s.sendOrderEvent(ctx, created, created.BuyerID)
	}
	return created, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID, actorID int64, target domain.OrderStatus) (domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	advanced, err := order.Advance(target, actorID)
	if err != nil {
		return domain.Order{}, err
	}
	// 条件更新带上旧状态, 并发流转只会有一个成功, 落空的按非法流转处理
	err = s.repo.UpdateStatus(ctx, orderID, order.Status, advanced.Status)
	if err != nil {
		if errors.Is(err, repository.ErrConcurrentStatusChange) {
			return domain.Order{}, ErrInvalidTransition
		}
		return domain.Order{}, fmt.Errorf("更新订单状态失败: %w", err)
	}
	s.sendOrderEvent(ctx, advanced, actorID)
	return advanced, nil
}

func (s *service) ListBuyerOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByBuyerID(ctx, buyerID, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByBuyerID(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListSellerOrders(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListBySellerID(ctx, sellerID, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.CountBySellerID(ctx, sellerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) OrderExistsByIntentID(ctx context.Context, intentID string) (bool, error) {
	_, err := s.repo.FindByPaymentIntentID(ctx, intentID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrOrderNotFound) {
		return false, nil
	}
	return false, err
}

func (s *service) recordReconciliation(ctx context.Context, intentID string, buyerID, amount int64, detail string) {
	err := s.reconSvc.Record(ctx, recon.Reconciliation{
		IntentID: intentID,
		BuyerID:  buyerID,
		Amount:   amount,
		Currency: currency,
		Detail:   detail,
	})
	if err != nil {
		s.logger.Error("登记对账记录失败",
			elog.FieldErr(err),
			elog.String("intentID", intentID))
	}
}

func (s *service) sendOrderEvent(ctx context.Context, order domain.Order, actorID int64) {
	evt := event.OrderEvent{
		OrderSN: order.SN,
		BuyerID: order.BuyerID,
		ActorID: actorID,
		Status:  order.Status.ToUint8(),
		Lines: slice.Map(order.Lines, func(_ int, src domain.OrderLine) event.Line {
			return event.Line{
				ArtworkID: src.ArtworkID,
				SellerID:  src.SellerID,
				Price:     src.Price,
			}
		}),
	}
	// 旁路事件尽力投递, 失败只记日志
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("orderSN", order.SN))
	}
}

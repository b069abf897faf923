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

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ecodeclub/artmart/internal/cart"
	"github.com/ecodeclub/artmart/internal/order/internal/domain"
	"github.com/ecodeclub/artmart/internal/order/internal/service"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout")
	checkout.POST("/preview", ginx.S(h.PreviewCheckout))
	checkout.POST("/paypal/create", ginx.S(h.CreatePayPalIntent))
	checkout.POST("/paypal/capture", ginx.BS[CaptureOrderReq](h.CapturePayPalOrder))
	checkout.POST("/cod", ginx.BS[CreateCODOrderReq](h.CreateCODOrder))

	orders := server.Group("/orders")
	orders.GET("", ginx.S(h.ListBuyerOrders))
	orders.GET("/sales", ginx.S(h.ListSellerOrders))
	orders.PATCH("/:id/status", ginx.BS[UpdateOrderStatusReq](h.UpdateOrderStatus))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// PreviewCheckout 下单前预览购物车快照和应付总额, 没有任何副作用
func (h *Handler) PreviewCheckout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, total, err := h.svc.PreviewCheckout(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return emptyCartResult, fmt.Errorf("购物车为空: %w", err)
		}
		return systemErrorResult, fmt.Errorf("预览结算失败: %w", err)
	}
	return ginx.Result{Data: PreviewCheckoutResp{
		TotalAmount: total,
		Items: slice.Map(c.Items, func(_ int, src cart.CartItem) OrderLine {
			return OrderLine{
				ArtworkID: src.ArtworkID,
				SellerID:  src.SellerID,
				Title:     src.Title,
				Image:     src.Image,
				Price:     src.Price,
			}
		}),
	}}, nil
}

// CreatePayPalIntent 为当前购物车总额创建网关支付意向。本端不落任何状态,
// 客户端超时后直接重试
func (h *Handler) CreatePayPalIntent(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	intentID, err := h.svc.CreateGatewayIntent(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return emptyCartResult, fmt.Errorf("购物车为空: %w", err)
		case errors.Is(err, service.ErrInvalidAmount):
			return invalidAmountResult, fmt.Errorf("支付金额非法: %w", err)
		case errors.Is(err, service.ErrGatewayUnavailable):
			return gatewayUnavailableResult, fmt.Errorf("支付网关不可用: %w", err)
		}
		return systemErrorResult, fmt.Errorf("创建支付意向失败: %w", err)
	}
	return ginx.Result{Data: CreateIntentResp{IntentID: intentID}}, nil
}

// CapturePayPalOrder 捕获支付并创建订单, 同一意向重复提交返回同一订单
func (h *Handler) CapturePayPalOrder(ctx *ginx.Context, req CaptureOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, fmt.Errorf("请求ID错误: %w", err)
	}
	order, err := h.svc.CaptureAndCreateOrder(ctx.Request.Context(),
		sess.Claims().Uid, req.IntentID, h.toShippingDomain(req.Shipping))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return emptyCartResult, fmt.Errorf("购物车为空: %w", err)
		case errors.Is(err, service.ErrGatewayCaptureFailed):
			return gatewayCaptureFailedResult, fmt.Errorf("支付捕获失败: %w", err)
		case errors.Is(err, service.ErrGatewayUnavailable):
			return gatewayUnavailableResult, fmt.Errorf("支付网关不可用: %w", err)
		}
		return systemErrorResult, fmt.Errorf("捕获支付创建订单失败: %w", err)
	}
	return ginx.Result{Data: OrderResp{Order: h.toOrderVO(order)}}, nil
}

// CreateCODOrder 货到付款下单, 零元订单也允许
func (h *Handler) CreateCODOrder(ctx *ginx.Context, req CreateCODOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, fmt.Errorf("请求ID错误: %w", err)
	}
	order, err := h.svc.CreateCODOrder(ctx.Request.Context(),
		sess.Claims().Uid, h.toShippingDomain(req.Shipping))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return emptyCartResult, fmt.Errorf("购物车为空: %w", err)
		}
		return systemErrorResult, fmt.Errorf("货到付款下单失败: %w", err)
	}
	return ginx.Result{Data: OrderResp{Order: h.toOrderVO(order)}}, nil
}

func (h *Handler) ListBuyerOrders(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	offset, limit := h.pagination(ctx)
	orders, total, err := h.svc.ListBuyerOrders(ctx.Request.Context(), sess.Claims().Uid, offset, limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询买家订单失败: %w", err)
	}
	return ginx.Result{Data: h.toListVO(orders, total)}, nil
}

func (h *Handler) ListSellerOrders(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	offset, limit := h.pagination(ctx)
	orders, total, err := h.svc.ListSellerOrders(ctx.Request.Context(), sess.Claims().Uid, offset, limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询卖家订单失败: %w", err)
	}
	return ginx.Result{Data: h.toListVO(orders, total)}, nil
}

func (h *Handler) UpdateOrderStatus(ctx *ginx.Context, req UpdateOrderStatusReq, sess session.Session) (ginx.Result, error) {
	orderID, err := strconv.ParseInt(ctx.Param("id").StringOrDefault(""), 10, 64)
	if err != nil {
		return orderNotFoundResult, fmt.Errorf("订单ID非法: %w", err)
	}
	order, err := h.svc.UpdateStatus(ctx.Request.Context(), orderID,
		sess.Claims().Uid, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return orderNotFoundResult, fmt.Errorf("订单不存在: %w", err)
		case errors.Is(err, service.ErrUnauthorized):
			return unauthorizedResult, fmt.Errorf("无权操作订单: %w", err)
		case errors.Is(err, service.ErrInvalidTransition):
			return invalidTransitionResult, fmt.Errorf("订单状态流转非法: %w", err)
		}
		return systemErrorResult, fmt.Errorf("更新订单状态失败: %w", err)
	}
	return ginx.Result{Data: OrderResp{Order: h.toOrderVO(order)}}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

func (h *Handler) pagination(ctx *ginx.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return offset, limit
}

func (h *Handler) toListVO(orders []domain.Order, total int64) ListOrdersResp {
	return ListOrdersResp{
		Total: total,
		Orders: slice.Map(orders, func(_ int, src domain.Order) Order {
			return h.toOrderVO(src)
		}),
	}
}

func (h *Handler) toOrderVO(order domain.Order) Order {
	return Order{
		ID:               order.ID,
		SN:               order.SN,
		Method:           order.Method.ToUint8(),
		Status:           order.Status.ToUint8(),
		TotalAmount:      order.TotalAmount,
		PaymentReference: order.PaymentReference,
		Shipping: Shipping{
			Recipient:   order.Shipping.Recipient,
			Phone:       order.Shipping.Phone,
			Street:      order.Shipping.Street,
			District:    order.Shipping.District,
			City:        order.Shipping.City,
			State:       order.Shipping.State,
			Zip:         order.Shipping.Zip,
			Country:     order.Shipping.Country,
			GiftMessage: order.Shipping.GiftMessage,
		},
		Lines: slice.Map(order.Lines, func(_ int, src domain.OrderLine) OrderLine {
			return OrderLine{
				ArtworkID: src.ArtworkID,
				SellerID:  src.SellerID,
				Title:     src.Title,
				Image:     src.Image,
				Price:     src.Price,
			}
		}),
		Ctime: order.Ctime,
	}
}

// toShippingDomain 收货信息是自由文本, 内容不校验, 但长度必须收在存储列宽之内:
// 网关路径先捕获资金后落库, 落库不允许因为超长输入失败
func (h *Handler) toShippingDomain(s Shipping) domain.ShippingSnapshot {
	return domain.ShippingSnapshot{
		Recipient:   truncateRunes(s.Recipient, 255),
		Phone:       truncateRunes(s.Phone, 64),
		Street:      truncateRunes(s.Street, 255),
		District:    truncateRunes(s.District, 255),
		City:        truncateRunes(s.City, 255),
		State:       truncateRunes(s.State, 255),
		Zip:         truncateRunes(s.Zip, 32),
		Country:     truncateRunes(s.Country, 64),
		GiftMessage: truncateRunes(s.GiftMessage, 512),
	}
}

// truncateRunes 按字符截断, varchar列宽按字符计
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

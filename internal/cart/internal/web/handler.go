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
	"errors"
	"fmt"

	"github.com/ecodeclub/artmart/internal/cart/internal/domain"
	"github.com/ecodeclub/artmart/internal/cart/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddCartItemReq](h.AddItem))
	g.POST("/remove", ginx.BS[RemoveCartItemReq](h.RemoveItem))
	g.POST("/clear", ginx.S(h.Clear))
	g.POST("/detail", ginx.S(h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// AddItem 加购。重复加购是成功的空操作
func (h *Handler) AddItem(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid, req.ArtworkID)
	if err != nil {
		if errors.Is(err, service.ErrArtworkNotFound) {
			return artworkNotFoundResult, fmt.Errorf("加购作品不存在: %w", err)
		}
		return systemErrorResult, fmt.Errorf("加购失败: %w", err)
	}
	return ginx.Result{Data: CartResp{Cart: h.toCartVO(c)}}, nil
}

func (h *Handler) RemoveItem(ctx *ginx.Context, req RemoveCartItemReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, req.ArtworkID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("移除购物车条目失败: %w", err)
	}
	return ginx.Result{Data: CartResp{Cart: h.toCartVO(c)}}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Clear(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("清空购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.GetCart(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询购物车失败: %w", err)
	}
	return ginx.Result{Data: CartResp{Cart: h.toCartVO(c)}}, nil
}

func (h *Handler) toCartVO(c domain.Cart) Cart {
	var total int64
	for _, item := range c.Items {
		total += item.Price
	}
	return Cart{
		TotalAmount: total,
		Items: slice.Map(c.Items, func(idx int, src domain.CartItem) CartItem {
			return CartItem{
				ArtworkID: src.ArtworkID,
				SellerID:  src.SellerID,
				Title:     src.Title,
				Image:     src.Image,
				Price:     src.Price,
			}
		}),
	}
}

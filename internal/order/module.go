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

package order

import (
	"github.com/ecodeclub/artmart/internal/order/internal/domain"
	"github.com/ecodeclub/artmart/internal/order/internal/event"
	"github.com/ecodeclub/artmart/internal/order/internal/service"
	"github.com/ecodeclub/artmart/internal/order/internal/web"
)

type (
	Handler          = web.Handler
	Service          = service.Service
	Order            = domain.Order
	OrderLine        = domain.OrderLine
	OrderStatus      = domain.OrderStatus
	ShippingSnapshot = domain.ShippingSnapshot
	OrderEvent       = event.OrderEvent
)

const (
	StatusPending         = domain.StatusPending
	StatusPaid            = domain.StatusPaid
	StatusAccepted        = domain.StatusAccepted
	StatusShipped         = domain.StatusShipped
	StatusDelivered       = domain.StatusDelivered
	StatusPaymentReceived = domain.StatusPaymentReceived
)

var (
	ErrEmptyCart         = service.ErrEmptyCart
	ErrOrderNotFound     = service.ErrOrderNotFound
	ErrInvalidTransition = service.ErrInvalidTransition
	ErrUnauthorized      = service.ErrUnauthorized
)

type Module struct {
	Hdl *Handler
	Svc Service
}

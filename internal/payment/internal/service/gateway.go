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

	"github.com/ecodeclub/artmart/internal/payment/internal/domain"
)

var (
	// ErrInvalidAmount 网关无法处理非正金额, 调用方应在更早的环节拦截
	ErrInvalidAmount = errors.New("非法的支付金额")
	// ErrGatewayUnavailable 网关不可达或返回服务端错误
	ErrGatewayUnavailable = errors.New("支付网关不可用")
	// ErrGatewayCaptureFailed 捕获失败, 对调用方而言结果未知, 不能据此断定扣款没有发生
	ErrGatewayCaptureFailed = errors.New("支付捕获失败")
	// ErrDuplicateCapture 意向已被捕获过, 属于幂等防护触发而非资金事故
	ErrDuplicateCapture = errors.New("重复捕获支付意向")
)

//go:generate mockgen -source=./gateway.go -package=paymentmocks -destination=../../mocks/gateway.mock.go GatewayService
type GatewayService interface {
	// CreateIntent 在网关侧预占一笔应付金额, 本系统不产生任何持久状态, 失败可以直接重试
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
	// CaptureIntent 把意向转为实际扣款。同一意向在正常流程中至多捕获一次,
	// 再次捕获返回 ErrDuplicateCapture, 由编排方决定如何对账
	CaptureIntent(ctx context.Context, intentID string) (domain.Capture, error)
}

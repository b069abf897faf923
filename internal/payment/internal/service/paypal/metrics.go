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

package paypal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 网关调用打点, 结算链路出资金问题时第一个看的就是这里
var (
	gatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "artmart",
		Subsystem: "paypal",
		Name:      "requests_total",
		Help:      "PayPal网关请求计数, 按操作与结果区分",
	}, []string{"op", "result"})

	gatewayCapturedAmount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "artmart",
		Subsystem: "paypal",
		Name:      "captured_amount_cents_total",
		Help:      "PayPal捕获成功的累计金额, 单位为分",
	})
)

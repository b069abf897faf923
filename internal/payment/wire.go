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

package payment

import (
	"github.com/ecodeclub/artmart/internal/payment/internal/service"
	"github.com/ecodeclub/artmart/internal/payment/internal/service/paypal"
	"github.com/gotomicro/ego/core/econf"
)

// InitGatewayService 从配置装配PayPal网关客户端
func InitGatewayService() service.GatewayService {
	var cfg paypal.Config
	if err := econf.UnmarshalKey("paypal", &cfg); err != nil {
		panic(err)
	}
	return paypal.NewClient(cfg)
}

func InitModule() *Module {
	return &Module{GatewaySvc: InitGatewayService()}
}

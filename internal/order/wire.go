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

//go:build wireinject

package order

import (
	"sync"

	"github.com/ecodeclub/artmart/internal/cart"
	"github.com/ecodeclub/artmart/internal/order/internal/event"
	"github.com/ecodeclub/artmart/internal/order/internal/repository"
	"github.com/ecodeclub/artmart/internal/order/internal/repository/dao"
	"github.com/ecodeclub/artmart/internal/order/internal/service"
	"github.com/ecodeclub/artmart/internal/order/internal/web"
	"github.com/ecodeclub/artmart/internal/payment"
	"github.com/ecodeclub/artmart/internal/pkg/sequencenumber"
	"github.com/ecodeclub/artmart/internal/recon"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	cache ecache.Cache,
	cartModule *cart.Module,
	paymentModule *payment.Module,
	reconModule *recon.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		sequencenumber.NewGenerator,
		event.NewOrderEventProducer,
		repository.NewRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*cart.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "GatewaySvc"),
		wire.FieldsOf(new(*recon.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

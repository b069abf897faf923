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

package notification

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/artmart/internal/notification/internal/event"
	"github.com/ecodeclub/artmart/internal/notification/internal/repository"
	"github.com/ecodeclub/artmart/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/artmart/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, node *snowflake.Node) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		initService,
		event.NewOrderEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

func initService(repo repository.NotificationRepository) service.Service {
	initialInterval := 100 * time.Millisecond
	maxInterval := 1 * time.Second
	maxRetries := int32(6)
	return service.NewService(repo, initialInterval, maxInterval, maxRetries)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component, node *snowflake.Node) dao.NotificationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewNotificationGORMDAO(db, node)
}

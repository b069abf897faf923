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

package recommendation

import (
	"net/http"
	"time"

	"github.com/ecodeclub/artmart/internal/recommendation/internal/event"
	"github.com/ecodeclub/artmart/internal/recommendation/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
)

type Config struct {
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

// InitService 从配置装配推荐服务客户端
func InitService() Service {
	var cfg Config
	if err := econf.UnmarshalKey("recommendation", &cfg); err != nil {
		panic(err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	interval := 100 * time.Millisecond
	maxInterval := 1 * time.Second
	maxRetries := int32(3)
	return service.NewHTTPRecommendationService(cfg.BaseURL,
		&http.Client{Timeout: cfg.Timeout},
		interval, maxInterval, maxRetries)
}

func InitModule(q mq.MQ) (*Module, error) {
	svc := InitService()
	c, err := event.NewOrderEventConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	return &Module{Svc: svc, C: c}, nil
}

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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/artmart/internal/recommendation/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const (
	statusPending = 1
	statusPaid    = 2
)

type OrderEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderEventConsumer(svc service.Service, q mq.MQ) (*OrderEventConsumer, error) {
	groupID := "recommendation-order"
	consumer, err := q.Consumer(OrderEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *OrderEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费订单事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OrderEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt OrderEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析订单事件失败: %w", err)
	}

	// 只有订单创建算购买信号, 后续状态流转不重复上报
	if evt.Status != statusPending && evt.Status != statusPaid {
		return nil
	}

	for _, line := range evt.Lines {
		err := c.svc.ReportPurchase(ctx, evt.BuyerID, line.ArtworkID, line.Price)
		if err != nil {
			// 推荐信号尽力而为, 丢了也不影响订单
			c.logger.Error("上报购买信号失败",
				elog.FieldErr(err),
				elog.String("orderSN", evt.OrderSN),
				elog.Int64("artworkID", line.ArtworkID))
		}
	}
	return nil
}

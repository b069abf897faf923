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

	"github.com/ecodeclub/artmart/internal/notification/internal/domain"
	"github.com/ecodeclub/artmart/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type OrderEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderEventConsumer(svc service.Service, q mq.MQ) (*OrderEventConsumer, error) {
	groupID := "notification-order"
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
	return c.svc.Notify(ctx, c.toNotifications(evt))
}

// toNotifications 买家一条, 订单行上的每个卖家各一条
func (c *OrderEventConsumer) toNotifications(evt OrderEvent) []domain.Notification {
	ns := make([]domain.Notification, 0, len(evt.Lines)+1)
	ns = append(ns, domain.Notification{
		UID:         evt.BuyerID,
		OrderSN:     evt.OrderSN,
		OrderStatus: evt.Status,
		Content:     buyerContent(evt.Status, evt.OrderSN),
	})
	seen := make(map[int64]struct{}, len(evt.Lines))
	for _, line := range evt.Lines {
		if _, ok := seen[line.SellerID]; ok {
			continue
		}
		seen[line.SellerID] = struct{}{}
		ns = append(ns, domain.Notification{
			UID:         line.SellerID,
			OrderSN:     evt.OrderSN,
			OrderStatus: evt.Status,
			Content:     sellerContent(evt.Status, evt.OrderSN),
		})
	}
	return ns
}

func buyerContent(status uint8, orderSN string) string {
	switch status {
	case 1:
		return fmt.Sprintf("订单 %s 已提交, 等待卖家接单", orderSN)
	case 2:
		return fmt.Sprintf("订单 %s 支付成功, 等待卖家接单", orderSN)
	case 3:
		return fmt.Sprintf("订单 %s 卖家已接单", orderSN)
	case 4:
		return fmt.Sprintf("订单 %s 已发货", orderSN)
	case 5:
		return fmt.Sprintf("订单 %s 已送达", orderSN)
	case 6:
		return fmt.Sprintf("订单 %s 货款已结清", orderSN)
	default:
		return fmt.Sprintf("订单 %s 状态已更新", orderSN)
	}
}

func sellerContent(status uint8, orderSN string) string {
	switch status {
	case 1:
		return fmt.Sprintf("收到货到付款新订单 %s", orderSN)
	case 2:
		return fmt.Sprintf("收到已支付新订单 %s", orderSN)
	case 6:
		return fmt.Sprintf("订单 %s 货款已确认收讫", orderSN)
	default:
		return fmt.Sprintf("订单 %s 状态已更新", orderSN)
	}
}

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
	"testing"
	"time"

	"github.com/ecodeclub/artmart/internal/notification/internal/domain"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationService struct {
	notified [][]domain.Notification
}

func (f *fakeNotificationService) Notify(_ context.Context, ns []domain.Notification) error {
	f.notified = append(f.notified, ns)
	return nil
}

func (f *fakeNotificationService) List(_ context.Context, _ int64, _, _ int) ([]domain.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationService) CountUnread(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationService) MarkRead(_ context.Context, _, _ int64) error {
	return nil
}

func TestOrderEventConsumer_Consume(t *testing.T) {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), OrderEventName, 1))
	producer, err := q.Producer(OrderEventName)
	require.NoError(t, err)

	svc := &fakeNotificationService{}
	consumer, err := NewOrderEventConsumer(svc, q)
	require.NoError(t, err)

	evt := OrderEvent{
		OrderSN: "SN100",
		BuyerID: 100,
		ActorID: 100,
		Status:  2,
		Lines: []Line{
			{ArtworkID: 11, SellerID: 200, Price: 1500},
			{ArtworkID: 12, SellerID: 300, Price: 2500},
			{ArtworkID: 13, SellerID: 200, Price: 500},
		},
	}
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	require.Len(t, svc.notified, 1)
	ns := svc.notified[0]
	// 买家一条, 两个去重后的卖家各一条
	require.Len(t, ns, 3)
	assert.Equal(t, domain.Notification{
		UID:         100,
		OrderSN:     "SN100",
		OrderStatus: 2,
		Content:     "订单 SN100 支付成功, 等待卖家接单",
	}, ns[0])
	assert.Equal(t, int64(200), ns[1].UID)
	assert.Equal(t, "收到已支付新订单 SN100", ns[1].Content)
	assert.Equal(t, int64(300), ns[2].UID)
}

func TestOrderEventConsumer_ConsumeBadPayload(t *testing.T) {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), OrderEventName, 1))
	producer, err := q.Producer(OrderEventName)
	require.NoError(t, err)

	svc := &fakeNotificationService{}
	consumer, err := NewOrderEventConsumer(svc, q)
	require.NoError(t, err)

	_, err = producer.Produce(context.Background(), &mq.Message{Value: []byte("not-json")})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	assert.Error(t, consumer.Consume(ctx))
	assert.Empty(t, svc.notified)
}

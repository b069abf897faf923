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

package repository

import (
	"context"

	"github.com/ecodeclub/artmart/internal/notification/internal/domain"
	"github.com/ecodeclub/artmart/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrNotificationNotFound = dao.ErrNotificationNotFound

type NotificationRepository interface {
	BatchCreate(ctx context.Context, ns []domain.Notification) error
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	CountUnreadByUID(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
}

func NewRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{d: d}
}

type notificationRepository struct {
	d dao.NotificationDAO
}

func (n *notificationRepository) BatchCreate(ctx context.Context, ns []domain.Notification) error {
	return n.d.BatchCreate(ctx, slice.Map(ns, func(_ int, src domain.Notification) dao.Notification {
		return dao.Notification{
			Uid:         src.UID,
			OrderSn:     src.OrderSN,
			OrderStatus: src.OrderStatus,
			Content:     src.Content,
			Read:        src.Read,
		}
	}))
}

func (n *notificationRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := n.d.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(_ int, src dao.Notification) domain.Notification {
		return domain.Notification{
			ID:          src.Id,
			UID:         src.Uid,
			OrderSN:     src.OrderSn,
			OrderStatus: src.OrderStatus,
			Content:     src.Content,
			Read:        src.Read,
			Ctime:       src.Ctime,
			Utime:       src.Utime,
		}
	}), nil
}

func (n *notificationRepository) CountUnreadByUID(ctx context.Context, uid int64) (int64, error) {
	return n.d.CountUnreadByUID(ctx, uid)
}

func (n *notificationRepository) MarkRead(ctx context.Context, uid, id int64) error {
	return n.d.MarkRead(ctx, uid, id)
}

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
	"fmt"
	"time"

	"github.com/ecodeclub/artmart/internal/notification/internal/domain"
	"github.com/ecodeclub/artmart/internal/notification/internal/repository"
	"github.com/ecodeclub/ekit/retry"
)

var ErrExceedMaxRetries = fmt.Errorf("通知写入重试次数耗尽")

//go:generate mockgen -source=./service.go -package=notificationmocks -destination=../../mocks/notification.mock.go -typed Service
type Service interface {
	// Notify 批量写入通知, 数据库抖动时按指数退避重试
	Notify(ctx context.Context, ns []domain.Notification) error
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
}

func NewService(repo repository.NotificationRepository,
	initialInterval, maxInterval time.Duration, maxRetries int32) Service {
	return &service{
		repo:            repo,
		initialInterval: initialInterval,
		maxInterval:     maxInterval,
		maxRetries:      maxRetries,
	}
}

type service struct {
	repo            repository.NotificationRepository
	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
}

func (s *service) Notify(ctx context.Context, ns []domain.Notification) error {
	strategy, _ := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
	for {
		err := s.repo.BatchCreate(ctx, ns)
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("%w: %w", ErrExceedMaxRetries, err)
		}
		time.Sleep(next)
	}
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	return s.repo.ListByUID(ctx, uid, offset, limit)
}

func (s *service) CountUnread(ctx context.Context, uid int64) (int64, error) {
	return s.repo.CountUnreadByUID(ctx, uid)
}

func (s *service) MarkRead(ctx context.Context, uid, id int64) error {
	return s.repo.MarkRead(ctx, uid, id)
}

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

	"github.com/ecodeclub/artmart/internal/recon/internal/domain"
	"github.com/ecodeclub/artmart/internal/recon/internal/repository"
)

// OrderChecker 查询某个支付意向是否已经落成订单。
// 由订单模块在装配时提供, 避免两个模块互相依赖
type OrderChecker interface {
	OrderExistsByIntentID(ctx context.Context, intentID string) (bool, error)
}

//go:generate mockgen -source=./service.go -package=reconmocks -destination=../../mocks/recon.mock.go -typed Service
type Service interface {
	// Record 记录一笔已捕获但未落单的支付, 同一意向重复记录是空操作
	Record(ctx context.Context, r domain.Reconciliation) error
	ListUnresolved(ctx context.Context, offset, limit int, ctime int64) ([]domain.Reconciliation, error)
	MarkResolved(ctx context.Context, id int64) error
}

type service struct {
	repo repository.ReconciliationRepository
}

func NewService(repo repository.ReconciliationRepository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, r domain.Reconciliation) error {
	err := s.repo.Create(ctx, r)
	if err != nil {
		return fmt.Errorf("记录对账条目失败: %w", err)
	}
	return nil
}

func (s *service) ListUnresolved(ctx context.Context, offset, limit int, ctime int64) ([]domain.Reconciliation, error) {
	return s.repo.ListUnresolved(ctx, offset, limit, ctime)
}

func (s *service) MarkResolved(ctx context.Context, id int64) error {
	return s.repo.MarkResolved(ctx, id)
}

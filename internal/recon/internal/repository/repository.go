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

	"github.com/ecodeclub/artmart/internal/recon/internal/domain"
	"github.com/ecodeclub/artmart/internal/recon/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type ReconciliationRepository interface {
	Create(ctx context.Context, r domain.Reconciliation) error
	ListUnresolved(ctx context.Context, offset, limit int, ctime int64) ([]domain.Reconciliation, error)
	MarkResolved(ctx context.Context, id int64) error
}

type reconciliationRepository struct {
	dao dao.ReconciliationDAO
}

func NewReconciliationRepository(d dao.ReconciliationDAO) ReconciliationRepository {
	return &reconciliationRepository{dao: d}
}

func (r *reconciliationRepository) Create(ctx context.Context, rec domain.Reconciliation) error {
	return r.dao.Create(ctx, r.toEntity(rec))
}

func (r *reconciliationRepository) ListUnresolved(ctx context.Context, offset, limit int, ctime int64) ([]domain.Reconciliation, error) {
	rs, err := r.dao.ListUnresolved(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(_ int, src dao.Reconciliation) domain.Reconciliation {
		return r.toDomain(src)
	}), nil
}

func (r *reconciliationRepository) MarkResolved(ctx context.Context, id int64) error {
	return r.dao.MarkResolved(ctx, id)
}

func (r *reconciliationRepository) toEntity(rec domain.Reconciliation) dao.Reconciliation {
	return dao.Reconciliation{
		Id:       rec.ID,
		IntentId: rec.IntentID,
		BuyerId:  rec.BuyerID,
		Amount:   rec.Amount,
		Currency: rec.Currency,
		Detail:   rec.Detail,
		Resolved: rec.Resolved,
	}
}

func (r *reconciliationRepository) toDomain(rec dao.Reconciliation) domain.Reconciliation {
	return domain.Reconciliation{
		ID:       rec.Id,
		IntentID: rec.IntentId,
		BuyerID:  rec.BuyerId,
		Amount:   rec.Amount,
		Currency: rec.Currency,
		Detail:   rec.Detail,
		Resolved: rec.Resolved,
		Ctime:    rec.Ctime,
		Utime:    rec.Utime,
	}
}

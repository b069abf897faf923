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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type ReconciliationDAO interface {
	// Create 同一意向重复记录时保留第一条
	Create(ctx context.Context, r Reconciliation) error
	ListUnresolved(ctx context.Context, offset, limit int, ctime int64) ([]Reconciliation, error)
	MarkResolved(ctx context.Context, id int64) error
}

type ReconciliationGORMDAO struct {
	db *egorm.Component
}

func NewReconciliationGORMDAO(db *egorm.Component) ReconciliationDAO {
	return &ReconciliationGORMDAO{db: db}
}

func (d *ReconciliationGORMDAO) Create(ctx context.Context, r Reconciliation) error {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&r).Error
}

func (d *ReconciliationGORMDAO) ListUnresolved(ctx context.Context, offset, limit int, ctime int64) ([]Reconciliation, error) {
	var res []Reconciliation
	err := d.db.WithContext(ctx).Where("resolved = ? AND ctime < ?", false, ctime).
		Order("ctime ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ReconciliationGORMDAO) MarkResolved(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Reconciliation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"resolved": true,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Reconciliation{})
}

type Reconciliation struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:对账记录自增ID"`
	IntentId string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_recon_intent_id;comment:网关支付意向ID"`
	BuyerId  int64  `gorm:"not null;comment:买家ID"`
	Amount   int64  `gorm:"not null;comment:已捕获金额;单位为分"`
	Currency string `gorm:"type:varchar(8);not null;comment:币种"`
	Detail   string `gorm:"type:varchar(1024);not null;comment:失败现场描述"`
	Resolved bool   `gorm:"not null;default:false;index:idx_resolved;comment:是否已解决"`
	Ctime    int64
	Utime    int64
}

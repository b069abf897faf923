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

type CartDAO interface {
	// AddItem 依赖 (buyer_id, artwork_id) 唯一索引做集合语义的插入,
	// 重复加购直接落到 ON CONFLICT DO NOTHING 上, 并发加购互不丢失
	AddItem(ctx context.Context, item CartItem) error
	RemoveItem(ctx context.Context, buyerID, artworkID int64) error
	Clear(ctx context.Context, buyerID int64) error
	FindByBuyerID(ctx context.Context, buyerID int64) ([]CartItem, error)
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

func (d *CartGORMDAO) AddItem(ctx context.Context, item CartItem) error {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item).Error
}

func (d *CartGORMDAO) RemoveItem(ctx context.Context, buyerID, artworkID int64) error {
	// 删除不存在的条目视为成功
	return d.db.WithContext(ctx).
		Where("buyer_id = ? AND artwork_id = ?", buyerID, artworkID).
		Delete(&CartItem{}).Error
}

func (d *CartGORMDAO) Clear(ctx context.Context, buyerID int64) error {
	return d.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Delete(&CartItem{}).Error
}

func (d *CartGORMDAO) FindByBuyerID(ctx context.Context, buyerID int64) ([]CartItem, error) {
	var res []CartItem
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&CartItem{})
}

type CartItem struct {
	Id        int64 `gorm:"primaryKey;autoIncrement;comment:购物车条目自增ID"`
	BuyerId   int64 `gorm:"not null;uniqueIndex:uniq_buyer_artwork;comment:买家ID"`
	ArtworkId int64 `gorm:"not null;uniqueIndex:uniq_buyer_artwork;comment:作品自增ID"`
	Ctime     int64
	Utime     int64
}

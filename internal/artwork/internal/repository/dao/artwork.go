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

	"github.com/ecodeclub/artmart/internal/artwork/internal/domain"
	"github.com/ego-component/egorm"
)

type ArtworkDAO interface {
	FindByID(ctx context.Context, id int64) (Artwork, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Artwork, error)
	Create(ctx context.Context, art Artwork) (int64, error)
}

type ArtworkGORMDAO struct {
	db *egorm.Component
}

func NewArtworkGORMDAO(db *egorm.Component) ArtworkDAO {
	return &ArtworkGORMDAO{db: db}
}

func (d *ArtworkGORMDAO) FindByID(ctx context.Context, id int64) (Artwork, error) {
	var res Artwork
	err := d.db.WithContext(ctx).Where("id = ? AND status = ?", id, domain.ArtworkStatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *ArtworkGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Artwork, error) {
	var res []Artwork
	err := d.db.WithContext(ctx).Where("id IN ? AND status = ?", ids, domain.ArtworkStatusOnShelf.ToUint8()).Find(&res).Error
	return res, err
}

func (d *ArtworkGORMDAO) Create(ctx context.Context, art Artwork) (int64, error) {
	now := time.Now().UnixMilli()
	art.Ctime, art.Utime = now, now
	err := d.db.WithContext(ctx).Create(&art).Error
	return art.Id, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Artwork{})
}

type Artwork struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:作品自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_artwork_sn;comment:作品序列号"`
	Title       string `gorm:"type:varchar(255);not null;comment:作品标题"`
	Description string `gorm:"not null;comment:作品描述"`
	Image       string `gorm:"type:varchar(512);not null;comment:作品缩略图,CDN绝对路径"`
	Price       int64  `gorm:"not null;comment:作品单价;单位为分, 999表示9.99元"`
	SellerId    int64  `gorm:"not null;index:idx_seller_id;comment:卖家ID"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}

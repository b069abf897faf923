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
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ego-component/egorm"
)

var ErrNotificationNotFound = errors.New("通知不存在")

type NotificationDAO interface {
	// BatchCreate 一个订单事件产生的通知一次性写入
	BatchCreate(ctx context.Context, ns []Notification) error
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	CountUnreadByUID(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid, id int64) error
}

type NotificationGORMDAO struct {
	db   *egorm.Component
	node *snowflake.Node
}

func NewNotificationGORMDAO(db *egorm.Component, node *snowflake.Node) NotificationDAO {
	return &NotificationGORMDAO{db: db, node: node}
}

func (d *NotificationGORMDAO) BatchCreate(ctx context.Context, ns []Notification) error {
	if len(ns) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range ns {
		ns[i].Id = d.node.Generate().Int64()
		ns[i].Ctime, ns[i].Utime = now, now
	}
	return d.db.WithContext(ctx).Create(&ns).Error
}

func (d *NotificationGORMDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *NotificationGORMDAO) CountUnreadByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Notification{}).
		Where("uid = ? AND `read` = ?", uid, false).Count(&count).Error
	return count, err
}

func (d *NotificationGORMDAO) MarkRead(ctx context.Context, uid, id int64) error {
	res := d.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"read":  true,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Notification{})
}

type Notification struct {
	Id          int64  `gorm:"primaryKey;comment:通知ID;雪花算法生成"`
	Uid         int64  `gorm:"not null;index:idx_uid;comment:接收者用户ID"`
	OrderSn     string `gorm:"type:varchar(255);not null;comment:关联订单序列号"`
	OrderStatus uint8  `gorm:"type:tinyint unsigned;not null;comment:触发通知的订单状态"`
	Content     string `gorm:"type:varchar(512);not null;comment:通知内容"`
	Read        bool   `gorm:"not null;default:false;comment:是否已读"`
	Ctime       int64
	Utime       int64
}

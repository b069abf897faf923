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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEmptyCart = errors.New("购物车为空")
	// ErrDuplicateIntent 同一支付意向已经生成过订单, 幂等防护由唯一索引保证
	ErrDuplicateIntent = errors.New("支付意向已生成订单")
	ErrOrderNotFound   = errors.New("订单不存在")
	// ErrConcurrentStatusChange 条件更新没有命中, 说明状态已被并发修改或流转非法
	ErrConcurrentStatusChange = errors.New("订单状态已变更")
)

type OrderDAO interface {
	// CreateFromCart 在单个事务里完成: 锁定购物车快照、按当前目录价冻结订单行、
	// 写入订单、清空购物车。支付意向ID上的唯一索引保证同一意向至多产生一个订单,
	// 撞索引时返回已存在的订单, created为false
	CreateFromCart(ctx context.Context, order Order) (Order, []OrderLine, bool, error)
	FindByID(ctx context.Context, id int64) (Order, []OrderLine, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (Order, []OrderLine, error)
	UpdateStatus(ctx context.Context, orderID int64, from, to uint8) error
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]Order, error)
	CountBySellerID(ctx context.Context, sellerID int64) (int64, error)
	FindLinesByOrderIDs(ctx context.Context, orderIDs []int64) ([]OrderLine, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

// artworkSnapshot 事务内按当前目录状态冻结的行信息。购物车与作品目录
// 和订单在同一个库里, 这里直接按表名读, 避免跨模块持有事务句柄
type artworkSnapshot struct {
	Id       int64
	SellerId int64
	Title    string
	Image    string
	Price    int64
}

func (d *OrderGORMDAO) CreateFromCart(ctx context.Context, order Order) (Order, []OrderLine, bool, error) {
	var lines []OrderLine
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 锁住买家的购物车行, 并发结算会在这里串行化,
		// 后到的事务要么撞支付意向唯一索引, 要么看到空购物车
		var artworkIDs []int64
		if err := tx.Table("cart_items").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("buyer_id = ?", order.BuyerId).
			Pluck("artwork_id", &artworkIDs).Error; err != nil {
			return fmt.Errorf("锁定购物车失败: %w", err)
		}
		if len(artworkIDs) == 0 {
			return ErrEmptyCart
		}

		// 作品表的上架状态
		const statusOnShelf = 2
		var snapshots []artworkSnapshot
		if err := tx.Table("artworks").
			Select("id", "seller_id", "title", "image", "price").
			Where("id IN ? AND status = ?", artworkIDs, statusOnShelf).
			Find(&snapshots).Error; err != nil {
			return fmt.Errorf("读取作品快照失败: %w", err)
		}
		if len(snapshots) == 0 {
			// 购物车里的作品已全部下架
			return ErrEmptyCart
		}

		now := time.Now().UnixMilli()
		order.Ctime, order.Utime = now, now
		order.TotalAmount = 0
		for _, s := range snapshots {
			order.TotalAmount += s.Price
		}

		if err := tx.Create(&order).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicateIntent
				}
			}
			return fmt.Errorf("创建订单失败: %w", err)
		}

		lines = make([]OrderLine, 0, len(snapshots))
		for _, s := range snapshots {
			lines = append(lines, OrderLine{
				OrderId:   order.Id,
				ArtworkId: s.Id,
				SellerId:  s.SellerId,
				Title:     s.Title,
				Image:     s.Image,
				Price:     s.Price,
				Ctime:     now,
				Utime:     now,
			})
		}
		if err := tx.Create(&lines).Error; err != nil {
			return fmt.Errorf("创建订单行失败: %w", err)
		}

		if err := tx.Exec("DELETE FROM cart_items WHERE buyer_id = ?", order.BuyerId).Error; err != nil {
			return fmt.Errorf("清空购物车失败: %w", err)
		}
		return nil
	})
	if err == nil {
		return order, lines, true, nil
	}
	if errors.Is(err, ErrDuplicateIntent) && order.PaymentIntentId.Valid {
		existing, existingLines, ferr := d.FindByPaymentIntentID(ctx, order.PaymentIntentId.String)
		if ferr != nil {
			return Order{}, nil, false, fmt.Errorf("查找已存在订单失败: %w", ferr)
		}
		return existing, existingLines, false, nil
	}
	return Order{}, nil, false, err
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, []OrderLine, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Order{}, nil, ErrOrderNotFound
		}
		return Order{}, nil, err
	}
	lines, err := d.FindLinesByOrderIDs(ctx, []int64{o.Id})
	return o, lines, err
}

func (d *OrderGORMDAO) FindByPaymentIntentID(ctx context.Context, intentID string) (Order, []OrderLine, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("payment_intent_id = ?", intentID).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Order{}, nil, ErrOrderNotFound
		}
		return Order{}, nil, err
	}
	lines, err := d.FindLinesByOrderIDs(ctx, []int64{o.Id})
	return o, lines, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, orderID int64, from, to uint8) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentStatusChange
	}
	return nil
}

func (d *OrderGORMDAO) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", buyerID).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	sub := d.db.Table("order_lines").Distinct("order_id").Where("seller_id = ?", sellerID)
	err := d.db.WithContext(ctx).Where("id IN (?)", sub).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountBySellerID(ctx context.Context, sellerID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Table("order_lines").
		Distinct("order_id").Where("seller_id = ?", sellerID).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindLinesByOrderIDs(ctx context.Context, orderIDs []int64) ([]OrderLine, error) {
	var res []OrderLine
	err := d.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderLine{})
}

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_buyer_id;comment:买家ID"`
	Method  uint8  `gorm:"type:tinyint unsigned;not null;comment:支付方式 1=网关 2=货到付款"`
	Status  uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=待处理 2=已支付 3=已接单 4=已发货 5=已送达 6=已收款"`
	// TotalAmount 恒等于订单行冻结价格之和
	TotalAmount int64 `gorm:"not null;comment:订单总价;单位为分, 999表示9.99元"`
	// PaymentIntentId 唯一索引是捕获幂等的最后防线, 货到付款为NULL
	PaymentIntentId  sql.NullString `gorm:"type:varchar(255);uniqueIndex:uniq_payment_intent_id;comment:网关支付意向ID,货到付款为NULL"`
	PaymentReference sql.NullString `gorm:"type:varchar(255);comment:网关交易引用,捕获成功后回填"`
	Recipient        string         `gorm:"type:varchar(255);not null;default:'';comment:收件人"`
	Phone            string         `gorm:"type:varchar(64);not null;default:'';comment:联系电话"`
	Street           string         `gorm:"type:varchar(255);not null;default:'';comment:街道"`
	District         string         `gorm:"type:varchar(255);not null;default:'';comment:区"`
	City             string         `gorm:"type:varchar(255);not null;default:'';comment:市"`
	State            string         `gorm:"type:varchar(255);not null;default:'';comment:省/州"`
	Zip              string         `gorm:"type:varchar(32);not null;default:'';comment:邮编"`
	Country          string         `gorm:"type:varchar(64);not null;default:'';comment:国家"`
	GiftMessage      string         `gorm:"type:varchar(512);not null;default:'';comment:礼物留言"`
	Ctime            int64
	Utime            int64
}

type OrderLine struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单行自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ArtworkId int64  `gorm:"not null;index:idx_artwork_id;comment:作品自增ID"`
	SellerId  int64  `gorm:"not null;index:idx_seller_id;comment:卖家ID"`
	Title     string `gorm:"type:varchar(255);not null;comment:购买时刻的作品标题"`
	Image     string `gorm:"type:varchar(512);not null;comment:购买时刻的作品缩略图"`
	Price     int64  `gorm:"not null;comment:购买时刻冻结的单价;单位为分, 999表示9.99元"`
	Ctime     int64
	Utime     int64
}

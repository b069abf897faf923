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

	"github.com/ecodeclub/artmart/internal/artwork"
	"github.com/ecodeclub/artmart/internal/cart/internal/domain"
	"github.com/ecodeclub/artmart/internal/cart/internal/repository"
	"github.com/ecodeclub/ekit/slice"
)

var ErrArtworkNotFound = artwork.ErrArtworkNotFound

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go -typed Service
type Service interface {
	// AddItem 幂等, 重复加购同一作品直接返回当前购物车
	AddItem(ctx context.Context, buyerID, artworkID int64) (domain.Cart, error)
	// RemoveItem 幂等, 移除不存在的条目也视为成功
	RemoveItem(ctx context.Context, buyerID, artworkID int64) (domain.Cart, error)
	Clear(ctx context.Context, buyerID int64) error
	GetCart(ctx context.Context, buyerID int64) (domain.Cart, error)
}

func NewService(repo repository.CartRepository, artworkSvc artwork.Service) Service {
	return &service{repo: repo, artworkSvc: artworkSvc}
}

type service struct {
	repo       repository.CartRepository
	artworkSvc artwork.Service
}

func (s *service) AddItem(ctx context.Context, buyerID, artworkID int64) (domain.Cart, error) {
	_, err := s.artworkSvc.FindArtworkByID(ctx, artworkID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("加购作品失败: %w", err)
	}
	if err = s.repo.AddItem(ctx, buyerID, artworkID); err != nil {
		return domain.Cart{}, err
	}
	return s.GetCart(ctx, buyerID)
}

func (s *service) RemoveItem(ctx context.Context, buyerID, artworkID int64) (domain.Cart, error) {
	if err := s.repo.RemoveItem(ctx, buyerID, artworkID); err != nil {
		return domain.Cart{}, err
	}
	return s.GetCart(ctx, buyerID)
}

func (s *service) Clear(ctx context.Context, buyerID int64) error {
	return s.repo.Clear(ctx, buyerID)
}

func (s *service) GetCart(ctx context.Context, buyerID int64) (domain.Cart, error) {
	c, err := s.repo.GetCart(ctx, buyerID)
	if err != nil {
		return domain.Cart{}, err
	}
	if len(c.Items) == 0 {
		return c, nil
	}

	ids := slice.Map(c.Items, func(idx int, src domain.CartItem) int64 {
		return src.ArtworkID
	})
	arts, err := s.artworkSvc.FindArtworksByIDs(ctx, ids)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("查找购物车作品失败: %w", err)
	}
	artMap := make(map[int64]artwork.Artwork, len(arts))
	for _, art := range arts {
		artMap[art.ID] = art
	}

	// 已下架或已删除的作品不再展示, 但条目保留, 结算时会再次校验
	items := make([]domain.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		art, ok := artMap[item.ArtworkID]
		if !ok {
			continue
		}
		item.SellerID = art.SellerID
		item.Title = art.Title
		item.Image = art.Image
		item.Price = art.Price
		items = append(items, item)
	}
	c.Items = items
	return c, nil
}

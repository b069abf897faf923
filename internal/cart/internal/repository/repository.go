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

	"github.com/ecodeclub/artmart/internal/cart/internal/domain"
	"github.com/ecodeclub/artmart/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type CartRepository interface {
	AddItem(ctx context.Context, buyerID, artworkID int64) error
	RemoveItem(ctx context.Context, buyerID, artworkID int64) error
	Clear(ctx context.Context, buyerID int64) error
	GetCart(ctx context.Context, buyerID int64) (domain.Cart, error)
}

func NewRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{d: d}
}

type cartRepository struct {
	d dao.CartDAO
}

func (c *cartRepository) AddItem(ctx context.Context, buyerID, artworkID int64) error {
	return c.d.AddItem(ctx, dao.CartItem{
		BuyerId:   buyerID,
		ArtworkId: artworkID,
	})
}

func (c *cartRepository) RemoveItem(ctx context.Context, buyerID, artworkID int64) error {
	return c.d.RemoveItem(ctx, buyerID, artworkID)
}

func (c *cartRepository) Clear(ctx context.Context, buyerID int64) error {
	return c.d.Clear(ctx, buyerID)
}

func (c *cartRepository) GetCart(ctx context.Context, buyerID int64) (domain.Cart, error) {
	items, err := c.d.FindByBuyerID(ctx, buyerID)
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{
		BuyerID: buyerID,
		Items: slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
			return domain.CartItem{
				ArtworkID: src.ArtworkId,
				Ctime:     src.Ctime,
			}
		}),
	}, nil
}

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
	"errors"

	"github.com/ecodeclub/artmart/internal/artwork/internal/domain"
	"github.com/ecodeclub/artmart/internal/artwork/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"
)

var ErrArtworkNotFound = errors.New("作品不存在")

type ArtworkRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Artwork, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Artwork, error)
	Create(ctx context.Context, art domain.Artwork) (int64, error)
}

func NewRepository(d dao.ArtworkDAO) ArtworkRepository {
	return &artworkRepository{d: d}
}

type artworkRepository struct {
	d dao.ArtworkDAO
}

func (a *artworkRepository) FindByID(ctx context.Context, id int64) (domain.Artwork, error) {
	art, err := a.d.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Artwork{}, ErrArtworkNotFound
		}
		return domain.Artwork{}, err
	}
	return a.toDomain(art), nil
}

func (a *artworkRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Artwork, error) {
	arts, err := a.d.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(arts, func(idx int, src dao.Artwork) domain.Artwork {
		return a.toDomain(src)
	}), nil
}

func (a *artworkRepository) Create(ctx context.Context, art domain.Artwork) (int64, error) {
	return a.d.Create(ctx, a.toEntity(art))
}

func (a *artworkRepository) toDomain(art dao.Artwork) domain.Artwork {
	return domain.Artwork{
		ID:          art.Id,
		SN:          art.SN,
		Title:       art.Title,
		Description: art.Description,
		Image:       art.Image,
		Price:       art.Price,
		SellerID:    art.SellerId,
		Status:      domain.ArtworkStatus(art.Status),
		Ctime:       art.Ctime,
		Utime:       art.Utime,
	}
}

func (a *artworkRepository) toEntity(art domain.Artwork) dao.Artwork {
	return dao.Artwork{
		Id:          art.ID,
		SN:          art.SN,
		Title:       art.Title,
		Description: art.Description,
		Image:       art.Image,
		Price:       art.Price,
		SellerId:    art.SellerID,
		Status:      art.Status.ToUint8(),
	}
}

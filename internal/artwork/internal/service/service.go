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

	"github.com/ecodeclub/artmart/internal/artwork/internal/domain"
	"github.com/ecodeclub/artmart/internal/artwork/internal/repository"
)

var ErrArtworkNotFound = repository.ErrArtworkNotFound

//go:generate mockgen -source=./service.go -package=artworkmocks -destination=../../mocks/artwork.mock.go Service
type Service interface {
	// FindArtworkByID 只返回上架中的作品
	FindArtworkByID(ctx context.Context, id int64) (domain.Artwork, error)
	// FindArtworksByIDs 不存在或已下架的ID会被跳过,调用方需要自行校验
	FindArtworksByIDs(ctx context.Context, ids []int64) ([]domain.Artwork, error)
}

func NewService(repo repository.ArtworkRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ArtworkRepository
}

func (s *service) FindArtworkByID(ctx context.Context, id int64) (domain.Artwork, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindArtworksByIDs(ctx context.Context, ids []int64) ([]domain.Artwork, error) {
	return s.repo.FindByIDs(ctx, ids)
}

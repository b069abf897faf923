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
	"testing"

	"github.com/ecodeclub/artmart/internal/artwork"
	artworkmocks "github.com/ecodeclub/artmart/internal/artwork/mocks"
	"github.com/ecodeclub/artmart/internal/cart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBuyerID = int64(100)

// fakeCartRepo 用内存map模拟仓储, 保持加购顺序
type fakeCartRepo struct {
	items map[int64][]int64
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[int64][]int64)}
}

func (f *fakeCartRepo) AddItem(_ context.Context, buyerID, artworkID int64) error {
	for _, id := range f.items[buyerID] {
		if id == artworkID {
			return nil
		}
	}
	f.items[buyerID] = append(f.items[buyerID], artworkID)
	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, buyerID, artworkID int64) error {
	res := f.items[buyerID][:0]
	for _, id := range f.items[buyerID] {
		if id != artworkID {
			res = append(res, id)
		}
	}
	f.items[buyerID] = res
	return nil
}

func (f *fakeCartRepo) Clear(_ context.Context, buyerID int64) error {
	delete(f.items, buyerID)
	return nil
}

func (f *fakeCartRepo) GetCart(_ context.Context, buyerID int64) (domain.Cart, error) {
	c := domain.Cart{BuyerID: buyerID}
	for _, id := range f.items[buyerID] {
		c.Items = append(c.Items, domain.CartItem{ArtworkID: id})
	}
	return c, nil
}

func testArtwork(id, sellerID, price int64, title string) artwork.Artwork {
	return artwork.Artwork{
		ID:       id,
		Title:    title,
		Image:    "https://cdn.artmart.dev/a.jpg",
		Price:    price,
		SellerID: sellerID,
		Status:   artwork.StatusOnShelf,
	}
}

func TestService_AddItem(t *testing.T) {
	t.Parallel()

	t.Run("加购在售作品", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		artworkSvc := artworkmocks.NewMockService(ctrl)
		artworkSvc.EXPECT().FindArtworkByID(gomock.Any(), int64(11)).
			Return(testArtwork(11, 200, 1500, "日出"), nil)
		artworkSvc.EXPECT().FindArtworksByIDs(gomock.Any(), []int64{11}).
			Return([]artwork.Artwork{testArtwork(11, 200, 1500, "日出")}, nil)

		svc := NewService(newFakeCartRepo(), artworkSvc)
		c, err := svc.AddItem(context.Background(), testBuyerID, 11)
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, domain.CartItem{
			ArtworkID: 11,
			SellerID:  200,
			Title:     "日出",
			Image:     "https://cdn.artmart.dev/a.jpg",
			Price:     1500,
		}, c.Items[0])
	})

	t.Run("重复加购是幂等的", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		artworkSvc := artworkmocks.NewMockService(ctrl)
		artworkSvc.EXPECT().FindArtworkByID(gomock.Any(), int64(11)).
			Return(testArtwork(11, 200, 1500, "日出"), nil).Times(2)
		artworkSvc.EXPECT().FindArtworksByIDs(gomock.Any(), []int64{11}).
			Return([]artwork.Artwork{testArtwork(11, 200, 1500, "日出")}, nil).Times(2)

		svc := NewService(newFakeCartRepo(), artworkSvc)
		_, err := svc.AddItem(context.Background(), testBuyerID, 11)
		require.NoError(t, err)
		c, err := svc.AddItem(context.Background(), testBuyerID, 11)
		require.NoError(t, err)
		assert.Len(t, c.Items, 1)
	})

	t.Run("加购不存在的作品", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		artworkSvc := artworkmocks.NewMockService(ctrl)
		artworkSvc.EXPECT().FindArtworkByID(gomock.Any(), int64(404)).
			Return(artwork.Artwork{}, artwork.ErrArtworkNotFound)

		svc := NewService(newFakeCartRepo(), artworkSvc)
		_, err := svc.AddItem(context.Background(), testBuyerID, 404)
		assert.ErrorIs(t, err, ErrArtworkNotFound)
	})
}

func TestService_RemoveItem(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	artworkSvc := artworkmocks.NewMockService(ctrl)

	repo := newFakeCartRepo()
	require.NoError(t, repo.AddItem(context.Background(), testBuyerID, 11))
	svc := NewService(repo, artworkSvc)

	// 移除后购物车为空, 不再查作品服务
	c, err := svc.RemoveItem(context.Background(), testBuyerID, 11)
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	// 重复移除同样成功
	c, err = svc.RemoveItem(context.Background(), testBuyerID, 11)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestService_GetCart(t *testing.T) {
	t.Parallel()

	t.Run("展示时跳过已下架作品", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		artworkSvc := artworkmocks.NewMockService(ctrl)
		// 作品12已下架, 查询结果里没有它
		artworkSvc.EXPECT().FindArtworksByIDs(gomock.Any(), []int64{11, 12}).
			Return([]artwork.Artwork{testArtwork(11, 200, 1500, "日出")}, nil)

		repo := newFakeCartRepo()
		require.NoError(t, repo.AddItem(context.Background(), testBuyerID, 11))
		require.NoError(t, repo.AddItem(context.Background(), testBuyerID, 12))

		svc := NewService(repo, artworkSvc)
		c, err := svc.GetCart(context.Background(), testBuyerID)
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, int64(11), c.Items[0].ArtworkID)
	})

	t.Run("空购物车不查作品服务", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		artworkSvc := artworkmocks.NewMockService(ctrl)

		svc := NewService(newFakeCartRepo(), artworkSvc)
		c, err := svc.GetCart(context.Background(), testBuyerID)
		require.NoError(t, err)
		assert.Equal(t, testBuyerID, c.BuyerID)
		assert.Empty(t, c.Items)
	})
}

func TestService_Clear(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	artworkSvc := artworkmocks.NewMockService(ctrl)

	repo := newFakeCartRepo()
	require.NoError(t, repo.AddItem(context.Background(), testBuyerID, 11))

	svc := NewService(repo, artworkSvc)
	require.NoError(t, svc.Clear(context.Background(), testBuyerID))

	c, err := svc.GetCart(context.Background(), testBuyerID)
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

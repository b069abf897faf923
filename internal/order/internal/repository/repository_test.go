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
	"testing"

	"github.com/ecodeclub/artmart/internal/order/internal/domain"
	"github.com/ecodeclub/artmart/internal/order/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderDAO 只为验证仓储层的持久化边界行为, 返回预置的实体
type fakeOrderDAO struct {
	dao.OrderDAO
	order dao.Order
	lines []dao.OrderLine
}

func (f *fakeOrderDAO) CreateFromCart(_ context.Context, _ dao.Order) (dao.Order, []dao.OrderLine, bool, error) {
	return f.order, f.lines, true, nil
}

func TestRepository_CreateFromCart(t *testing.T) {
	t.Parallel()

	t.Run("总价等于行价之和", func(t *testing.T) {
		t.Parallel()
		repo := NewRepository(&fakeOrderDAO{
			order: dao.Order{Id: 1, SN: "SN1", BuyerId: 100, TotalAmount: 4000},
			lines: []dao.OrderLine{
				{OrderId: 1, ArtworkId: 11, SellerId: 200, Price: 1500},
				{OrderId: 1, ArtworkId: 12, SellerId: 300, Price: 2500},
			},
		})

		order, created, err := repo.CreateFromCart(context.Background(), domain.Order{BuyerID: 100})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(4000), order.TotalAmount)
		assert.Len(t, order.Lines, 2)
	})

	t.Run("总价与行价之和不一致要报错", func(t *testing.T) {
		t.Parallel()
		repo := NewRepository(&fakeOrderDAO{
			order: dao.Order{Id: 2, SN: "SN2", BuyerId: 100, TotalAmount: 9999},
			lines: []dao.OrderLine{
				{OrderId: 2, ArtworkId: 11, SellerId: 200, Price: 1500},
			},
		})

		_, _, err := repo.CreateFromCart(context.Background(), domain.Order{BuyerID: 100})
		assert.Error(t, err)
	})
}

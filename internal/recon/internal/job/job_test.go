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

package job

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/artmart/internal/recon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReconService struct {
	unresolved []domain.Reconciliation
	listErr    error
	resolved   []int64
}

func (f *fakeReconService) Record(_ context.Context, r domain.Reconciliation) error {
	f.unresolved = append(f.unresolved, r)
	return nil
}

func (f *fakeReconService) ListUnresolved(_ context.Context, _, _ int, _ int64) ([]domain.Reconciliation, error) {
	return f.unresolved, f.listErr
}

func (f *fakeReconService) MarkResolved(_ context.Context, id int64) error {
	f.resolved = append(f.resolved, id)
	return nil
}

type fakeOrderChecker struct {
	exists map[string]bool
	errOn  string
}

func (f *fakeOrderChecker) OrderExistsByIntentID(_ context.Context, intentID string) (bool, error) {
	if intentID == f.errOn {
		return false, errors.New("模拟查询失败")
	}
	return f.exists[intentID], nil
}

func TestReconcileCapturedPaymentsJob_Run(t *testing.T) {
	t.Parallel()

	t.Run("订单补齐的记录被标记解决", func(t *testing.T) {
		t.Parallel()
		svc := &fakeReconService{unresolved: []domain.Reconciliation{
			{ID: 1, IntentID: "PAY-1"},
			{ID: 2, IntentID: "PAY-2"},
			{ID: 3, IntentID: "PAY-3"},
		}}
		checker := &fakeOrderChecker{
			// PAY-2的订单依然缺失, PAY-3查询失败
			exists: map[string]bool{"PAY-1": true},
			errOn:  "PAY-3",
		}

		job := NewReconcileCapturedPaymentsJob(svc, checker, 30, 100)
		require.NoError(t, job.Run(context.Background()))
		assert.Equal(t, []int64{1}, svc.resolved)
	})

	t.Run("列表查询失败直接返回", func(t *testing.T) {
		t.Parallel()
		svc := &fakeReconService{listErr: errors.New("模拟数据库故障")}
		job := NewReconcileCapturedPaymentsJob(svc, &fakeOrderChecker{}, 30, 100)
		assert.Error(t, job.Run(context.Background()))
	})

	t.Run("没有待处理记录", func(t *testing.T) {
		t.Parallel()
		svc := &fakeReconService{}
		job := NewReconcileCapturedPaymentsJob(svc, &fakeOrderChecker{}, 30, 100)
		require.NoError(t, job.Run(context.Background()))
		assert.Empty(t, svc.resolved)
	})
}

func TestReconcileCapturedPaymentsJob_Name(t *testing.T) {
	t.Parallel()
	job := NewReconcileCapturedPaymentsJob(&fakeReconService{}, &fakeOrderChecker{}, 30, 100)
	assert.Equal(t, "reconcile_captured_payments_job", job.Name())
}

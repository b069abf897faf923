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
	"time"

	"github.com/ecodeclub/artmart/internal/recon/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ReconcileCapturedPaymentsJob)(nil)

// ReconcileCapturedPaymentsJob 定时核对已捕获但当时未落单的支付。
// 只处理落库超过minutes分钟的记录, 避免和还在途中的结算请求赛跑
type ReconcileCapturedPaymentsJob struct {
	svc     service.Service
	checker service.OrderChecker
	minutes int64
	limit   int
	l       *elog.Component
}

func NewReconcileCapturedPaymentsJob(svc service.Service,
	checker service.OrderChecker,
	minutes int64, limit int) *ReconcileCapturedPaymentsJob {
	return &ReconcileCapturedPaymentsJob{
		svc:     svc,
		checker: checker,
		minutes: minutes,
		limit:   limit,
		l:       elog.DefaultLogger,
	}
}

func (r *ReconcileCapturedPaymentsJob) Name() string {
	return "reconcile_captured_payments_job"
}

func (r *ReconcileCapturedPaymentsJob) Run(ctx context.Context) error {
	ctime := time.Now().Add(time.Duration(-r.minutes) * time.Minute).UnixMilli()
	rs, err := r.svc.ListUnresolved(ctx, 0, r.limit, ctime)
	if err != nil {
		return err
	}
	var resolved int64
	for _, rec := range rs {
		ok, err := r.checker.OrderExistsByIntentID(ctx, rec.IntentID)
		if err != nil {
			r.l.Error("核对订单失败",
				elog.FieldErr(err),
				elog.String("intentID", rec.IntentID))
			continue
		}
		if !ok {
			// 订单仍然缺失, 留给下一轮或人工介入
			r.l.Warn("已捕获的支付没有对应订单",
				elog.String("intentID", rec.IntentID),
				elog.Int64("buyerID", rec.BuyerID),
				elog.Int64("amount", rec.Amount))
			continue
		}
		if err := r.svc.MarkResolved(ctx, rec.ID); err != nil {
			r.l.Error("标记对账记录失败",
				elog.FieldErr(err),
				elog.Int64("id", rec.ID))
			continue
		}
		resolved++
	}
	if resolved > 0 {
		r.l.Info("对账任务完成", elog.Int64("resolved", resolved))
	}
	return nil
}

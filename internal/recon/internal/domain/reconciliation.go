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

package domain

// Reconciliation 捕获成功但订单落库失败时留下的对账线索:
// 钱已经动了, 订单可能还不存在, 需要人工介入
type Reconciliation struct {
	ID       int64
	IntentID string
	BuyerID  int64
	Amount   int64
	Currency string
	Detail   string
	Resolved bool
	Ctime    int64
	Utime    int64
}

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

package errs

type ErrorCode struct {
	Code int
	Msg  string
}

var (
	SystemError          = ErrorCode{Code: 517001, Msg: "系统错误"}
	EmptyCart            = ErrorCode{Code: 517002, Msg: "购物车为空"}
	InvalidAmount        = ErrorCode{Code: 517003, Msg: "支付金额非法"}
	OrderNotFound        = ErrorCode{Code: 517004, Msg: "订单不存在"}
	GatewayUnavailable   = ErrorCode{Code: 517005, Msg: "支付网关不可用"}
	GatewayCaptureFailed = ErrorCode{Code: 517006, Msg: "支付捕获失败"}
	InvalidTransition    = ErrorCode{Code: 517007, Msg: "订单状态流转非法"}
	Unauthorized         = ErrorCode{Code: 517008, Msg: "无权操作该订单"}
	DuplicateRequest     = ErrorCode{Code: 517009, Msg: "重复请求"}
)

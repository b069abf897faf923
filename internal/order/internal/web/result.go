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

package web

import (
	"github.com/ecodeclub/artmart/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	invalidAmountResult = ginx.Result{
		Code: errs.InvalidAmount.Code,
		Msg:  errs.InvalidAmount.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	gatewayUnavailableResult = ginx.Result{
		Code: errs.GatewayUnavailable.Code,
		Msg:  errs.GatewayUnavailable.Msg,
	}
	gatewayCaptureFailedResult = ginx.Result{
		Code: errs.GatewayCaptureFailed.Code,
		Msg:  errs.GatewayCaptureFailed.Msg,
	}
	invalidTransitionResult = ginx.Result{
		Code: errs.InvalidTransition.Code,
		Msg:  errs.InvalidTransition.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: errs.Unauthorized.Code,
		Msg:  errs.Unauthorized.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
)

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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/artmart/internal/artwork"
	artworkdao "github.com/ecodeclub/artmart/internal/artwork/internal/repository/dao"
	cartdao "github.com/ecodeclub/artmart/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/artmart/internal/order/internal/errs"
	"github.com/ecodeclub/artmart/internal/order/internal/integration/startup"
	"github.com/ecodeclub/artmart/internal/order/internal/web"
	"github.com/ecodeclub/artmart/internal/payment"
	paymentmocks "github.com/ecodeclub/artmart/internal/payment/mocks"
	"github.com/ecodeclub/artmart/internal/test"
	testioc "github.com/ecodeclub/artmart/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	buyerUID  = int64(2061)
	sellerUID = int64(3071)
)

type ModuleTestSuite struct {
	suite.Suite
	server     *egin.Component
	db         *egorm.Component
	ctrl       *gomock.Controller
	gatewaySvc *paymentmocks.MockGatewayService
	artworkDAO artworkdao.ArtworkDAO
	cartDAO    cartdao.CartDAO
	uid        int64
}

func (s *ModuleTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())
	s.gatewaySvc = paymentmocks.NewMockGatewayService(s.ctrl)

	module, err := startup.InitModule(&payment.Module{GatewaySvc: s.gatewaySvc})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	s.uid = buyerUID
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.uid,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	s.db = testioc.InitDB()
	s.artworkDAO = artworkdao.NewArtworkGORMDAO(s.db)
	s.cartDAO = cartdao.NewCartGORMDAO(s.db)
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"orders", "order_lines", "cart_items", "artworks", "reconciliations"} {
		require.NoError(s.T(), s.db.Exec("DROP TABLE `"+table+"`").Error)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	s.uid = buyerUID
	for _, table := range []string{"orders", "order_lines", "cart_items", "artworks", "reconciliations"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

// seedCart 上架两件作品并放进买家购物车, 返回总价
func (s *ModuleTestSuite) seedCart(t *testing.T) int64 {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	arts := []artworkdao.Artwork{
		{SN: "ART-1", Title: "日出", Image: "https://cdn.artmart.dev/1.jpg", Price: 1500, SellerId: sellerUID, Status: artwork.StatusOnShelf.ToUint8()},
		{SN: "ART-2", Title: "黄昏", Image: "https://cdn.artmart.dev/2.jpg", Price: 2500, SellerId: sellerUID, Status: artwork.StatusOnShelf.ToUint8()},
	}
	var total int64
	for _, art := range arts {
		id, err := s.artworkDAO.Create(ctx, art)
		require.NoError(t, err)
		require.NoError(t, s.cartDAO.AddItem(ctx, cartdao.CartItem{BuyerId: buyerUID, ArtworkId: id}))
		total += art.Price
	}
	return total
}

func (s *ModuleTestSuite) cartSize(t *testing.T) int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	items, err := s.cartDAO.FindByBuyerID(ctx, buyerUID)
	require.NoError(t, err)
	return len(items)
}

func (s *ModuleTestSuite) TestPreviewCheckout() {
	t := s.T()
	total := s.seedCart(t)

	req, err := http.NewRequest(http.MethodPost, "/checkout/preview", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.PreviewCheckoutResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, total, resp.TotalAmount)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, sellerUID, resp.Items[0].SellerID)
	// 预览没有副作用
	assert.Equal(t, 2, s.cartSize(t))
}

func (s *ModuleTestSuite) TestPreviewEmptyCart() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/checkout/preview", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.PreviewCheckoutResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.EmptyCart.Code, recorder.MustScan().Code)
}

func (s *ModuleTestSuite) TestCreateCODOrder() {
	t := s.T()
	total := s.seedCart(t)

	req, err := http.NewRequest(http.MethodPost, "/checkout/cod", iox.NewJSONReader(web.CreateCODOrderReq{
		RequestID: "cod-req-1",
		Shipping:  web.Shipping{Recipient: "张三", City: "上海", Country: "CN", GiftMessage: "生日快乐"},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.OrderResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, 200, recorder.Code)
	order := recorder.MustScan().Data.Order
	assert.Equal(t, uint8(2), order.Method)
	assert.Equal(t, uint8(1), order.Status)
	assert.Equal(t, total, order.TotalAmount)
	assert.Equal(t, "张三", order.Shipping.Recipient)
	assert.Equal(t, "生日快乐", order.Shipping.GiftMessage)
	require.Len(t, order.Lines, 2)
	assert.NotEmpty(t, order.SN)
	// 下单后购物车被清空
	assert.Equal(t, 0, s.cartSize(t))
}

// TestCreateCODOrderLongGiftMessage 收货信息是自由文本, 超出列宽的部分
// 在入口截断, 不会让订单落库失败
func (s *ModuleTestSuite) TestCreateCODOrderLongGiftMessage() {
	t := s.T()
	s.seedCart(t)

	req, err := http.NewRequest(http.MethodPost, "/checkout/cod", iox.NewJSONReader(web.CreateCODOrderReq{
		RequestID: "cod-req-long",
		Shipping: web.Shipping{
			Recipient:   "张三",
			GiftMessage: strings.Repeat("祝", 600),
		},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.OrderResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, 200, recorder.Code)
	order := recorder.MustScan().Data.Order
	assert.Equal(t, strings.Repeat("祝", 512), order.Shipping.GiftMessage)
	assert.Equal(t, 0, s.cartSize(t))
}

// TestConcurrentCheckout 两个结算请求抢同一个购物车, 行锁串行化后只有一单成立
func (s *ModuleTestSuite) TestConcurrentCheckout() {
	t := s.T()
	total := s.seedCart(t)

	requestIDs := []string{"cod-race-1", "cod-race-2"}
	recorders := make([]*test.JSONResponseRecorder[web.OrderResp], len(requestIDs))
	var wg sync.WaitGroup
	for i := range requestIDs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			req, err := http.NewRequest(http.MethodPost, "/checkout/cod", iox.NewJSONReader(web.CreateCODOrderReq{
				RequestID: requestIDs[idx],
				Shipping:  web.Shipping{Recipient: "张三"},
			}))
			if err != nil {
				return
			}
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.OrderResp]()
			s.server.ServeHTTP(recorder, req)
			recorders[idx] = recorder
		}(i)
	}
	wg.Wait()

	// 后到的事务看到的是空购物车
	var okCount, emptyCount int
	for _, recorder := range recorders {
		require.NotNil(t, recorder)
		if recorder.Code == 200 {
			okCount++
			assert.Equal(t, total, recorder.MustScan().Data.Order.TotalAmount)
			continue
		}
		emptyCount++
		assert.Equal(t, errs.EmptyCart.Code, recorder.MustScan().Code)
	}
	assert.Equal(t, 1, okCount)
	assert.Equal(t, 1, emptyCount)

	var count int64
	require.NoError(t, s.db.Table("orders").Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 0, s.cartSize(t))
}

func (s *ModuleTestSuite) TestCreateCODOrderDuplicateRequestID() {
	t := s.T()
	s.seedCart(t)

	body := web.CreateCODOrderReq{
		RequestID: "cod-req-dup",
		Shipping:  web.Shipping{Recipient: "张三"},
	}
	req, err := http.NewRequest(http.MethodPost, "/checkout/cod", iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.OrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	req, err = http.NewRequest(http.MethodPost, "/checkout/cod", iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.OrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.DuplicateRequest.Code, recorder.MustScan().Code)
}

func (s *ModuleTestSuite) TestPayPalCheckout() {
	t := s.T()
	total := s.seedCart(t)

	s.gatewaySvc.EXPECT().CreateIntent(gomock.Any(), total, "USD").Return("PAY-E2E-1", nil)
	s.gatewaySvc.EXPECT().CaptureIntent(gomock.Any(), "PAY-E2E-1").
		Return(payment.Capture{IntentID: "PAY-E2E-1", Reference: "TXN-E2E-1", Amount: total}, nil)

	req, err := http.NewRequest(http.MethodPost, "/checkout/paypal/create", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CreateIntentResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	intentID := recorder.MustScan().Data.IntentID
	require.Equal(t, "PAY-E2E-1", intentID)

	captureReq, err := http.NewRequest(http.MethodPost, "/checkout/paypal/capture", iox.NewJSONReader(web.CaptureOrderReq{
		RequestID: "paypal-req-1",
		IntentID:  intentID,
		Shipping:  web.Shipping{Recipient: "李四", City: "北京", Country: "CN"},
	}))
	require.NoError(t, err)
	captureReq.Header.Set("content-type", "application/json")
	captureRecorder := test.NewJSONResponseRecorder[web.OrderResp]()
	s.server.ServeHTTP(captureRecorder, captureReq)

	require.Equal(t, 200, captureRecorder.Code)
	order := captureRecorder.MustScan().Data.Order
	assert.Equal(t, uint8(1), order.Method)
	assert.Equal(t, uint8(2), order.Status)
	assert.Equal(t, total, order.TotalAmount)
	assert.Equal(t, "TXN-E2E-1", order.PaymentReference)
	assert.Equal(t, 0, s.cartSize(t))

	// 同一意向重复提交返回同一订单, 不再打网关
	retryReq, err := http.NewRequest(http.MethodPost, "/checkout/paypal/capture", iox.NewJSONReader(web.CaptureOrderReq{
		RequestID: "paypal-req-2",
		IntentID:  intentID,
		Shipping:  web.Shipping{Recipient: "李四"},
	}))
	require.NoError(t, err)
	retryReq.Header.Set("content-type", "application/json")
	retryRecorder := test.NewJSONResponseRecorder[web.OrderResp]()
	s.server.ServeHTTP(retryRecorder, retryReq)
	require.Equal(t, 200, retryRecorder.Code)
	assert.Equal(t, order.ID, retryRecorder.MustScan().Data.Order.ID)
}

func (s *ModuleTestSuite) TestPayPalCaptureFailed() {
	t := s.T()
	s.seedCart(t)

	s.gatewaySvc.EXPECT().CaptureIntent(gomock.Any(), "PAY-E2E-BAD").
		Return(payment.Capture{}, payment.ErrGatewayCaptureFailed)

	req, err := http.NewRequest(http.MethodPost, "/checkout/paypal/capture", iox.NewJSONReader(web.CaptureOrderReq{
		RequestID: "paypal-req-bad",
		IntentID:  "PAY-E2E-BAD",
		Shipping:  web.Shipping{Recipient: "李四"},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.OrderResp]()
	s.server.ServeHTTP(recorder, req)

	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.GatewayCaptureFailed.Code, recorder.MustScan().Code)
	// 捕获失败购物车保持原样, 买家调整后可以重试
	assert.Equal(t, 2, s.cartSize(t))
}

func (s *ModuleTestSuite) TestOrderLifecycle() {
	t := s.T()
	s.seedCart(t)

	req, err := http.NewRequest(http.MethodPost, "/checkout/cod", iox.NewJSONReader(web.CreateCODOrderReq{
		RequestID: "cod-req-lifecycle",
		Shipping:  web.Shipping{Recipient: "张三"},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.OrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	orderID := recorder.MustScan().Data.Order.ID

	// 买家无权推进状态
	s.uid = buyerUID
	statusCode, resultCode := s.patchStatus(t, orderID, 3)
	require.Equal(t, 500, statusCode)
	assert.Equal(t, errs.Unauthorized.Code, resultCode)

	// 卖家沿流转表推进到已收款
	s.uid = sellerUID
	for _, status := range []uint8{3, 4, 5, 6} {
		statusCode, _ = s.patchStatus(t, orderID, status)
		require.Equal(t, 200, statusCode, "status=%d", status)
	}

	// 终态之后再推进被拒绝
	statusCode, resultCode = s.patchStatus(t, orderID, 6)
	require.Equal(t, 500, statusCode)
	assert.Equal(t, errs.InvalidTransition.Code, resultCode)

	// 卖家订单列表能看到这单
	salesReq, err := http.NewRequest(http.MethodGet, "/orders/sales", nil)
	require.NoError(t, err)
	salesRecorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(salesRecorder, salesReq)
	require.Equal(t, 200, salesRecorder.Code)
	sales := salesRecorder.MustScan().Data
	assert.Equal(t, int64(1), sales.Total)
	require.Len(t, sales.Orders, 1)
	assert.Equal(t, uint8(6), sales.Orders[0].Status)

	// 买家订单列表
	s.uid = buyerUID
	listReq, err := http.NewRequest(http.MethodGet, "/orders", nil)
	require.NoError(t, err)
	listRecorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(listRecorder, listReq)
	require.Equal(t, 200, listRecorder.Code)
	assert.Equal(t, int64(1), listRecorder.MustScan().Data.Total)
}

func (s *ModuleTestSuite) patchStatus(t *testing.T, orderID int64, status uint8) (int, int) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPatch,
		"/orders/"+strconv.FormatInt(orderID, 10)+"/status",
		iox.NewJSONReader(web.UpdateOrderStatusReq{Status: status}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.OrderResp]()
	s.server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.MustScan().Code
}

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/artmart/internal/artwork"
	"github.com/ecodeclub/artmart/internal/cart"
	"github.com/ecodeclub/artmart/internal/notification"
	"github.com/ecodeclub/artmart/internal/order"
	"github.com/ecodeclub/artmart/internal/payment"
	"github.com/ecodeclub/artmart/internal/recommendation"
	"github.com/ecodeclub/artmart/internal/recon"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSnowflakeNode)

func InitApp() (*App, error) {
	wire.Build(
		BaseSet,
		artwork.InitModule,
		wire.FieldsOf(new(*artwork.Module), "Svc"),
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		payment.InitModule,
		recon.InitModule,
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl"),
		notification.InitModule,
		recommendation.InitModule,
		InitSession,
		initGinxServer,
		initCronJobs,
		initMQConsumers,
		wire.Struct(new(App), "*"),
	)
	return new(App), nil
}

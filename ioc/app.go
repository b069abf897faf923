package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

// Consumer 消息队列消费者, Start后常驻后台
type Consumer interface {
	Start(ctx context.Context)
}

type App struct {
	Web       *egin.Component
	Crons     []ecron.Ecron
	Consumers []Consumer
}

package events

import (
	"context"

	"github.com/danielnamimi665/barber-shop-web/internal/notify"
)

type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan notify.Event, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

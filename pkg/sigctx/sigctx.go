package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext is done on the first interrupt, terminate or quit signal.
func NotifyContext() (context.Context, context.CancelFunc) {
	return WithParent(context.Background())
}

func WithParent(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}

package main

import (
	"context"
	"time"

	"github.com/niksmo/shopping-site/config"
	"github.com/niksmo/shopping-site/internal/app"
	"github.com/niksmo/shopping-site/pkg/sigctx"
)

// closeTimeout bounds draining requests and flushing outbound adapters.
const closeTimeout = 5 * time.Second

func main() {
	cfg := config.Load()
	cfg.Print()

	sigCtx, stop := sigctx.NotifyContext()
	defer stop()

	shop := app.New(sigCtx, cfg)
	shop.Run(stop)

	<-sigCtx.Done()
	shutdown(shop)
}

func shutdown(shop *app.App) {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	shop.Close(ctx)
}

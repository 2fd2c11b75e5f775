package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/shopping-site/internal/core/port"
)

const (
	requestTimeout    = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 30 * time.Second
)

// NewHandler routes the storefront API. Every route requires the session
// header.
func NewHandler(sessionHeader string, s port.Storefront) http.Handler {
	mux := http.NewServeMux()
	RegisterCatalog(mux, s)
	RegisterCart(mux, s)
	RegisterOrders(mux, s)

	return AllowJSON(RequireSession(sessionHeader, mux))
}

type HTTPServer struct {
	httpServer *http.Server
}

func NewHTTPServer(addr string, handler http.Handler) HTTPServer {
	handler = http.TimeoutHandler(handler, requestTimeout, "unavailable")
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	return HTTPServer{s}
}

func (s HTTPServer) Run(stopFn context.CancelFunc) {
	const op = "HTTPServer.Run"
	log := slog.With("op", op, "addr", s.httpServer.Addr)

	defer stopFn()
	log.Info("http server is listening")
	err := s.httpServer.ListenAndServe()
	if err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		log.Error("unexpected server shutdown", "err", err)
	}
}

// Close waits for in-flight requests until ctx is done, then drops the
// remaining connections.
func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op)

	log.Info("closing http server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Warn("graceful shutdown interrupted", "err", err)
		if err := s.httpServer.Close(); err != nil {
			log.Error("failed to close connections", "err", err)
		}
	}
	log.Info("http server is closed")
}

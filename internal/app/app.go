package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/niksmo/shopping-site/config"
	"github.com/niksmo/shopping-site/internal/adapter"
	"github.com/niksmo/shopping-site/internal/adapter/httphandler"
	"github.com/niksmo/shopping-site/internal/adapter/kafka"
	"github.com/niksmo/shopping-site/internal/adapter/storage"
	"github.com/niksmo/shopping-site/internal/core/port"
	"github.com/niksmo/shopping-site/internal/core/service"
	"github.com/niksmo/shopping-site/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type outbound struct {
	publisher port.OrderPublisher
	archive   port.OrderArchive
	closers   []func()
}

// close releases the outbound adapters in reverse order of opening.
func (o outbound) close() {
	for _, closeFn := range slices.Backward(o.closers) {
		closeFn()
	}
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	outbound   outbound
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOrderPublisher()
	app.initOrderArchive()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOrderPublisher() {
	const op = "App.initOrderPublisher"
	log := slog.With("op", op)

	brokerCfg := app.cfg.Broker
	if !brokerCfg.Enabled() {
		log.Info("no seed brokers, orders are not published")
		return
	}

	var tlsConfig *tls.Config
	if brokerCfg.TLS.Enabled() {
		var err error
		tlsConfig, err = adapter.MakeTLSConfig(
			brokerCfg.TLS.CA, brokerCfg.TLS.Cert, brokerCfg.TLS.Key,
		)
		if err != nil {
			app.fallDown(op, err)
		}
	}

	srClient, err := sr.NewClient(sr.URLs(brokerCfg.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	orderSerde, err := schema.NewSerdeOrderV1(
		app.ctx,
		schema.SubjectOpt(brokerCfg.Topics.Orders+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	ordersProducer, err := kafka.NewOrdersProducer(
		kafka.ProducerClientOpt(
			app.ctx, brokerCfg.SeedBrokers, brokerCfg.Topics.Orders, tlsConfig,
		),
		kafka.ProducerEncoderOpt(orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.outbound.publisher = ordersProducer
	app.outbound.closers = append(app.outbound.closers, ordersProducer.Close)
	log.Info("orders are published", "topic", brokerCfg.Topics.Orders)
}

func (app *App) initOrderArchive() {
	const op = "App.initOrderArchive"
	log := slog.With("op", op)

	if app.cfg.SQLDB == "" {
		log.Info("no sql database, orders are not archived")
		return
	}

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}

	app.outbound.archive = storage.NewOrdersRepository(sqldb)
	app.outbound.closers = append(app.outbound.closers, sqldb.Close)
	log.Info("orders are archived")
}

func (app *App) initCoreService() {
	app.service = service.New(
		service.Config{IdleTimeout: app.cfg.Session.IdleTimeout},
		app.outbound.publisher,
		app.outbound.archive,
	)
}

func (app *App) initInboundAdapters() {
	handler := httphandler.NewHandler(app.cfg.Session.Header, app.service)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	app.service.Run(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.outbound.close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/niksmo/shopping-site/internal/core/domain"
	"github.com/niksmo/shopping-site/internal/core/port"
	"github.com/niksmo/shopping-site/pkg/retry"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.OrderPublisher = (*OrdersProducer)(nil)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

// produce retries records failing with a retriable broker error.
func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"

	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.ExponentialBackoff(50 * time.Millisecond),
		ShouldRetry: kerr.IsRetriable,
	}

	err := retry.Do(ctx, retryCfg, func() error {
		return p.cl.ProduceSync(ctx, rs...).FirstErr()
	})
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// An OrdersProducer publishes placed [domain.Order] keyed by order id.
type OrdersProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewOrdersProducer(
	opts ...ProducerOpt,
) (OrdersProducer, error) {
	const op = "NewOrdersProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrdersProducer{}, opErr(err, op)
		}
	}

	opPrefix := "OrdersProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return OrdersProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p OrdersProducer) Close() {
	p.producer.close()
}

func (p OrdersProducer) PublishOrder(
	ctx context.Context, sessionID string, o domain.Order,
) error {
	const op = "PublishOrder"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(sessionID, o)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	return nil
}

func (p OrdersProducer) createRecord(
	sessionID string, o domain.Order,
) (*kgo.Record, error) {
	const op = "createRecord"

	s := orderToSchemaV1(sessionID, o)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}
	return &kgo.Record{Key: []byte(s.OrderID), Value: b}, nil
}

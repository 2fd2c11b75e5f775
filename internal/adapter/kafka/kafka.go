package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/niksmo/shopping-site/internal/core/domain"
	"github.com/niksmo/shopping-site/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var ErrTooFewOpts = errors.New("too few options")

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

// ProducerClientOpt connects to the brokers and pings them. A nil tlsConfig
// dials plain TCP.
func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string, tlsConfig *tls.Config,
) ProducerOpt {
	return func(opts *producerOpts) error {
		kopts := []kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
		}
		if tlsConfig != nil {
			kopts = append(kopts, kgo.DialTLSConfig(tlsConfig))
		}

		cl, err := kgo.NewClient(kopts...)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			cl.Close()
			return err
		}
		opts.cl = cl
		return nil
	}
}

// ProducerRawClientOpt uses an already built client.
func ProducerRawClientOpt(cl ProducerClient) ProducerOpt {
	return func(opts *producerOpts) error {
		if cl == nil {
			return errors.New("client is nil")
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func orderToSchemaV1(sessionID string, v domain.Order) (s schema.OrderV1) {
	s.OrderID = v.ID
	s.SessionID = sessionID
	s.Total = int64(v.Total)
	s.Date = v.Date
	s.CreatedAt = v.CreatedAt

	s.Items = make([]schema.OrderItemV1, len(v.Items))
	for i, item := range v.Items {
		s.Items[i].ProductID = int64(item.Product.ID)
		s.Items[i].Name = item.Product.Name
		s.Items[i].Category = item.Product.Category
		s.Items[i].Price = int64(item.Product.Price)
		s.Items[i].Quantity = int64(item.Quantity)
	}
	return
}

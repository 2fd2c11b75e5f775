package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/niksmo/shopping-site/config"
	"github.com/niksmo/shopping-site/internal/adapter"
	"github.com/niksmo/shopping-site/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 3
	cleanupPolicy     = "delete"
	minISR            = "2"
	// a week of placed orders
	retentionMs = "604800000"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	if !cfg.Broker.Enabled() {
		printFail(errors.New("broker.seed_brokers is empty"))
		return
	}

	cl, err := createClient(cfg)
	if err != nil {
		printFail(err)
		return
	}
	defer cl.Close()

	printStart(cfg)
	defer printComplete(time.Now())

	if err := makeTopics(sigCtx, cl, cfg.Broker.Topics.Orders); err != nil {
		printFail(err)
		return
	}
}

func createClient(cfg config.Config) (*kadm.Client, error) {
	opts := []kgo.Opt{kgo.SeedBrokers(cfg.Broker.SeedBrokers...)}

	if tlsFiles := cfg.Broker.TLS; tlsFiles.Enabled() {
		tlsConfig, err := adapter.MakeTLSConfig(
			tlsFiles.CA, tlsFiles.Cert, tlsFiles.Key,
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.DialTLSConfig(tlsConfig))
	}

	return kadm.NewOptClient(opts...)
}

func makeTopics(ctx context.Context, cl *kadm.Client, topics ...string) error {
	policy, isr, retention := cleanupPolicy, minISR, retentionMs

	config := map[string]*string{
		"cleanup.policy":      &policy,
		"min.insync.replicas": &isr,
		"retention.ms":        &retention,
	}

	responses, err := cl.CreateTopics(
		ctx,
		partitions,
		replicationFactor,
		config,
		topics...,
	)
	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		if res.Err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
			} else {
				errs = append(errs, fmt.Errorf("%s: %w", res.Topic, res.Err))
			}
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}

func printStart(cfg config.Config) {
	fmt.Printf("initializing topics...\n\t- %q\n\n", cfg.Broker.Topics.Orders)
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}

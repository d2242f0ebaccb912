package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/chaindiff/internal/config"
	"github.com/gabapcia/chaindiff/internal/handlers/cli"
	"github.com/gabapcia/chaindiff/internal/infra/dump"
	"github.com/gabapcia/chaindiff/internal/infra/messaging/nats"
	"github.com/gabapcia/chaindiff/internal/infra/metrics"
	"github.com/gabapcia/chaindiff/internal/infra/node"
	"github.com/gabapcia/chaindiff/internal/infra/storage/leveldb"
	"github.com/gabapcia/chaindiff/internal/infra/storage/redis"
	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/pkg/logger"
	"github.com/gabapcia/chaindiff/internal/pkg/resilience/retry"
	"github.com/gabapcia/chaindiff/internal/pkg/telemetry"
	httpclient "github.com/gabapcia/chaindiff/internal/pkg/transport/http"
	"github.com/gabapcia/chaindiff/internal/pkg/transport/nodeapi"
	"github.com/gabapcia/chaindiff/internal/snapshot"
	"github.com/gabapcia/chaindiff/internal/watch"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "chaindiff: invalid configuration:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Telemetry goes first so that the logger can bridge into its provider.
	shutdownTelemetry := telemetry.ShutdownFunc(func(context.Context) error { return nil })
	if cfg.TelemetryEnabled {
		shutdownTelemetry, err = telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			fmt.Fprintln(os.Stderr, "chaindiff: init telemetry:", err)
			os.Exit(1)
		}
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "chaindiff: init logger:", err)
		os.Exit(1)
	}

	err = run(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "chaindiff failed", "error", err)
	}

	if shutdownErr := shutdownTelemetry(ctx); shutdownErr != nil {
		logger.Warn(ctx, "failed to flush telemetry", "error", shutdownErr)
	}
	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	collector, err := newCollector(cfg)
	if err != nil {
		return err
	}

	var inspectOpts []inspect.Option
	if cfg.DumpDir != "" {
		inspectOpts = append(inspectOpts, inspect.WithDumper(dump.New(cfg.DumpDir)))
	}
	inspector := inspect.New(collector, inspectOpts...)

	registry := prometheus.NewRegistry()
	recorder := metrics.New(registry)

	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	newWatch := func(ctx context.Context) (watch.Service, error) {
		watcher, closeWatcher, err := newWatcher(ctx, cfg, inspector, recorder)
		if err != nil {
			return nil, err
		}
		closers = append(closers, closeWatcher)
		return watcher, nil
	}

	return cli.Run(ctx, inspector, newWatch, metrics.Handler(registry))
}

// newRoundRetry retries failed watch rounds with exponential backoff and logs
// every failed attempt.
func newRoundRetry(ctx context.Context, cfg config.Config) retry.Retry {
	return retry.New(
		retry.WithAttempts(cfg.RoundAttempts),
		retry.WithDelay(cfg.RoundRetryDelay),
		retry.WithMaxDelay(cfg.RoundRetryMaxDelay),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "inspection attempt failed",
				"retry.attempt", attempt+1,
				"retry.attempts", cfg.RoundAttempts,
				"error", err,
			)
		}),
	)
}

// newWatcher builds the watch service with the report storage and notifier
// selected by the configuration. The returned function releases them.
func newWatcher(ctx context.Context, cfg config.Config, inspector inspect.Service, recorder watch.Recorder) (watch.Service, func(), error) {
	watchOpts := []watch.Option{
		watch.WithRetry(newRoundRetry(ctx, cfg)),
		watch.WithRecorder(recorder),
	}

	storage, closeStorage, err := newReportStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if storage != nil {
		watchOpts = append(watchOpts, watch.WithReportStorage(storage))
	}

	closeAll := closeStorage
	if cfg.NATSURL != "" {
		publisher, err := nats.NewPublisher(cfg.NATSURL, cfg.NATSSubject)
		if err != nil {
			closeStorage()
			return nil, nil, err
		}
		watchOpts = append(watchOpts, watch.WithReportNotifier(publisher))

		closeAll = func() {
			if err := publisher.Close(); err != nil {
				logger.Warn(ctx, "failed to drain NATS connection", "error", err)
			}
			closeStorage()
		}
	}

	return watch.New(inspector, watchOpts...), closeAll, nil
}

// newCollector builds one node source per configured address, all sharing
// the same HTTP client.
func newCollector(cfg config.Config) (snapshot.Collector, error) {
	httpClient := httpclient.NewClient(
		httpclient.WithTimeout(cfg.RequestTimeout),
		httpclient.WithRetryMax(cfg.RetryMax),
		httpclient.WithRetryWaitMin(cfg.RetryWaitMin),
		httpclient.WithRetryWaitMax(cfg.RetryWaitMax),
		httpclient.WithRequestLogging(),
	)

	sources := make([]snapshot.Source, 0, len(cfg.Nodes))
	for _, addr := range cfg.Nodes {
		conn, err := nodeapi.NewClient(httpClient, addr)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", addr, err)
		}
		sources = append(sources, node.NewClient(conn))
	}

	return snapshot.NewCollector(sources...), nil
}

// newReportStorage opens the report storage selected by the configuration.
// Redis wins over the LevelDB archive when both are set. A nil storage means
// reports are not persisted.
func newReportStorage(ctx context.Context, cfg config.Config) (watch.ReportStorage, func(), error) {
	nop := func() {}

	if cfg.RedisAddr != "" && cfg.ArchivePath != "" {
		logger.Warn(ctx, "both redis and the leveldb archive are configured, using redis")
	}

	switch {
	case cfg.RedisAddr != "":
		client, err := redis.NewClient(ctx, cfg.RedisAddr,
			redis.WithCredentials(cfg.RedisUsername, cfg.RedisPassword),
			redis.WithDB(cfg.RedisDB),
			redis.WithHistorySize(cfg.RedisHistorySize),
		)
		if err != nil {
			return nil, nop, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				logger.Warn(ctx, "failed to close redis client", "error", err)
			}
		}, nil
	case cfg.ArchivePath != "":
		store, err := leveldb.Open(cfg.ArchivePath)
		if err != nil {
			return nil, nop, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Warn(ctx, "failed to close report archive", "error", err)
			}
		}, nil
	default:
		return nil, nop, nil
	}
}

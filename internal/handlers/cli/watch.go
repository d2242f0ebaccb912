package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/chaindiff/internal/inspect"
	"github.com/gabapcia/chaindiff/internal/pkg/logger"
	"github.com/gabapcia/chaindiff/internal/pkg/x/chflow"
	"github.com/gabapcia/chaindiff/internal/snapshot"
	"github.com/gabapcia/chaindiff/internal/watch"

	"github.com/urfave/cli/v3"
)

const metricsShutdownTimeout = 5 * time.Second

// watchCommand returns a CLI command that compares the selected views
// periodically and prints every report.
//
// Usage example:
//
//	chaindiff watch --interval 30s --kind longest-chain --metrics-addr :9090
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func watchCommand(newWatch WatchFactory, metricsHandler http.Handler) *cli.Command {
	defaultKinds := make([]string, 0, len(snapshot.Kinds()))
	for _, k := range snapshot.Kinds() {
		defaultKinds = append(defaultKinds, string(k))
	}

	return &cli.Command{
		Name:        "watch",
		Description: "Compares the node views periodically and tracks when they diverge or converge.",
		Usage:       "Runs an inspection round per view on every interval. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Time between two rounds",
				Value: 10 * time.Second,
			},
			&cli.StringSliceFlag{
				Name:  "kind",
				Usage: "View to watch, may be repeated",
				Value: defaultKinds,
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Address serving the Prometheus metrics on /metrics, disabled when empty",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			p, err := printerFor(c)
			if err != nil {
				return err
			}

			kinds := make([]snapshot.Kind, 0, len(c.StringSlice("kind")))
			for _, name := range c.StringSlice("kind") {
				kind, err := snapshot.ParseKind(name)
				if err != nil {
					return err
				}
				kinds = append(kinds, kind)
			}

			w, err := newWatch(ctx)
			if err != nil {
				return err
			}

			if addr := c.String("metrics-addr"); addr != "" && metricsHandler != nil {
				shutdown := serveMetrics(ctx, addr, metricsHandler)
				defer shutdown()
			}

			reports, err := w.Start(ctx, watch.Schedule{
				Kinds:        kinds,
				Interval:     c.Duration("interval"),
				StrictLength: c.Bool(strictFlag),
			})
			if err != nil {
				return err
			}
			defer w.Close()

			return chflow.Drain(ctx, reports, func(report inspect.Report) error {
				return p.Report(report)
			})
		},
	}
}

// serveMetrics serves handler on addr in the background and returns the
// function that stops the server.
func serveMetrics(ctx context.Context, addr string, handler http.Handler) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(ctx, "serving metrics", "metrics.addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "metrics server stopped", "error", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "failed to stop metrics server", "error", err)
		}
	}
}

// Package telemetry initializes OpenTelemetry metrics, tracing and logs
// exported over OTLP/gRPC. It registers the providers globally so that
// instrumented packages can use otel.Tracer and otel.Meter without further
// wiring, exposes the LoggerProvider consumed by the logger bridge, and
// returns a ShutdownFunc that flushes and stops every pipeline.
package telemetry

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

var (
	// loggerProvider is the provider registered by the last successful Init.
	loggerProvider   *sdklog.LoggerProvider
	loggerProviderMu sync.RWMutex
)

// LoggerProvider returns the LoggerProvider registered by Init, or nil when
// telemetry was not initialized.
func LoggerProvider() *sdklog.LoggerProvider {
	loggerProviderMu.RLock()
	defer loggerProviderMu.RUnlock()
	return loggerProvider
}

func setLoggerProvider(lp *sdklog.LoggerProvider) {
	loggerProviderMu.Lock()
	defer loggerProviderMu.Unlock()
	loggerProvider = lp
}

// config holds the exporter settings shared by every pipeline.
type config struct {
	endpoint string // collector host:port; empty uses the OTEL_EXPORTER_OTLP_* environment
	insecure bool   // disable TLS towards the collector
}

// Option configures the exporters created by Init.
type Option func(*config)

// WithEndpoint sets the collector address (host:port) for both exporters.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithInsecure disables TLS for the connection to the collector.
func WithInsecure() Option {
	return func(c *config) {
		c.insecure = true
	}
}

func (c config) metricOptions() []otlpmetricgrpc.Option {
	var opts []otlpmetricgrpc.Option
	if c.endpoint != "" {
		opts = append(opts, otlpmetricgrpc.WithEndpoint(c.endpoint))
	}
	if c.insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	return opts
}

func (c config) traceOptions() []otlptracegrpc.Option {
	var opts []otlptracegrpc.Option
	if c.endpoint != "" {
		opts = append(opts, otlptracegrpc.WithEndpoint(c.endpoint))
	}
	if c.insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	return opts
}

func (c config) logOptions() []otlploggrpc.Option {
	var opts []otlploggrpc.Option
	if c.endpoint != "" {
		opts = append(opts, otlploggrpc.WithEndpoint(c.endpoint))
	}
	if c.insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	return opts
}

// initMeterProvider sets up an OTLP gRPC MeterProvider using a periodic reader
// and registers it as the global MeterProvider.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource, cfg config) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx, cfg.metricOptions()...)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a batched
// exporter and registers it as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource, cfg config) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx, cfg.traceOptions()...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// initLoggerProvider sets up an OTLP gRPC LoggerProvider using a batch
// processor and registers it globally.
func initLoggerProvider(ctx context.Context, res *sdkresource.Resource, cfg config) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx, cfg.logOptions()...)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	global.SetLoggerProvider(lp)
	setLoggerProvider(lp)
	return lp, nil
}

// newResource merges the default system resource with the service name.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc flushes and stops all telemetry providers.
type ShutdownFunc func(ctx context.Context) error

// Init configures OpenTelemetry metrics, traces and logs for serviceName. It
// must run before logger.Init for log entries to reach the collector.
//
// The returned ShutdownFunc must be called before the process exits so that
// buffered spans, log records and the last metric collection are exported.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res, cfg)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res, cfg)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	lp, err := initLoggerProvider(ctx, res, cfg)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx), tp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		return errors.Join(
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
			lp.Shutdown(ctx),
		)
	}, nil
}

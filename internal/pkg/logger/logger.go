// Package logger provides a global, Sugared Zap logger that can be enriched
// through a context.Context. Entries are JSON encoded and written to stderr,
// which keeps stdout free for the reports printed by the CLI.
//
// When the context carries a valid OpenTelemetry span, the trace and span
// identifiers are attached to every entry logged with it. Once telemetry is
// initialized, entries are also exported as OpenTelemetry log records.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/chaindiff/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// scopeName is the instrumentation scope of the records sent to OpenTelemetry.
const scopeName = "github.com/gabapcia/chaindiff"

// ctxKeyType is the private type of the context key holding a derived logger.
type ctxKeyType struct{}

// ctxKey is the context key under which Derive stores the enriched logger.
var ctxKey = ctxKeyType{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

// Init configures the global logger at the given minimum level
// ("debug", "info", "warn", "error", "panic", "fatal"). When telemetry was
// initialized first, entries are also forwarded to its LoggerProvider.
//
// Calling Init multiple times has no effect after the first successful call.
// It returns an error if the level cannot be parsed.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		baseLogger = newLogger(lvl, telemetry.LoggerProvider())
	})

	return nil
}

// newLogger builds a JSON logger writing to stderr, teed into an OTel bridge
// core when lp is not nil.
func newLogger(lvl zapcore.Level, lp *sdklog.LoggerProvider) *zap.SugaredLogger {
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.Lock(os.Stderr),
			lvl,
		),
	}

	if lp != nil {
		cores = append(cores, otelzap.NewCore(scopeName, otelzap.WithLoggerProvider(lp)))
	}

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with the span identifiers found in ctx and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = baseLogger
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		l = l.With(
			"trace_id", spanCtx.TraceID().String(),
			"span_id", spanCtx.SpanID().String(),
		)
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

// Derive returns a copy of ctx carrying a logger enriched with the given
// key/value pairs. Every entry logged with the returned context includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	l := deriveFromCtx(ctx)

	switch level {
	case zapcore.DebugLevel:
		l.Debugw(msg, keysAndValues...)
	case zapcore.InfoLevel:
		l.Infow(msg, keysAndValues...)
	case zapcore.WarnLevel:
		l.Warnw(msg, keysAndValues...)
	case zapcore.ErrorLevel:
		l.Errorw(msg, keysAndValues...)
	case zapcore.PanicLevel:
		l.Panicw(msg, keysAndValues...)
	case zapcore.FatalLevel:
		l.Fatalw(msg, keysAndValues...)
	}
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}

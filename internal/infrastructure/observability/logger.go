package observability

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aryan9369/HonestWork/pkg/config"
)

// InitLogger configures the global zerolog logger from application
// config. Development runs get a console writer; everything else emits
// JSON lines with caller info so they can be shipped as-is.
func InitLogger(serviceName string, cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stdout
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	builder := zerolog.New(out).With().
		Timestamp().
		Str("service", serviceName).
		Str("env", cfg.Env)
	if cfg.Env != "development" {
		builder = builder.Caller()
	}
	log.Logger = builder.Logger()
}

// LoggerFromContext returns the global logger, enriched with trace and
// span ids when the context carries an active span.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return &log.Logger
	}

	logger := log.Logger.With().
		Str("trace_id", sc.TraceID().String()).
		Str("span_id", sc.SpanID().String()).
		Logger()
	return &logger
}

// GetLogger returns the global logger
func GetLogger() *zerolog.Logger {
	return &log.Logger
}

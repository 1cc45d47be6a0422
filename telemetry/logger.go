package telemetry

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yairfalse/nightshift/types"
)

// OTELHook adds trace and span IDs to every log entry
type OTELHook struct{}

func (h OTELHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return
	}

	e.Str("trace_id", span.SpanContext().TraceID().String())
	e.Str("span_id", span.SpanContext().SpanID().String())

	if level == zerolog.ErrorLevel {
		span.SetStatus(codes.Error, msg)
	}
}

// Logger wraps zerolog with OTEL integration
type Logger struct {
	zerolog.Logger
}

// LoggerOptions controls how NewLogger renders entries.
type LoggerOptions struct {
	Service string
	Level   string
	Pretty  bool
}

// NewLogger creates a logger writing to w with OTEL hooks.
func NewLogger(w io.Writer, opts LoggerOptions) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", opts.Service).
		Logger().
		Hook(OTELHook{})

	return &Logger{Logger: logger}, nil
}

// NopLogger discards everything.
func NopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// ParseLevel maps debug, info, warn and error to zerolog levels.
// An empty level means info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, &types.ConfigError{
			Field:  "log_level",
			Reason: fmt.Sprintf("unknown level %q", level),
		}
	}
}

// WithContext returns a logger with context (for trace propagation)
func (l *Logger) WithContext(ctx context.Context) *zerolog.Logger {
	logger := l.Logger.With().Ctx(ctx).Logger()
	return &logger
}

// Scoped returns a child logger carrying the region and family fields.
func (l *Logger) Scoped(region string, family types.Family) *Logger {
	return &Logger{Logger: l.Logger.With().
		Str("region", region).
		Str("family", family.String()).
		Logger()}
}

// LogActionFailed records a suppressed action failure with enough context
// to diagnose it later.
func (l *Logger) LogActionFailed(ctx context.Context, err *types.ActionError) {
	event := l.WithContext(ctx).Error().
		Err(err.Err).
		Str("verb", string(err.Verb)).
		Str("resource", err.Resource)
	if code := err.Code(); code != "" {
		event = event.Str("error_code", code)
	}
	event.Msg("action failed")
}

// LogFamilyFailed records a family aborted for one region.
func (l *Logger) LogFamilyFailed(ctx context.Context, region string, family types.Family, err error) {
	event := l.WithContext(ctx).Error().
		Err(err).
		Str("region", region).
		Str("family", family.String())
	if code := types.ErrorCode(err); code != "" {
		event = event.Str("error_code", code)
	}
	event.Msg("family failed")
}

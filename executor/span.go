package executor

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

func telemetrySpan(ctx context.Context) trace.Span {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}
	return span
}

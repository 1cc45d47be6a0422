package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RecordActionEvent adds a span event for one state-changing call.
func RecordActionEvent(span trace.Span, family, verb, resource, status, errorMsg string) {
	if span == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("event.type", "nightshift.action"),
		attribute.String("family", family),
		attribute.String("verb", verb),
		attribute.String("resource.id", resource),
		attribute.String("status", status),
	}
	if errorMsg != "" {
		attrs = append(attrs, attribute.String("error.message", errorMsg))
	}

	span.AddEvent("nightshift.action", trace.WithAttributes(attrs...))
}

// RecordSkipEvent adds a span event for a resource left untouched.
func RecordSkipEvent(span trace.Span, family, resource, reason string) {
	if span == nil {
		return
	}

	span.AddEvent("nightshift.skip", trace.WithAttributes(
		attribute.String("event.type", "nightshift.skip"),
		attribute.String("family", family),
		attribute.String("resource.id", resource),
		attribute.String("reason", reason),
	))
}

// RecordWaitTickEvent adds a span event for one waiter poll.
func RecordWaitTickEvent(span trace.Span, attempt, pending int) {
	if span == nil {
		return
	}

	span.AddEvent("nightshift.wait.tick", trace.WithAttributes(
		attribute.Int("attempt", attempt),
		attribute.Int("pending", pending),
	))
}

// RecordExclusionEvent adds a span event for a run skipped by the
// exclusion calendar.
func RecordExclusionEvent(span trace.Span, date string) {
	if span == nil {
		return
	}

	span.AddEvent("nightshift.excluded", trace.WithAttributes(
		attribute.String("date", date),
	))
}

// Package tracing provides OpenTelemetry spans for stash fallback execution.
// It is entirely optional — spans are only created when a [Config] is wired
// in via the WithTracing stash option.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Config holds the OpenTelemetry configuration used for fallback spans.
type Config struct {
	// TracerProvider supplies the Tracer used to create spans. When nil the
	// global otel.GetTracerProvider() is used.
	TracerProvider trace.TracerProvider
}

// tracer returns a configured [trace.Tracer].
func (c *Config) tracer() trace.Tracer {
	tp := c.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer("github.com/Keksclan/goNutStash/tracing")
}

// StartFallback starts a span covering one fallback execution for key and
// returns the function that ends it. The end function records whether the
// fallback produced a storable value. If cfg is nil both are no-ops.
//
// The fallback contract is a zero-argument producer, so no caller context
// flows here; the span is a root span.
func StartFallback(cfg *Config, key string) func(stored bool) {
	if cfg == nil {
		return func(bool) {}
	}

	_, span := cfg.tracer().Start(context.Background(), "nutstash.fallback",
		trace.WithSpanKind(trace.SpanKindInternal))
	span.SetAttributes(attribute.String("nutstash.key", key))

	return func(stored bool) {
		span.SetAttributes(attribute.Bool("nutstash.stored", stored))
		span.End()
	}
}

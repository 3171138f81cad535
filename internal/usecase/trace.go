package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("weekly-pot/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only opens a span under an existing trace so untraced
// runs stay free of span bookkeeping.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

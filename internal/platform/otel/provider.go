// Package otel configures opt-in OpenTelemetry tracing for service commands.
package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Environment variables controlling trace export.
const (
	envEndpoint = "TRAILBOUND_OTEL_ENDPOINT"
	envEnabled  = "TRAILBOUND_OTEL_ENABLED"
)

// Setup registers a global OTLP trace provider for the given service and
// returns a shutdown function that flushes pending spans.
//
// Tracing is opt-in: without an endpoint, or with TRAILBOUND_OTEL_ENABLED set
// to "false", no provider is registered and the returned shutdown is a no-op.
// Commands run identically with tracing on or off; domain code only ever sees
// the global tracer.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	endpoint, enabled := exportTarget()
	if !enabled {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return provider.Shutdown, nil
}

// exportTarget resolves the configured OTLP endpoint and whether export is
// active.
func exportTarget() (string, bool) {
	if strings.EqualFold(os.Getenv(envEnabled), "false") {
		return "", false
	}
	endpoint := strings.TrimSpace(os.Getenv(envEndpoint))
	return endpoint, endpoint != ""
}

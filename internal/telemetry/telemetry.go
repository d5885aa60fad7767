// Package telemetry exports Path of Heroes traces over OTLP HTTP.
//
// Battles, runs and balance batches open spans through Tracer. Until Setup
// installs a provider those spans go to the global no-op provider, so the
// game never depends on a collector being reachable.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "pathofheroes"
	serviceVersion = "0.1.0"
	tracerPrefix   = serviceName + "/"
)

// Shutdown flushes pending spans and stops the exporter.
type Shutdown func(context.Context) error

// Setup installs a batching tracer provider when an OTLP endpoint is set in
// the environment (see Configured). The exporter reads the remaining
// OTEL_EXPORTER_OTLP_* variables itself.
//
// Without an endpoint Setup does nothing and returns a Shutdown that does
// nothing, so callers can always defer it.
func Setup(ctx context.Context) (Shutdown, error) {
	if !Configured() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

// newResource describes this process. It is built from scratch rather than
// merged with resource.Default(), whose schema URL may differ from ours.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// Configured reports whether an OTLP endpoint has been set in the environment.
func Configured() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") != ""
}

// Tracer returns the tracer for one package, e.g. Tracer("battle").
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(tracerPrefix + component)
}

// NoopTracer returns a tracer that records nothing, for high-volume spans
// that are off unless asked for.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(tracerPrefix + "noop")
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

package telemetry

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	if Configured() {
		t.Fatal("Configured() = true with no endpoint")
	}
	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestConfigured(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://localhost:4318/v1/traces")
	if !Configured() {
		t.Error("Configured() = false with a traces endpoint")
	}
}

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "balance.run")
	defer span.End()
	if span.IsRecording() {
		t.Error("noop span should not record")
	}
}

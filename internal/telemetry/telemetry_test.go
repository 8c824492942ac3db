package telemetry

import (
	"context"
	"testing"
)

func TestTracerReturnsUsableTracer(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "unit")
	defer span.End()

	if span == nil {
		t.Fatal("Tracer().Start returned nil span")
	}
}

func TestTracerIsInertBeforeSetup(t *testing.T) {
	_, span := Tracer("combat").Start(context.Background(), "combat.wave")
	defer span.End()

	if span.IsRecording() {
		t.Error("span recording before Setup installed a provider")
	}
}

package tracer

import (
	"context"
	"strings"
	"testing"
)

func TestInitDisabledReturnsNopShutdown(t *testing.T) {
	t.Parallel()

	shutdown, err := Init(context.Background(), Config{
		ServiceName: "test-svc",
		Enabled:     false,
	})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestRootSamplerBounds(t *testing.T) {
	t.Parallel()

	if desc := newRootSampler(1.0).Description(); desc != "AlwaysOnSampler" {
		t.Fatalf("rate 1.0 sampler = %q", desc)
	}
	if desc := newRootSampler(0).Description(); desc != "AlwaysOffSampler" {
		t.Fatalf("rate 0 sampler = %q", desc)
	}
	if desc := newRootSampler(0.25).Description(); !strings.HasPrefix(desc, "TraceIDRatioBased") {
		t.Fatalf("rate 0.25 sampler = %q", desc)
	}
}

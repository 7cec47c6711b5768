package otel

import (
	"context"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders("authorization=Basic abc, x-team = ops,broken,=empty")
	if len(got) != 2 || got["authorization"] != "Basic abc" || got["x-team"] != "ops" {
		t.Errorf("unexpected headers %v", got)
	}
	if len(ParseHeaders("")) != 0 {
		t.Errorf("expected no headers")
	}
}

func TestSetupDisabled(t *testing.T) {
	tel, err := Setup(context.Background(), Config{ServiceName: "workspace-admin"})
	if err != nil || tel != nil {
		t.Fatalf("expected disabled telemetry, got %v %v", tel, err)
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("nil shutdown: %v", err)
	}
}

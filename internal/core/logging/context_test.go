package logging

import (
	"context"
	"testing"
)

func TestWithOperation(t *testing.T) {
	ctx := WithOperation(context.Background(), "open")

	if got := GetOperation(ctx); got != "open" {
		t.Errorf("GetOperation() = %q, want %q", got, "open")
	}
}

func TestWithFlowID(t *testing.T) {
	ctx := WithFlowID(context.Background(), "f-12")

	if got := GetFlowID(ctx); got != "f-12" {
		t.Errorf("GetFlowID() = %q, want %q", got, "f-12")
	}
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetOperation(ctx); got != "" {
		t.Errorf("GetOperation() = %q, want empty string", got)
	}
	if got := GetFlowID(ctx); got != "" {
		t.Errorf("GetFlowID() = %q, want empty string", got)
	}
}

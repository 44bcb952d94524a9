package log_test

import (
	"context"
	"testing"

	"contentsift/pkg/log"
)

func TestRequestIDFromContext_NilContext_ReturnsEmpty(t *testing.T) {
	// Act & Assert
	//nolint:staticcheck // nil context tolerance is part of the contract
	if id := log.RequestIDFromContext(nil); id != "" {
		t.Errorf("got %q, want empty", id)
	}
}

func TestWithRequestID_RoundTrips(t *testing.T) {
	// Arrange
	ctx := log.WithRequestID(context.Background(), "abc-123")

	// Act & Assert
	if id := log.RequestIDFromContext(ctx); id != "abc-123" {
		t.Errorf("got %q, want abc-123", id)
	}
}

func TestWithFields_MergesOverExisting(t *testing.T) {
	// Arrange
	ctx := log.WithFields(context.Background(), "a", 1, "b", 2)
	ctx = log.WithFields(ctx, "b", 3, "c", 4)

	// Act
	fields := log.FieldsFromContext(ctx)

	// Assert
	if fields["a"] != 1 {
		t.Errorf("a: got %v, want 1", fields["a"])
	}
	if fields["b"] != 3 {
		t.Errorf("b: got %v, want 3 (later value wins)", fields["b"])
	}
	if fields["c"] != 4 {
		t.Errorf("c: got %v, want 4", fields["c"])
	}
}

func TestFieldsFromContext_NoFields_ReturnsNil(t *testing.T) {
	// Act & Assert
	if fields := log.FieldsFromContext(context.Background()); fields != nil {
		t.Errorf("got %v, want nil", fields)
	}
}

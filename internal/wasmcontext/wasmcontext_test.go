package wasmcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglasmun/factmod/domain/entities"
)

func TestCurrentContext_Default(t *testing.T) {
	ResetContext()
	assert.Equal(t, context.Background(), GetCurrentContext())
}

func TestSetAndResetContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	SetCurrentContext(ctx)
	assert.Equal(t, "req-1", GetCurrentContext().Value(RequestIDKey))

	ResetContext()
	assert.Nil(t, GetCurrentContext().Value(RequestIDKey))
}

func TestContextToWire_Deadline(t *testing.T) {
	deadline := time.Now().Add(5 * time.Second)
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()

	wire := ContextToWire(ctx)
	require.NotNil(t, wire.Deadline)
	assert.WithinDuration(t, deadline, *wire.Deadline, time.Millisecond)
	assert.Greater(t, wire.TimeoutMs, int64(0))
	assert.False(t, wire.Canceled)
}

func TestContextToWire_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wire := ContextToWire(ctx)
	assert.True(t, wire.Canceled)
}

func TestContextToWire_RequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
	wire := ContextToWire(ctx)
	assert.Equal(t, "req-42", wire.RequestID)
}

func TestWireToContext_RoundTrip(t *testing.T) {
	deadline := time.Now().Add(time.Minute)
	wire := entities.ContextWire{Deadline: &deadline, RequestID: "req-7"}

	ctx, cancel := WireToContext(nil, wire)
	defer cancel()

	got, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, deadline, got, time.Millisecond)
	assert.Equal(t, "req-7", ctx.Value(RequestIDKey))
}

func TestWireToContext_Canceled(t *testing.T) {
	ctx, cancel := WireToContext(context.Background(), entities.ContextWire{Canceled: true})
	defer cancel()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("expected context to be canceled")
	}
}

// Package wasmcontext provides context propagation utilities for the SDK.
// It handles converting between Go contexts and the wire format used for
// WASM host function calls.
package wasmcontext

import (
	stdcontext "context"
	"sync"
	"time"

	"github.com/douglasmun/factmod/domain/entities"
)

// contextKey is a dedicated type for context value keys to avoid collisions.
type contextKey string

// RequestIDKey is the context key for the request ID.
const RequestIDKey contextKey = "request_id"

// contextStore holds the current context for the guest execution.
// WASM is single-threaded, so a simple guarded global suffices. The export
// wrappers set this when the host invokes an exported function.
var contextStore = struct {
	ctx stdcontext.Context
	sync.RWMutex
}{
	ctx: stdcontext.Background(),
}

// SetCurrentContext sets the current execution context.
// Called by the export wrappers when the host invokes describe, schema, or
// factorial.
func SetCurrentContext(ctx stdcontext.Context) {
	contextStore.Lock()
	defer contextStore.Unlock()
	contextStore.ctx = ctx
}

// GetCurrentContext returns the current execution context, or
// context.Background() if none has been set.
func GetCurrentContext() stdcontext.Context {
	contextStore.RLock()
	defer contextStore.RUnlock()
	if contextStore.ctx == nil {
		return stdcontext.Background()
	}
	return contextStore.ctx
}

// ResetContext resets the global context to background.
// Usually deferred after an exported call completes.
func ResetContext() {
	SetCurrentContext(stdcontext.Background())
}

// ContextToWire converts a context.Context to ContextWire for sending to
// the host. It extracts the deadline, cancellation status, and request ID.
func ContextToWire(ctx stdcontext.Context) entities.ContextWire {
	wire := entities.ContextWire{}

	if deadline, ok := ctx.Deadline(); ok {
		wire.Deadline = &deadline
		if timeout := time.Until(deadline); timeout > 0 {
			wire.TimeoutMs = timeout.Milliseconds()
		}
	}

	select {
	case <-ctx.Done():
		wire.Canceled = true
	default:
	}

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		if id, ok := requestID.(string); ok {
			wire.RequestID = id
		}
	}

	return wire
}

// WireToContext converts a ContextWire to a context.Context derived from
// parent (context.Background() if parent is nil). Returns the new context
// and its CancelFunc.
func WireToContext(parent stdcontext.Context, wire entities.ContextWire) (stdcontext.Context, stdcontext.CancelFunc) {
	if parent == nil {
		parent = stdcontext.Background()
	}

	ctx := parent

	var cancel stdcontext.CancelFunc
	switch {
	case wire.Deadline != nil:
		ctx, cancel = stdcontext.WithDeadline(ctx, *wire.Deadline)
	case wire.TimeoutMs > 0:
		ctx, cancel = stdcontext.WithTimeout(ctx, time.Duration(wire.TimeoutMs)*time.Millisecond)
	default:
		ctx, cancel = stdcontext.WithCancel(ctx)
	}

	if wire.RequestID != "" {
		ctx = stdcontext.WithValue(ctx, RequestIDKey, wire.RequestID)
	}

	if wire.Canceled {
		cancel()
	}

	return ctx, cancel
}

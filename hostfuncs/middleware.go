package hostfuncs

import (
	"context"
	"log/slog"
)

// Middleware is a function that wraps a ByteHandler to add cross-cutting
// behavior. Middleware executes in FIFO order (first registered wraps first,
// onion model).
type Middleware func(next ByteHandler) ByteHandler

// RegistryOption is a functional option for configuring a HandlerRegistry.
type RegistryOption func(*registryBuilder)

// PanicRecoveryMiddleware returns a middleware that catches panics and
// converts them to structured ErrorResponse JSON instead of crashing the
// host.
func PanicRecoveryMiddleware() Middleware {
	return func(next ByteHandler) ByteHandler {
		return func(ctx context.Context, payload []byte) (resp []byte, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp = NewPanicError(r).ToJSON()
					err = nil // Return JSON error, not Go error
				}
			}()
			return next(ctx, payload)
		}
	}
}

// LoggingMiddleware returns a middleware that logs operation invocations
// through slog.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ByteHandler) ByteHandler {
		return func(ctx context.Context, payload []byte) ([]byte, error) {
			funcName := "unknown"
			if hc, ok := ctx.(HostContext); ok {
				funcName = hc.FunctionName()
			}
			logger.Debug("invoking operation", "name", funcName)
			resp, err := next(ctx, payload)
			if err != nil {
				logger.Error("operation failed", "name", funcName, "error", err)
			} else {
				logger.Debug("operation completed", "name", funcName)
			}
			return resp, err
		}
	}
}

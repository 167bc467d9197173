// Package log provides structured logging (slog) adapted for the SDK's WASM
// environment. Inside a guest module, records are serialized and forwarded
// to the host over the log_message host function.
package log

import (
	"context"
	"log/slog"
)

// WasmLogHandler implements slog.Handler to route logs through a host function.
type WasmLogHandler struct {
	opts handlerConfig
}

// HandlerOption configures the WasmLogHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level slog.Level
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report.
// Records below this level are filtered on the guest side.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// NewHandler creates a new WasmLogHandler with the given options.
func NewHandler(opts ...HandlerOption) *WasmLogHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &WasmLogHandler{opts: cfg}
}

// Enabled reports whether the handler handles records at the given level.
func (h *WasmLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// WithAttrs returns a new WasmLogHandler. Attributes are not pre-encoded;
// the wire format carries each record's attrs individually.
func (h *WasmLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandler := *h
	return &newHandler
}

// WithGroup returns a new WasmLogHandler with the given group name.
func (h *WasmLogHandler) WithGroup(name string) slog.Handler {
	newHandler := *h
	return &newHandler
}

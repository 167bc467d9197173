//go:build !wasip1

package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Handle for non-WASM builds (host tests). Writes a plain line to stderr so
// the handler satisfies slog.Handler without a host function to call.
func (h *WasmLogHandler) Handle(_ context.Context, record slog.Record) error {
	fmt.Fprintf(os.Stderr, "[guest-stub] level=%s msg=%q\n", record.Level, record.Message)
	return nil
}

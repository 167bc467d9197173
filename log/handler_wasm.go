//go:build wasip1

package log

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/douglasmun/factmod/internal/abi"
	"github.com/douglasmun/factmod/internal/wasmcontext"
)

// host_log_message is the host function used to deliver log records.
// The signature matches the handler registered by host.Executor.
//
//go:wasmimport factmod_host log_message
//nolint:revive // intentional snake_case to match the WASM import convention
func host_log_message(messagePacked uint64)

// Handle serializes a slog.Record and sends it to the host.
func (h *WasmLogHandler) Handle(ctx context.Context, record slog.Record) error {
	logMsg := LogMessageWire{
		Context:   wasmcontext.ContextToWire(ctx),
		Level:     record.Level.String(),
		Message:   record.Message,
		Timestamp: record.Time,
	}

	record.Attrs(func(attr slog.Attr) bool {
		logMsg.Attrs = append(logMsg.Attrs, toLogAttrWire(attr))
		return true
	})

	requestBytes, err := json.Marshal(logMsg)
	if err != nil {
		// Fallback to stdout if marshaling fails; the record is still visible
		// in the host's captured guest output.
		fmt.Printf("sdk: failed to marshal log message for host: %v, original: %s\n", err, record.Message)
		return nil
	}

	host_log_message(abi.PtrFromBytes(requestBytes))
	return nil
}

// init routes the guest's default slog output through the host.
func init() {
	slog.SetDefault(slog.New(NewHandler()))
}

//go:build wasip1

package plugin

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/douglasmun/factmod/domain/entities"
	"github.com/douglasmun/factmod/domain/errors"
	"github.com/douglasmun/factmod/internal/abi"
	"github.com/douglasmun/factmod/internal/wasmcontext"
	_ "github.com/douglasmun/factmod/log" // Route guest slog through the host
	"github.com/douglasmun/factmod/wireformat"
)

// The exports below are the module's binding table: the host discovers the
// factorial operation by these stable names. Each wrapper performs panic
// recovery and ABI translation before touching user code.

//go:wasmexport describe
func _describe() uint64 {
	return handleExportedCall(func() (any, error) {
		if userPlugin == nil {
			return nil, fmt.Errorf("plugin not registered")
		}
		ctx := wasmcontext.GetCurrentContext()
		metadata, err := userPlugin.Describe(ctx)
		if err != nil {
			return nil, err
		}
		// Auto-populate SDK version
		metadata.SDKVersion = Version
		return metadata, nil
	})
}

//go:wasmexport schema
func _schema() uint64 {
	return handleExportedCall(func() (any, error) {
		if userPlugin == nil {
			return nil, fmt.Errorf("plugin not registered")
		}
		ctx := wasmcontext.GetCurrentContext()
		return userPlugin.Schema(ctx)
	})
}

//go:wasmexport factorial
func _factorial(reqPtr uint32, reqLen uint32) uint64 {
	return handleExportedCall(func() (any, error) {
		if userPlugin == nil {
			return nil, fmt.Errorf("plugin not registered")
		}

		payload := abi.BytesFromPtr(abi.PackPtrLen(reqPtr, reqLen))

		ctx := wasmcontext.GetCurrentContext()
		wasmcontext.SetCurrentContext(ctx)
		defer wasmcontext.ResetContext()

		// Binding boundary: a request whose "n" is not an integer is
		// rejected here, before the plugin's compute logic runs.
		req, err := wireformat.DecodeFactorialRequest(payload)
		if err != nil {
			res := entities.ResultError(errors.ToErrorDetail(err))
			res.Timestamp = time.Now()
			return res, nil
		}

		start := time.Now()
		result, err := userPlugin.Compute(ctx, req)
		if err != nil {
			res := entities.ResultError(errors.ToErrorDetail(err))
			result = &res
		}
		end := time.Now()

		if result.Timestamp.IsZero() {
			result.Timestamp = end
		}
		if result.Metadata == nil {
			result.Metadata = entities.NewRunMetadata(start, end).WithSDKVersion(Version)
		}
		return result, nil
	})
}

// handleExportedCall is a generic wrapper for WASM exported functions.
// It provides panic recovery, error handling, and JSON serialization.
func handleExportedCall(f func() (any, error)) (packedResult uint64) {
	defer func() {
		if r := recover(); r != nil {
			// Free all tracked allocations on panic to prevent leaks.
			abi.FreeAllTracked()

			errDetail := &entities.ErrorDetail{
				Message: fmt.Sprintf("plugin panic: %v", r),
				Type:    "panic",
				Stack:   debug.Stack(),
			}
			slog.Error("sdk: plugin panic recovered", "error", errDetail.Message)
			packedResult = packResultWithError(entities.Result{
				Status:    entities.ResultStatusError,
				Error:     errDetail,
				Timestamp: time.Now(),
			})
		}
	}()

	result, err := f()
	if err != nil {
		slog.Error("sdk: plugin function returned error", "error", err.Error())
		packedResult = packResultWithError(entities.Result{
			Status:    entities.ResultStatusError,
			Error:     errors.ToErrorDetail(err),
			Timestamp: time.Now(),
		})
		return
	}

	var dataToMarshal []byte
	switch v := result.(type) {
	case []byte: // schema returns raw JSON bytes
		dataToMarshal = v
	default:
		var marshalErr error
		dataToMarshal, marshalErr = json.Marshal(v)
		if marshalErr != nil {
			slog.Error("sdk: failed to marshal result", "error", marshalErr.Error())
			packedResult = packResultWithError(entities.Result{
				Status:    entities.ResultStatusError,
				Error:     errors.ToErrorDetail(marshalErr),
				Timestamp: time.Now(),
			})
			return
		}
	}

	packedResult = abi.PtrFromBytes(dataToMarshal)
	return
}

// packResultWithError marshals an error Result to JSON and returns the
// packed pointer/length. Used for internal SDK errors and panics.
func packResultWithError(res entities.Result) uint64 {
	data, err := json.Marshal(res)
	if err != nil {
		fallbackErr := &entities.ErrorDetail{Message: "sdk: failed to marshal error result", Type: "internal"}
		data, _ = json.Marshal(entities.Result{
			Status:    entities.ResultStatusError,
			Error:     fallbackErr,
			Timestamp: time.Now(),
		})
	}
	return abi.PtrFromBytes(data)
}

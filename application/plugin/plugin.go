// Package plugin provides the module author API: the Plugin interface and
// the WASM export lifecycle that makes one operation, factorial, callable
// by name from a host runtime.
package plugin

import (
	"context"

	"github.com/douglasmun/factmod/domain/entities"
	"github.com/douglasmun/factmod/wireformat"
)

const (
	// Version of the SDK, reported in module metadata.
	Version = "1.0.0"
)

// Plugin is the interface every factmod module must implement.
type Plugin interface {
	// Describe returns metadata about the module.
	Describe(ctx context.Context) (entities.Metadata, error)

	// Schema returns the JSON schema of the factorial request.
	Schema(ctx context.Context) ([]byte, error)

	// Compute executes the factorial operation for an already-decoded
	// request. The SDK performs the binding decode before calling this,
	// so implementations never see a malformed request.
	Compute(ctx context.Context, req wireformat.FactorialRequest) (*entities.Result, error)
}

// userPlugin holds the registered plugin implementation.
var userPlugin Plugin

// Register installs the module implementation behind the WASM exports.
// Module authors call this from main(). A second call is ignored.
func Register(p Plugin) {
	if userPlugin != nil {
		return
	}
	userPlugin = p
}

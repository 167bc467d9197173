//go:build !wasip1

package plugin

import (
	"context"

	"github.com/douglasmun/factmod/domain/entities"
	"github.com/douglasmun/factmod/hostfuncs"
	"github.com/douglasmun/factmod/wireformat"
)

// StubPlugin is a host-side implementation of the Plugin interface, used in
// tests and anywhere the module logic should run without a WASM runtime.
// It computes through the same core as the in-process registry.
type StubPlugin struct{}

// Describe returns minimal metadata for the StubPlugin.
func (s *StubPlugin) Describe(ctx context.Context) (entities.Metadata, error) {
	return entities.Metadata{
		Name:       "stub",
		Version:    "0.0.1",
		Operations: []string{hostfuncs.FactorialOperation},
	}, nil
}

// Schema returns an empty schema for the StubPlugin.
func (s *StubPlugin) Schema(ctx context.Context) ([]byte, error) {
	return []byte("{}"), nil
}

// Compute runs the factorial operation in-process.
func (s *StubPlugin) Compute(ctx context.Context, req wireformat.FactorialRequest) (*entities.Result, error) {
	resp := hostfuncs.PerformFactorial(ctx, req)
	if resp.Error != nil {
		res := entities.ResultError(resp.Error)
		return &res, nil
	}
	res := entities.ResultSuccess("computed", map[string]any{
		"n":     resp.N,
		"mode":  resp.Mode,
		"value": resp.Value,
	})
	return &res, nil
}

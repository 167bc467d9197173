package host

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/douglasmun/factmod/domain/entities"
	"github.com/douglasmun/factmod/hostfuncs"
	"github.com/douglasmun/factmod/wireformat"
)

// Executor manages the lifecycle of WASM modules.
type Executor struct {
	runtime  wazero.Runtime
	registry *hostfuncs.HandlerRegistry
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(ctx context.Context, opts ...Option) (*Executor, error) {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}

	// Default registry if not provided
	if e.registry == nil {
		reg, err := hostfuncs.NewRegistry(
			hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()),
			hostfuncs.WithBundle(hostfuncs.AllBundles()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create default registry: %w", err)
		}
		e.registry = reg
	}

	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	e.runtime = rt

	if err := e.registerHostFunctions(ctx); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("failed to register host functions: %w", err)
	}

	return e, nil
}

// Close releases resources held by the executor.
func (e *Executor) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// ModuleInstance represents an instantiated WASM module.
type ModuleInstance struct {
	module api.Module
}

// LoadModule instantiates a WASM module from its compiled bytes.
func (e *Executor) LoadModule(ctx context.Context, wasmBytes []byte) (*ModuleInstance, error) {
	mod, err := e.runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate module: %w", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	return &ModuleInstance{module: mod}, nil
}

// Describe calls the "describe" export of the module.
func (m *ModuleInstance) Describe(ctx context.Context) (entities.Metadata, error) {
	var metadata entities.Metadata
	packed, err := m.callRaw(ctx, "describe", nil)
	if err != nil {
		return metadata, err
	}
	err = m.unmarshalPacked(packed, &metadata)
	return metadata, err
}

// Schema calls the "schema" export of the module.
func (m *ModuleInstance) Schema(ctx context.Context) ([]byte, error) {
	packed, err := m.callRaw(ctx, "schema", nil)
	if err != nil {
		return nil, err
	}
	ptr := uint32(packed >> 32)
	length := uint32(packed)
	data, ok := m.module.Memory().Read(ptr, length)
	if !ok {
		return nil, fmt.Errorf("failed to read schema from memory")
	}
	schemaCopy := make([]byte, length)
	copy(schemaCopy, data)
	return schemaCopy, nil
}

// Factorial calls the "factorial" export of the module.
func (m *ModuleInstance) Factorial(ctx context.Context, req wireformat.FactorialRequest) (entities.Result, error) {
	reqBytes, err := json.Marshal(req)
	if err != nil {
		return entities.Result{}, err
	}

	packed, err := m.callRaw(ctx, "factorial", reqBytes)
	if err != nil {
		return entities.Result{}, err
	}

	var result entities.Result
	err = m.unmarshalPacked(packed, &result)
	return result, err
}

// FactorialRaw calls the "factorial" export with a caller-supplied payload.
// This bypasses host-side request construction so the guest's own binding
// boundary handles malformed input.
func (m *ModuleInstance) FactorialRaw(ctx context.Context, payload []byte) (entities.Result, error) {
	packed, err := m.callRaw(ctx, "factorial", payload)
	if err != nil {
		return entities.Result{}, err
	}

	var result entities.Result
	err = m.unmarshalPacked(packed, &result)
	return result, err
}

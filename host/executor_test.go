package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglasmun/factmod/hostfuncs"
)

func TestNewExecutor(t *testing.T) {
	ctx := context.Background()
	e, err := NewExecutor(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, e)
	if e != nil {
		err := e.Close(ctx)
		assert.NoError(t, err)
	}
}

func TestNewExecutorDefaultRegistry(t *testing.T) {
	ctx := context.Background()
	e, err := NewExecutor(ctx)
	require.NoError(t, err)
	defer e.Close(ctx)

	assert.True(t, e.registry.Has(hostfuncs.FactorialOperation))
}

func TestNewExecutorWithHostFunctions(t *testing.T) {
	ctx := context.Background()

	reg, err := hostfuncs.NewRegistry(
		hostfuncs.WithByteHandler("ping", func(ctx context.Context, payload []byte) ([]byte, error) {
			return []byte(`"pong"`), nil
		}),
	)
	require.NoError(t, err)

	e, err := NewExecutor(ctx, WithHostFunctions(reg))
	require.NoError(t, err)
	defer e.Close(ctx)

	assert.True(t, e.registry.Has("ping"))
	assert.False(t, e.registry.Has(hostfuncs.FactorialOperation))
}

func TestLoadModuleInvalidBytes(t *testing.T) {
	ctx := context.Background()
	e, err := NewExecutor(ctx)
	require.NoError(t, err)
	defer e.Close(ctx)

	_, err = e.LoadModule(ctx, []byte("not a wasm module"))
	assert.Error(t, err)
}

package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Empty(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NotNil(t, reg)
	assert.Empty(t, reg.Names())
}

func TestNewRegistry_WithByteHandler(t *testing.T) {
	echoHandler := func(ctx context.Context, payload []byte) ([]byte, error) {
		return payload, nil
	}

	reg, err := NewRegistry(
		WithByteHandler("echo", echoHandler),
	)
	require.NoError(t, err)

	assert.True(t, reg.Has("echo"))
	assert.False(t, reg.Has("nonexistent"))
	assert.Equal(t, []string{"echo"}, reg.Names())
}

func TestNewRegistry_DuplicateHandler(t *testing.T) {
	handler := func(ctx context.Context, payload []byte) ([]byte, error) {
		return nil, nil
	}

	_, err := NewRegistry(
		WithByteHandler("test", handler),
		WithByteHandler("test", handler), // duplicate
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate handler name")
}

func TestNewRegistry_EmptyName(t *testing.T) {
	handler := func(ctx context.Context, payload []byte) ([]byte, error) {
		return nil, nil
	}

	_, err := NewRegistry(
		WithByteHandler("", handler),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestNewRegistry_MathBundle(t *testing.T) {
	reg, err := NewRegistry(WithBundle(MathBundle()))
	require.NoError(t, err)

	assert.True(t, reg.Has(FactorialOperation))
	assert.Equal(t, []string{"factorial"}, reg.Names())
}

func TestHandlerRegistry_Invoke_NotFound(t *testing.T) {
	reg, err := NewRegistry(WithBundle(MathBundle()))
	require.NoError(t, err)

	resp, err := reg.Invoke(context.Background(), "fibonacci", []byte(`{}`))
	require.NoError(t, err)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(resp, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Error)
	assert.Equal(t, 404, errResp.Code)
	assert.Contains(t, errResp.Message, "fibonacci")
}

func TestHandlerRegistry_Names_Sorted(t *testing.T) {
	handler := func(ctx context.Context, payload []byte) ([]byte, error) {
		return nil, nil
	}

	reg, err := NewRegistry(
		WithByteHandler("zebra", handler),
		WithByteHandler("alpha", handler),
		WithByteHandler("middle", handler),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "middle", "zebra"}, reg.Names())
}

func TestHandlerRegistry_Invoke_SetsHostContext(t *testing.T) {
	var capturedName string
	handler := func(ctx context.Context, payload []byte) ([]byte, error) {
		if hc, ok := ctx.(HostContext); ok {
			capturedName = hc.FunctionName()
		}
		return nil, nil
	}

	reg, err := NewRegistry(
		WithByteHandler("test_func", handler),
	)
	require.NoError(t, err)

	_, err = reg.Invoke(context.Background(), "test_func", nil)
	require.NoError(t, err)
	assert.Equal(t, "test_func", capturedName)
}

package hostfuncs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/douglasmun/factmod/wireformat"
)

func invokeFactorial(t *testing.T, payload string) wireformat.FactorialResponse {
	t.Helper()

	reg, err := NewRegistry(WithBundle(MathBundle()))
	require.NoError(t, err)

	respBytes, err := reg.Invoke(context.Background(), FactorialOperation, []byte(payload))
	require.NoError(t, err)

	var resp wireformat.FactorialResponse
	require.NoError(t, json.Unmarshal(respBytes, &resp))
	return resp
}

func TestFactorialOperation_KnownValues(t *testing.T) {
	cases := []struct {
		payload string
		want    string
	}{
		{`{"n": 0}`, "1"},
		{`{"n": 1}`, "1"},
		{`{"n": 5}`, "120"},
		{`{"n": 10}`, "3628800"},
		{`{"n": 20}`, "2432902008176640000"},
	}
	for _, tc := range cases {
		resp := invokeFactorial(t, tc.payload)
		require.Nil(t, resp.Error, "payload %s: %v", tc.payload, resp.Error)
		assert.Equal(t, tc.want, resp.Value)
		assert.Equal(t, "checked", resp.Mode)
	}
}

func TestFactorialOperation_Negative(t *testing.T) {
	resp := invokeFactorial(t, `{"n": -1}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "domain", resp.Error.Type)
	assert.Empty(t, resp.Value)
}

func TestFactorialOperation_Overflow(t *testing.T) {
	resp := invokeFactorial(t, `{"n": 25}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "overflow", resp.Error.Type)
	assert.Empty(t, resp.Value)
}

func TestFactorialOperation_WrapMode(t *testing.T) {
	resp := invokeFactorial(t, `{"n": 25, "mode": "wrap"}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, "7034535277573963776", resp.Value)
	assert.Equal(t, "wrap", resp.Mode)
}

func TestFactorialOperation_BigMode(t *testing.T) {
	resp := invokeFactorial(t, `{"n": 25, "mode": "big"}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, "15511210043330985984000000", resp.Value)
}

func TestFactorialOperation_ArgumentTypeError(t *testing.T) {
	for _, payload := range []string{
		`{"n": "ten"}`,
		`{"n": 2.5}`,
		`{"n": true}`,
		`{}`,
	} {
		resp := invokeFactorial(t, payload)
		require.NotNil(t, resp.Error, "payload %s", payload)
		assert.Equal(t, "argument", resp.Error.Type, "payload %s", payload)
		assert.Empty(t, resp.Value, "payload %s", payload)
	}
}

func TestFactorialOperation_Idempotent(t *testing.T) {
	first := invokeFactorial(t, `{"n": 12}`)
	for i := 0; i < 3; i++ {
		again := invokeFactorial(t, `{"n": 12}`)
		assert.Equal(t, first, again)
	}
}

func TestPerformFactorial_DefaultsMode(t *testing.T) {
	resp := PerformFactorial(context.Background(), wireformat.FactorialRequest{N: 6})
	require.Nil(t, resp.Error)
	assert.Equal(t, "720", resp.Value)
	assert.Equal(t, "checked", resp.Mode)
}

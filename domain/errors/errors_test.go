package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentTypeError(t *testing.T) {
	err := &ArgumentTypeError{
		Argument: "n",
		Value:    `"ten"`,
		Expected: "integer",
	}

	assert.Equal(t, `argument "n" must be an integer, got "ten"`, err.Error())

	var argErr *ArgumentTypeError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "n", argErr.Argument)

	detail := err.ToErrorDetail()
	assert.Equal(t, "argument", detail.Type)
	assert.Equal(t, "n", detail.Code)
}

func TestArgumentTypeError_NoValue(t *testing.T) {
	err := &ArgumentTypeError{Argument: "n", Expected: "integer"}
	assert.Equal(t, `argument "n" must be an integer`, err.Error())
}

func TestDomainError(t *testing.T) {
	err := &DomainError{Operation: "factorial", N: -1}

	assert.Equal(t, "factorial is undefined for n = -1", err.Error())

	detail := err.ToErrorDetail()
	assert.Equal(t, "domain", detail.Type)
	assert.Equal(t, "factorial", detail.Code)
}

func TestOverflowError(t *testing.T) {
	err := &OverflowError{Operation: "factorial", N: 21, Bits: 64}

	assert.Equal(t, "factorial(21) overflows a signed 64-bit integer", err.Error())

	detail := err.ToErrorDetail()
	assert.Equal(t, "overflow", detail.Type)
	assert.Equal(t, "int64", detail.Code)
}

func TestConfigError(t *testing.T) {
	baseErr := fmt.Errorf("value out of range")
	err := &ConfigError{Field: "mode", Err: baseErr}

	assert.Equal(t, "config validation failed for field 'mode': value out of range", err.Error())
	assert.True(t, errors.Is(err, baseErr))

	detail := err.ToErrorDetail()
	assert.Equal(t, "config", detail.Type)
	assert.Equal(t, "mode", detail.Code)
}

func TestWireFormatError(t *testing.T) {
	baseErr := fmt.Errorf("unexpected end of JSON input")
	err := &WireFormatError{Operation: "decode", Type: "FactorialRequest", Err: baseErr}

	assert.Equal(t, "wire format decode failed for FactorialRequest: unexpected end of JSON input", err.Error())
	assert.True(t, errors.Is(err, baseErr))
}

func TestToErrorDetail_NilError(t *testing.T) {
	assert.Nil(t, ToErrorDetail(nil))
}

func TestToErrorDetail_DetailedError(t *testing.T) {
	err := &DomainError{Operation: "factorial", N: -5}
	detail := ToErrorDetail(err)

	require.NotNil(t, detail)
	assert.Equal(t, "domain", detail.Type)
	assert.Equal(t, "factorial is undefined for n = -5", detail.Message)
}

func TestToErrorDetail_WrappedDetailedError(t *testing.T) {
	err := fmt.Errorf("compute failed: %w", &OverflowError{Operation: "factorial", N: 25, Bits: 64})
	detail := ToErrorDetail(err)

	require.NotNil(t, detail)
	assert.Equal(t, "overflow", detail.Type)
}

func TestToErrorDetail_GenericError(t *testing.T) {
	detail := ToErrorDetail(fmt.Errorf("something broke"))

	require.NotNil(t, detail)
	assert.Equal(t, "internal", detail.Type)
	assert.Equal(t, "something broke", detail.Message)
}

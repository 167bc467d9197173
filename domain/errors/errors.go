// Package errors provides domain-specific error types for the SDK.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/douglasmun/factmod/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is an interface for custom error types that can convert
// themselves to a structured ErrorDetail. New error types only need to
// implement this interface without modifying ToErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// This function recognizes custom error types and categorizes them appropriately.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	// If the error is already a *ErrorDetail (entity), use it directly.
	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	// Check if error matches the DetailedError interface
	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	// Generic error - categorize as internal
	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// ArgumentTypeError is raised at the binding boundary when a caller supplies
// a value that cannot be interpreted as the expected integer type. The core
// function is never invoked and no partial result is produced.
type ArgumentTypeError struct {
	Argument string // Argument name (e.g. "n")
	Value    string // Textual form of the rejected value
	Expected string // Expected type (e.g. "integer")
}

func (e *ArgumentTypeError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("argument %q must be an %s, got %s", e.Argument, e.Expected, e.Value)
	}
	return fmt.Sprintf("argument %q must be an %s", e.Argument, e.Expected)
}

// ToErrorDetail implements DetailedError.
func (e *ArgumentTypeError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "argument", Code: e.Argument}
}

// DomainError is raised when an input is outside the mathematical domain of
// the operation. Factorial is undefined for negative integers; the SDK
// rejects them instead of echoing the accumulator's initial value.
type DomainError struct {
	Operation string
	N         int64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s is undefined for n = %d", e.Operation, e.N)
}

// ToErrorDetail implements DetailedError.
func (e *DomainError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "domain", Code: e.Operation}
}

// OverflowError is raised in checked mode when the true result exceeds the
// fixed-width accumulator. Wrap mode suppresses it by design; big mode
// never produces it.
type OverflowError struct {
	Operation string
	N         int64
	Bits      int // Accumulator width in bits
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s(%d) overflows a signed %d-bit integer", e.Operation, e.N, e.Bits)
}

// ToErrorDetail implements DetailedError.
func (e *OverflowError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "overflow", Code: fmt.Sprintf("int%d", e.Bits)}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}

// SchemaError represents a schema generation error.
type SchemaError struct {
	Err  error
	Type string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("schema error for type %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SchemaError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "validation", Code: "schema"}
}

// WireFormatError represents a wire format encoding/decoding error.
type WireFormatError struct {
	Err       error
	Operation string
	Type      string
}

func (e *WireFormatError) Error() string {
	return fmt.Sprintf("wire format %s failed for %s: %v", e.Operation, e.Type, e.Err)
}

func (e *WireFormatError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *WireFormatError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "internal", Code: "wire_format"}
}

// MemoryError represents a linear memory allocation failure.
type MemoryError struct {
	Requested int // Requested allocation size
	Current   int // Current total allocated
	Limit     int // Maximum allowed
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("memory allocation failed: requested %d bytes, current %d bytes, limit %d bytes",
		e.Requested, e.Current, e.Limit)
}

// ToErrorDetail implements DetailedError.
func (e *MemoryError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "internal", Code: "memory_limit"}
}

package entities

import (
	"time"
)

// ResultStatus represents the outcome status of an SDK operation.
type ResultStatus string

const (
	// ResultStatusSuccess indicates the operation completed successfully.
	ResultStatusSuccess ResultStatus = "success"

	// ResultStatusError indicates an error occurred during the operation.
	ResultStatusError ResultStatus = "error"
)

// Result represents the outcome of a plugin operation.
// The guest returns a Result for every exported call; the host unpacks it
// from the wire without inspecting Data.
type Result struct {
	// Timestamp is when this result was created.
	// Set automatically by the SDK when the result crosses the ABI.
	Timestamp time.Time `json:"timestamp"`

	// Data contains operation-specific result data.
	// For the factorial operation this carries "n", "mode" and the
	// decimal "value" string.
	Data map[string]any `json:"data,omitempty"`

	// Metadata contains execution metadata (timing, versions).
	Metadata *RunMetadata `json:"metadata,omitempty"`

	// Error contains structured error information if Status is Error.
	Error *ErrorDetail `json:"error,omitempty"`

	// Status indicates whether the operation succeeded or errored.
	Status ResultStatus `json:"status"`

	// Message provides a human-readable description of the result.
	Message string `json:"message,omitempty"`
}

// ResultSuccess creates a successful Result with the given message and data.
func ResultSuccess(message string, data map[string]any) Result {
	return Result{
		Status:  ResultStatusSuccess,
		Message: message,
		Data:    data,
	}
}

// ResultError creates an error Result with the given error details.
// Use this when the operation could not complete.
func ResultError(err *ErrorDetail) Result {
	return Result{
		Status:  ResultStatusError,
		Message: err.Message,
		Error:   err,
	}
}

// WithMetadata returns a copy of the Result with the given metadata attached.
func (r Result) WithMetadata(m *RunMetadata) Result {
	r.Metadata = m
	return r
}

// IsSuccess returns true if the result indicates success.
func (r Result) IsSuccess() bool {
	return r.Status == ResultStatusSuccess
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == ResultStatusError
}

// Package plugintest provides a test harness for factmod modules.
package plugintest

import (
	"context"
	"reflect"
	"testing"

	"github.com/douglasmun/factmod/application/plugin"
	"github.com/douglasmun/factmod/domain/entities"
	"github.com/douglasmun/factmod/wireformat"
)

// TestCase defines a test case for a module.
type TestCase struct {
	Name     string
	Request  wireformat.FactorialRequest
	Validate func(t *testing.T, r *entities.Result)
}

// RunPluginTests runs a suite of tests against a module implementation.
func RunPluginTests(t *testing.T, p plugin.Plugin, tests []TestCase) {
	t.Helper()

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			result, err := p.Compute(context.Background(), tc.Request)
			// Treat an execution error (panic or unhandled error) as an
			// error Result so Validate sees a uniform shape.
			if err != nil {
				errDetail := &entities.ErrorDetail{
					Message: err.Error(),
					Type:    "internal",
				}
				res := entities.ResultError(errDetail)
				result = &res
			}

			if tc.Validate != nil {
				tc.Validate(t, result)
			}
		})
	}
}

// AssertSuccess asserts the result is a success.
func AssertSuccess(t *testing.T, r *entities.Result) {
	t.Helper()
	if r.Status != entities.ResultStatusSuccess {
		t.Errorf("expected success, got %s: %s", r.Status, r.Message)
	}
}

// AssertError asserts the result carries an error of the given type.
func AssertError(t *testing.T, r *entities.Result, errType string) {
	t.Helper()
	if r.Status != entities.ResultStatusError {
		t.Errorf("expected error, got %s: %s", r.Status, r.Message)
		return
	}
	if r.Error == nil {
		t.Error("error result has no error detail")
		return
	}
	if r.Error.Type != errType {
		t.Errorf("expected error type %q, got %q: %s", errType, r.Error.Type, r.Error.Message)
	}
}

// AssertDataField asserts a specific field in Data matches the expected value.
func AssertDataField(t *testing.T, r *entities.Result, key string, expected any) {
	t.Helper()
	val, ok := r.Data[key]
	if !ok {
		t.Errorf("missing data field %q", key)
		return
	}

	// Handle basic numeric conversion for JSON unmarshaled data
	if expectedNum, ok := toFloat64(expected); ok {
		if actualNum, ok := toFloat64(val); ok {
			if expectedNum != actualNum {
				t.Errorf("field %q: expected %v, got %v", key, expected, val)
			}
			return
		}
	}

	if !reflect.DeepEqual(val, expected) {
		t.Errorf("field %q: expected %v, got %v", key, expected, val)
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

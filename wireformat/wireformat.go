// Package wireformat defines the JSON wire format for communication between
// the host and the factorial module. These types are the binding boundary:
// they translate a caller's JSON representation into the typed request the
// core function expects, and reject anything that is not an integer before
// the core is ever invoked. The structures must remain stable as they define
// the ABI contract.
package wireformat

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/douglasmun/factmod/domain/entities"
	"github.com/douglasmun/factmod/domain/errors"
)

// validate is a package-level singleton; constructing a validator per call
// is expensive.
var validate = validator.New()

// FactorialRequest is the JSON wire format for a factorial invocation.
type FactorialRequest struct {
	// N is the input. Conceptually defined for n >= 0; negative values are
	// rejected by the core with a domain error.
	N int64 `json:"n" jsonschema:"required,description=Non-negative integer input"`

	// Mode selects the accumulator-width policy. Empty means "checked".
	Mode string `json:"mode,omitempty" validate:"omitempty,oneof=checked wrap big" jsonschema:"enum=checked,enum=wrap,enum=big,default=checked"`
}

// FactorialResponse is the JSON wire format for a factorial result.
// Value is a decimal string so arbitrary-precision results survive the
// round trip unchanged.
type FactorialResponse struct {
	Error *entities.ErrorDetail `json:"error,omitempty"`
	Value string                `json:"value,omitempty"`
	Mode  string                `json:"mode,omitempty"`
	N     int64                 `json:"n"`
}

// rawRequest defers interpretation of "n" so type mismatches can be
// reported precisely instead of as a generic unmarshal error.
type rawRequest struct {
	N    json.RawMessage `json:"n"`
	Mode string          `json:"mode,omitempty"`
}

// DecodeFactorialRequest strictly decodes a FactorialRequest from JSON.
//
// A missing "n", or an "n" that is not an integer representable as int64
// (a string, a bool, a fraction, an out-of-range number), yields an
// ArgumentTypeError. Malformed JSON yields a WireFormatError. An invalid
// mode yields a ConfigError. The caller receives at most one of: a decoded
// request, or an error - never a partial result.
func DecodeFactorialRequest(payload []byte) (FactorialRequest, error) {
	var req FactorialRequest

	var raw rawRequest
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return req, &errors.WireFormatError{Operation: "decode", Type: "FactorialRequest", Err: err}
	}

	n, err := parseIntegerArg("n", raw.N)
	if err != nil {
		return req, err
	}

	req.N = n
	req.Mode = raw.Mode
	if err := validate.Struct(&req); err != nil {
		return FactorialRequest{}, &errors.ConfigError{Field: "mode", Err: err}
	}
	return req, nil
}

// EncodeFactorialResponse marshals a FactorialResponse to JSON.
func EncodeFactorialResponse(resp FactorialResponse) ([]byte, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return nil, &errors.WireFormatError{Operation: "encode", Type: "FactorialResponse", Err: err}
	}
	return data, nil
}

// parseIntegerArg interprets a raw JSON value as an int64, producing an
// ArgumentTypeError for anything else.
func parseIntegerArg(name string, raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, &errors.ArgumentTypeError{Argument: name, Expected: "integer"}
	}

	text := strings.TrimSpace(string(raw))
	if strings.ContainsAny(text, ".eE") || !isJSONNumber(text) {
		return 0, &errors.ArgumentTypeError{Argument: name, Value: truncateValue(text), Expected: "integer"}
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Syntactically a number but not representable as int64.
		return 0, &errors.ArgumentTypeError{Argument: name, Value: truncateValue(text), Expected: "integer"}
	}
	return n, nil
}

// isJSONNumber reports whether text looks like a JSON integer token
// (an optional minus sign followed by digits).
func isJSONNumber(text string) bool {
	if text == "" {
		return false
	}
	if text[0] == '-' {
		text = text[1:]
	}
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// truncateValue bounds the echoed value so a hostile payload cannot inflate
// error messages.
func truncateValue(text string) string {
	const max = 32
	if len(text) > max {
		return text[:max] + "..."
	}
	return text
}

// Package factorial implements the module's one native routine: a bounded
// integer factorial with an explicit accumulator-width policy.
//
// The width policy is a deliberate design parameter, not an accident of the
// platform integer type. Checked mode rejects inputs whose true result does
// not fit a signed 64-bit accumulator; wrap mode reproduces the historical
// fixed-width behavior (two's-complement wraparound past 20!); big mode
// computes the exact value with math/big.
package factorial

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/douglasmun/factmod/domain/errors"
)

// Mode selects the accumulator-width policy for a computation.
type Mode string

const (
	// ModeChecked uses an int64 accumulator and returns an OverflowError
	// for any n whose factorial exceeds it. This is the default.
	ModeChecked Mode = "checked"

	// ModeWrap uses an int64 accumulator with silent two's-complement
	// wraparound, matching the original fixed-width behavior.
	ModeWrap Mode = "wrap"

	// ModeBig computes the exact arbitrary-precision value.
	ModeBig Mode = "big"
)

// MaxChecked is the largest n whose factorial fits a signed 64-bit integer.
// 20! = 2432902008176640000; 21! does not fit.
const MaxChecked = 20

const operation = "factorial"

// Compute returns n! using a checked int64 accumulator.
// Negative n returns a DomainError; n > MaxChecked returns an OverflowError.
func Compute(n int64) (int64, error) {
	if n < 0 {
		return 0, &errors.DomainError{Operation: operation, N: n}
	}
	if n > MaxChecked {
		return 0, &errors.OverflowError{Operation: operation, N: n, Bits: 64}
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return result, nil
}

// ComputeWrap returns n! using an int64 accumulator with silent wraparound.
// Past n = MaxChecked the result is the low 64 bits of the true product,
// which is what the original fixed-width implementation produced.
// Negative n still returns a DomainError.
func ComputeWrap(n int64) (int64, error) {
	if n < 0 {
		return 0, &errors.DomainError{Operation: operation, N: n}
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return result, nil
}

// ComputeBig returns the exact value of n! as a big.Int.
// Negative n returns a DomainError.
func ComputeBig(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, &errors.DomainError{Operation: operation, N: n}
	}
	result := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result, nil
}

// ComputeMode computes n! under the given width policy and returns the
// result as a decimal string so all three policies share one surface.
// An empty mode defaults to ModeChecked. An unknown mode is rejected with
// a ConfigError; callers going through the wire format validate the mode
// before reaching this point.
func ComputeMode(n int64, mode Mode) (string, error) {
	switch mode {
	case ModeChecked, "":
		v, err := Compute(n)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case ModeWrap:
		v, err := ComputeWrap(n)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case ModeBig:
		v, err := ComputeBig(n)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	default:
		return "", &errors.ConfigError{
			Field: "mode",
			Err:   fmt.Errorf("unknown mode %q, want one of %q, %q, %q", mode, ModeChecked, ModeWrap, ModeBig),
		}
	}
}

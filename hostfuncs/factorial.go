package hostfuncs

import (
	"context"

	"github.com/douglasmun/factmod/domain/errors"
	"github.com/douglasmun/factmod/factorial"
	"github.com/douglasmun/factmod/wireformat"
)

// PerformFactorial executes the factorial operation for an already-decoded
// request. Errors from the core (domain, overflow) are carried in the
// response's Error field so the caller always receives a parseable
// FactorialResponse.
func PerformFactorial(_ context.Context, req wireformat.FactorialRequest) wireformat.FactorialResponse {
	resp := wireformat.FactorialResponse{N: req.N, Mode: req.Mode}
	if resp.Mode == "" {
		resp.Mode = string(factorial.ModeChecked)
	}

	value, err := factorial.ComputeMode(req.N, factorial.Mode(req.Mode))
	if err != nil {
		resp.Error = errors.ToErrorDetail(err)
		return resp
	}

	resp.Value = value
	return resp
}

// factorialHandler is the ByteHandler for the "factorial" operation.
// It performs the strict binding decode, so a caller supplying a value that
// cannot be interpreted as an integer receives a structured argument error
// and the core function is never invoked.
func factorialHandler(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := wireformat.DecodeFactorialRequest(payload)
	if err != nil {
		return wireformat.EncodeFactorialResponse(wireformat.FactorialResponse{
			Error: errors.ToErrorDetail(err),
		})
	}
	return wireformat.EncodeFactorialResponse(PerformFactorial(ctx, req))
}

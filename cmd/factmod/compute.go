package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/douglasmun/factmod/hostfuncs"
	"github.com/douglasmun/factmod/wireformat"
)

var (
	computeN    int64
	computeMode string
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute n! in-process through the operation registry",
	Long: `Computes n! without a WASM guest: the request goes through the same
binding decode and operation registry a guest call would, so argument
and overflow errors surface exactly as they do over the ABI.`,
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().Int64VarP(&computeN, "n", "n", 0, "value to compute the factorial of")
	computeCmd.Flags().StringVarP(&computeMode, "mode", "m", "checked", "overflow policy: checked, wrap or big")
}

func runCompute(cmd *cobra.Command, args []string) error {
	registry, err := hostfuncs.NewRegistry(
		hostfuncs.WithMiddleware(hostfuncs.PanicRecoveryMiddleware()),
		hostfuncs.WithBundle(hostfuncs.AllBundles()),
	)
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}

	payload, err := json.Marshal(wireformat.FactorialRequest{N: computeN, Mode: computeMode})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	slog.Debug("invoking operation", "operation", hostfuncs.FactorialOperation, "n", computeN, "mode", computeMode)

	respBytes, err := registry.Invoke(cmd.Context(), hostfuncs.FactorialOperation, payload)
	if err != nil {
		return fmt.Errorf("operation failed: %w", err)
	}

	var resp wireformat.FactorialResponse
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.Error != nil {
		return fmt.Errorf("%s", resp.Error.Message)
	}

	fmt.Printf("factorial(%d) = %s (mode=%s)\n", resp.N, resp.Value, resp.Mode)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/douglasmun/factmod/host"
	"github.com/douglasmun/factmod/wireformat"
)

var (
	runN        int64
	runMode     string
	runManifest string
	runSchema   bool
)

var runCmd = &cobra.Command{
	Use:   "run [module.wasm]",
	Short: "Load a compiled WASM guest and invoke its factorial export",
	Long: `Loads the guest module, prints its metadata, then calls the factorial
export with the given arguments. With --manifest the on-disk manifest is
validated against the module's reported metadata first.`,
	Args: cobra.ExactArgs(1),
	RunE: runModule,
}

func init() {
	runCmd.Flags().Int64VarP(&runN, "n", "n", 0, "value to compute the factorial of")
	runCmd.Flags().StringVarP(&runMode, "mode", "m", "checked", "overflow policy: checked, wrap or big")
	runCmd.Flags().StringVar(&runManifest, "manifest", "", "path to the module manifest to validate")
	runCmd.Flags().BoolVar(&runSchema, "schema", false, "print the module's request schema and exit")
}

func runModule(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	wasmBytes, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read module file: %w", err)
	}

	executor, err := host.NewExecutor(ctx)
	if err != nil {
		return fmt.Errorf("failed to create executor: %w", err)
	}
	defer executor.Close(ctx)

	module, err := executor.LoadModule(ctx, wasmBytes)
	if err != nil {
		return fmt.Errorf("failed to load module: %w", err)
	}

	metadata, err := module.Describe(ctx)
	if err != nil {
		return fmt.Errorf("describe failed: %w", err)
	}
	slog.Info("loaded module", "name", metadata.Name, "version", metadata.Version, "operations", metadata.Operations)

	if runManifest != "" {
		raw, err := os.ReadFile(runManifest)
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}
		manifest, err := host.NewLoader().LoadManifest(raw)
		if err != nil {
			return fmt.Errorf("invalid manifest: %w", err)
		}
		if manifest.Name != metadata.Name {
			return fmt.Errorf("manifest name %q does not match module name %q", manifest.Name, metadata.Name)
		}
		slog.Debug("manifest validated", "name", manifest.Name, "version", manifest.Version)
	}

	if runSchema {
		schemaBytes, err := module.Schema(ctx)
		if err != nil {
			return fmt.Errorf("schema failed: %w", err)
		}
		fmt.Println(string(schemaBytes))
		return nil
	}

	result, err := module.Factorial(ctx, wireformat.FactorialRequest{N: runN, Mode: runMode})
	if err != nil {
		return fmt.Errorf("factorial call failed: %w", err)
	}

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(resultJSON))

	if result.IsError() {
		return fmt.Errorf("%s", result.Message)
	}
	return nil
}

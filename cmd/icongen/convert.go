package main

import (
	"fmt"
	"os"

	"icongen/internal/converter"

	"github.com/spf13/cobra"
)

// runConvert performs the one-shot conversion. The output existence check
// at the end is authoritative: whatever a backend claimed, a missing file
// means failure.
func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	chain := converter.DefaultChain(logger, cfg.ToolTimeoutDuration())
	used, err := chain.Convert(cmd.Context(), converter.Request{
		Input:  cfg.Input,
		Output: cfg.Output,
		Width:  cfg.Size,
		Height: cfg.Size,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed to create PNG file: %v\n", err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s using %s\n", cfg.Output, used)

	if _, err := os.Stat(cfg.Output); err != nil {
		return fmt.Errorf("output %s missing after conversion: %w", cfg.Output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully created %s\n", cfg.Output)
	return nil
}

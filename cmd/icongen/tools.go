package main

import (
	"fmt"

	"icongen/internal/converter"

	"github.com/spf13/cobra"
)

// toolsCmd reports which backends the fallback chain would find, in the
// order they would be tried.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Show converter backends in fallback order and their availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		chain := converter.DefaultChain(logger, cfg.ToolTimeoutDuration())
		for _, c := range chain.Converters() {
			status := "not found"
			if c.Available() {
				status = "available"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", c.Name(), status)
		}
		return nil
	},
}

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"icongen/internal/catalog"
	"icongen/internal/converter"

	"github.com/spf13/cobra"
)

var iconsetDir string

// iconsetCmd renders the full app-icon size ladder and emits an Xcode
// asset-catalog Contents.json alongside the PNGs.
var iconsetCmd = &cobra.Command{
	Use:   "iconset",
	Short: "Render every configured size and write an AppIcon asset catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		stem := strings.TrimSuffix(filepath.Base(cfg.Input), filepath.Ext(cfg.Input))
		base := filepath.Join(iconsetDir, stem+".png")
		chain := converter.DefaultChain(logger, cfg.ToolTimeoutDuration())
		results, err := chain.RenderSet(cmd.Context(), cfg.Input, base, cfg.Sizes)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed to render icon set: %v\n", err)
			return err
		}

		files := make(map[int]string, len(results))
		for _, res := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s using %s\n", res.Output, res.Converter)
			files[res.Size] = res.Output
		}

		contents, err := catalog.Write(iconsetDir, files)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", contents)
		return nil
	},
}

func init() {
	iconsetCmd.Flags().StringVarP(&iconsetDir, "dir", "d", ".", "Directory for rendered PNGs and the asset catalog")
}

package main

import (
	"fmt"
	"os"

	"icongen/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	inputFlag  string
	outputFlag string
	sizeFlag   int

	// Logger
	logger *zap.Logger
)

// rootCmd converts once and exits. With no flags it reproduces the classic
// behavior: robot_icon.svg in the working directory becomes
// robot_icon_1024.png at 1024x1024.
var rootCmd = &cobra.Command{
	Use:   "icongen",
	Short: "icongen - SVG to PNG app icon generator",
	Long: `icongen rasterizes an SVG icon to PNG for app icon use.

Conversion is delegated to the first working backend from a fixed
fallback chain: rsvg-convert, the built-in renderer, then ImageMagick.
Each backend is tried exactly once, in that order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runConvert,
}

// loadConfig layers the config file (when present) and command-line flags
// over the defaults. Flags win over the file; the file wins over env.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg.ApplyEnvOverrides()
	}

	if cmd.Flags().Changed("input") {
		cfg.Input = inputFlag
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFlag
	}
	if cmd.Flags().Changed("size") {
		cfg.Size = sizeFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to icongen.yaml (optional)")
	rootCmd.PersistentFlags().StringVarP(&inputFlag, "input", "i", "robot_icon.svg", "Source SVG path")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "robot_icon_1024.png", "Destination PNG path")
	rootCmd.PersistentFlags().IntVarP(&sizeFlag, "size", "s", 1024, "Square output size in pixels")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(iconsetCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

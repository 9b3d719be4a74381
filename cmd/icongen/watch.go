package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"icongen/internal/converter"
	"icongen/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd converts once, then re-converts whenever the source SVG changes.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the conversion whenever the source SVG changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		chain := converter.DefaultChain(logger, cfg.ToolTimeoutDuration())
		convert := func(ctx context.Context) {
			used, err := chain.Convert(ctx, converter.Request{
				Input:  cfg.Input,
				Output: cfg.Output,
				Width:  cfg.Size,
				Height: cfg.Size,
			})
			if err != nil {
				logger.Warn("conversion failed", zap.Error(err))
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s using %s\n", cfg.Output, used)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		convert(ctx)

		w, err := watch.New(cfg.Input, convert, logger)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()

		<-ctx.Done()
		return nil
	},
}

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the periodic voice flush until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("progression engine running",
				"data_dir", c.settings.DataDir,
				"backend", c.settings.Storage.Backend,
				"flush_schedule", c.settings.Voice.FlushSchedule)

			if err := c.app.Run(ctx); err != nil {
				return err
			}

			slog.Info("progression engine stopped")
			return nil
		},
	}
}

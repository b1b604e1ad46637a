package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/notify"
)

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test notification through every configured channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !notify.Configured(cfg) {
				fmt.Fprintln(out, "No notification channels configured; nothing to test")
				return nil
			}

			service := notify.NewService(cfg)
			if err := service.Test(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, colorize(out, ansiGreen, "Test notification sent"))
			return nil
		},
	}
}

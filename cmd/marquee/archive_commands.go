package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/archive"
)

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect announced releases",
	}

	archiveCmd.AddCommand(newArchiveListCommand(ctx))
	archiveCmd.AddCommand(newArchiveStatsCommand(ctx))

	return archiveCmd
}

func newArchiveListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every release that has been announced",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := archive.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.All(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "Archive is empty")
				return nil
			}
			fmt.Fprintln(out, renderArchiveRecords(records))
			return nil
		},
	}
}

func newArchiveStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show archive summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := archive.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Archive: %s\n", store.Path())
			fmt.Fprintf(out, "Announced releases: %d\n", stats.Announced)
			if !stats.LastAnnounced.IsZero() {
				fmt.Fprintf(out, "Last announcement: %s\n", stats.LastAnnounced.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

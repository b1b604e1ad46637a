package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"marquee/internal/archive"
	"marquee/internal/catalog/tmdb"
	"marquee/internal/digest"
	"marquee/internal/logging"
	"marquee/internal/notify"
)

func newRunCommand(cctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch filmographies and announce new releases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			store, err := archive.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			httpClient := &http.Client{Timeout: time.Duration(cfg.TMDB.RequestTimeout) * time.Second}
			client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language, tmdb.WithHTTPClient(httpClient))
			if err != nil {
				return err
			}

			var opts []digest.Option
			if dryRun {
				opts = append(opts, digest.WithDryRun())
			}
			notifier := notify.NewService(cfg)
			if !notify.Configured(cfg) {
				// The digest prints here instead, so nothing is archived
				// without having been shown.
				notifier = notify.NewConsole(cmd.OutOrStdout())
			}
			runner := digest.NewRunner(cfg, store, tmdb.NewSource(client), notifier, logger, opts...)

			summary, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summary.Announced) == 0 {
				fmt.Fprintf(out, "Nothing new to announce (%d directors checked, %d skipped)\n",
					summary.Directors, summary.Skipped)
				return nil
			}

			if summary.DryRun {
				header := fmt.Sprintf("Dry run: %d release(s) would be announced", len(summary.Announced))
				fmt.Fprintln(out, colorize(out, ansiBlue, header))
				fmt.Fprintln(out, renderReleases(summary.Announced))
				return nil
			}

			line := fmt.Sprintf("Announced %d release(s) (%d directors checked, %d skipped)",
				len(summary.Announced), summary.Directors, summary.Skipped)
			fmt.Fprintln(out, colorize(out, ansiGreen, line))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Fetch and filter without sending or committing")
	return cmd
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}

			written, err := config.CreateSample(target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", written)
			fmt.Fprintln(out, "Edit the file to set the TMDB API key (or export TMDB_API_KEY) and add your directors.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Archive path", cfg.Archive.Path},
				{"TMDB base URL", cfg.TMDB.BaseURL},
				{"TMDB language", cfg.TMDB.Language},
				{"Short runtime cutoff", fmt.Sprintf("%d min", cfg.Filters.ShortRuntimeMinutes)},
				{"Require release date", strconv.FormatBool(cfg.Filters.RequireReleaseDate)},
				{"Email enabled", strconv.FormatBool(cfg.Email.Enabled)},
				{"Ntfy topic", cfg.Notifications.NtfyTopic},
				{"Directors", strconv.Itoa(len(cfg.Directors))},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Setting", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))

			if len(cfg.Directors) > 0 {
				directorRows := make([][]string, 0, len(cfg.Directors))
				for _, d := range cfg.Directors {
					directorRows = append(directorRows, []string{strconv.FormatInt(d.ID, 10), d.Name})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"TMDB ID", "Director"},
					directorRows,
					[]columnAlignment{alignRight, alignLeft},
				))
			}
			return nil
		},
	}
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			if dir := filepath.Dir(cfg.Archive.Path); dir != "" && dir != "." {
				if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
					fmt.Fprintf(out, "Archive directory %s does not exist yet; it is created on first run\n", dir)
				}
			}
			fmt.Fprintf(out, "Configuration valid (%d directors)\n", len(cfg.Directors))
			return nil
		},
	}
}

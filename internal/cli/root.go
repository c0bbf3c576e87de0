// Package cli implements the vidio CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/0xti4n/vidio/internal/config"
	"github.com/0xti4n/vidio/internal/report"
	"github.com/0xti4n/vidio/internal/storage"
	"github.com/0xti4n/vidio/internal/transcript"
	"github.com/0xti4n/vidio/internal/tui"
)

var cliOnly bool

var rootCmd = &cobra.Command{
	Use:   "vidio",
	Short: "Fetch video transcripts and turn them into readable reports",
	Long: `vidio fetches video transcripts and generates markdown reports from
them. Run without arguments for the interactive TUI; subcommands print
straight to stdout for scripting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cliOnly {
			return cmd.Help()
		}
		return runTUI()
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	svc, err := buildServices()
	if err != nil {
		return err
	}
	return tui.Run(svc)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cliOnly, "cli", false, "never launch the TUI; without a subcommand, print help")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildServices loads settings and wires the shared backends.
func buildServices() (*tui.Services, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	return &tui.Services{
		Store:   storage.New(settings.EffectiveTranscriptsDir(), settings.EffectiveReportsDir()),
		Fetcher: transcript.NewHTTPFetcher(),
		Reporter: func() (report.Generator, error) {
			c, err := report.NewFromEnv()
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		Settings: *settings,
	}, nil
}

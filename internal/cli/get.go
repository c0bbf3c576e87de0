package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xti4n/vidio/internal/transcript"
	"github.com/0xti4n/vidio/internal/videoid"
)

var (
	getLanguages []string
	getPreserve  bool
	getNoSave    bool
	getReport    bool
)

var getCmd = &cobra.Command{
	Use:   "get <url-or-id>",
	Short: "Fetch a transcript and print it",
	Long: `Fetch the transcript for a video and print it to stdout.

If the transcript is already stored, the stored copy is printed and no
network request is made. With --report a markdown report is generated
afterwards (requires OPENAI_API_KEY).`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringSliceVarP(&getLanguages, "languages", "l", nil, "language codes in priority order")
	getCmd.Flags().BoolVar(&getPreserve, "preserve-formatting", false, "keep markup in snippet text")
	getCmd.Flags().BoolVar(&getNoSave, "no-save", false, "print without storing")
	getCmd.Flags().BoolVar(&getReport, "report", false, "also generate a report")
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, err := buildServices()
	if err != nil {
		return err
	}

	id, err := videoid.Extract(args[0])
	if err != nil {
		return err
	}

	var text string
	if svc.Store.TranscriptExists(id) {
		text, err = svc.Store.LoadTranscript(id)
		if err != nil {
			return err
		}
		fmt.Println(styleHint.Render("(stored) ") + styleValue.Render(svc.Store.TranscriptPath(id)))
		fmt.Println(text)
	} else {
		languages := getLanguages
		if len(languages) == 0 {
			languages = svc.Settings.Languages
		}
		preserve := getPreserve
		if !cmd.Flags().Changed("preserve-formatting") {
			preserve = svc.Settings.PreserveFormatting
		}

		snippets, err := svc.Fetcher.Fetch(cmd.Context(), id, languages, preserve)
		if err != nil {
			return err
		}

		lines := transcript.FormatSnippets(snippets)
		if !getNoSave {
			path, err := svc.Store.SaveTranscript(id, lines)
			if err != nil {
				return err
			}
			fmt.Println(styleSuccess.Render("Saved ") + styleValue.Render(path))
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		text = transcript.Text(snippets)
	}

	if !getReport {
		return nil
	}
	if svc.Store.ReportExists(id) {
		fmt.Println(styleHint.Render("(stored) ") + styleValue.Render(svc.Store.ReportPath(id)))
		return nil
	}
	gen, err := svc.Reporter()
	if err != nil {
		return err
	}
	fmt.Println(styleHint.Render("Generating report..."))
	content, err := gen.Generate(cmd.Context(), text)
	if err != nil {
		return err
	}
	path, err := svc.Store.SaveReport(id, content)
	if err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render("Saved ") + styleValue.Render(path))
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xti4n/vidio/internal/transcript"
	"github.com/0xti4n/vidio/internal/videoid"
)

var reportLanguages []string

var reportCmd = &cobra.Command{
	Use:   "report <url-or-id>",
	Short: "Generate a markdown report for a video",
	Long: `Generate a markdown report from a video's transcript and print it.

A stored report is printed as-is. Otherwise the transcript is fetched
(or loaded if already stored), the report is generated, stored, and
printed. Requires OPENAI_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringSliceVarP(&reportLanguages, "languages", "l", nil, "language codes in priority order")
}

func runReport(cmd *cobra.Command, args []string) error {
	svc, err := buildServices()
	if err != nil {
		return err
	}

	id, err := videoid.Extract(args[0])
	if err != nil {
		return err
	}

	if svc.Store.ReportExists(id) {
		content, err := svc.Store.LoadReport(id)
		if err != nil {
			return err
		}
		fmt.Println(styleHint.Render("(stored) ") + styleValue.Render(svc.Store.ReportPath(id)))
		fmt.Println(content)
		return nil
	}

	var text string
	if svc.Store.TranscriptExists(id) {
		text, err = svc.Store.LoadTranscript(id)
		if err != nil {
			return err
		}
	} else {
		languages := reportLanguages
		if len(languages) == 0 {
			languages = svc.Settings.Languages
		}
		snippets, err := svc.Fetcher.Fetch(cmd.Context(), id, languages, svc.Settings.PreserveFormatting)
		if err != nil {
			return err
		}
		if _, err := svc.Store.SaveTranscript(id, transcript.FormatSnippets(snippets)); err != nil {
			return err
		}
		text = transcript.Text(snippets)
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
	fmt.Println(content)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xti4n/vidio/internal/storage"
)

var listKind string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored transcripts and reports",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listKind, "kind", "k", "all", "filter: all, transcripts, reports")
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := buildServices()
	if err != nil {
		return err
	}

	entries, err := svc.Store.List()
	if err != nil {
		return err
	}

	shown := 0
	for _, e := range entries {
		switch listKind {
		case "transcripts":
			if e.Kind != storage.KindTranscript {
				continue
			}
		case "reports":
			if e.Kind != storage.KindReport {
				continue
			}
		}
		badge := badgeTranscript
		if e.Kind == storage.KindReport {
			badge = badgeReport
		}
		fmt.Printf("%s  %s  %8d  %s\n",
			badge.Render(fmt.Sprintf("%-10s", e.Kind)),
			e.Modified.Format("2006-01-02 15:04"),
			e.Size,
			e.Name,
		)
		shown++
	}
	if shown == 0 {
		fmt.Println(styleHint.Render("No stored files."))
	}
	return nil
}

package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/0xti4n/vidio/internal/storage"
	"github.com/0xti4n/vidio/internal/transcript"
)

// msgSender is the slice of programRef the job goroutine needs.
type msgSender interface {
	Send(msg tea.Msg)
}

// startJobCmd launches the fetch/report pipeline in its own goroutine. The
// goroutine never touches the model; it reports through program.Send and
// stops between stages when ctx is cancelled.
func startJobCmd(ctx context.Context, svc *Services, program msgSender, jobID string, req Request) tea.Cmd {
	return func() tea.Msg {
		go runJob(ctx, svc, program, jobID, req)
		return nil
	}
}

func runJob(ctx context.Context, svc *Services, program msgSender, jobID string, req Request) {
	status := func(text string) {
		program.Send(StatusMsg{JobID: jobID, Text: text})
	}
	logf := func(format string, args ...interface{}) {
		program.Send(LogMsg{JobID: jobID, Text: fmt.Sprintf(format, args...)})
	}
	progress := func(f float64) {
		program.Send(ProgressMsg{JobID: jobID, Fraction: f})
	}
	done := func(err error) {
		program.Send(JobDoneMsg{JobID: jobID, Err: err})
	}

	progress(0.05)

	var text string
	if svc.Store.TranscriptExists(req.VideoID) {
		logf("Transcript for %s already stored, skipping fetch", req.VideoID)
		loaded, err := svc.Store.LoadTranscript(req.VideoID)
		if err != nil {
			done(fmt.Errorf("load stored transcript: %w", err))
			return
		}
		text = loaded
	} else {
		status("Fetching transcript for " + req.VideoID)
		snippets, err := svc.Fetcher.Fetch(ctx, req.VideoID, req.Languages, req.PreserveFormatting)
		if err != nil {
			done(fmt.Errorf("fetch transcript: %w", err))
			return
		}
		logf("Fetched %d snippets", len(snippets))
		progress(0.35)

		path, err := svc.Store.SaveTranscript(req.VideoID, transcript.FormatSnippets(snippets))
		if err != nil {
			done(fmt.Errorf("save transcript: %w", err))
			return
		}
		logf("Saved %s", path)
		text = transcript.Text(snippets)
	}
	progress(0.5)

	if ctx.Err() != nil {
		done(ctx.Err())
		return
	}

	if !req.GenerateReport {
		status("Done")
		progress(1)
		done(nil)
		return
	}

	if svc.Store.ReportExists(req.VideoID) {
		logf("Report for %s already stored, skipping generation", req.VideoID)
		status("Done")
		progress(1)
		done(nil)
		return
	}

	gen, err := svc.Reporter()
	if err != nil {
		done(err)
		return
	}

	status("Generating report (this can take a while)")
	progress(0.6)
	content, err := gen.Generate(ctx, text)
	if err != nil {
		done(fmt.Errorf("generate report: %w", err))
		return
	}

	path, err := svc.Store.SaveReport(req.VideoID, content)
	if err != nil {
		done(fmt.Errorf("save report: %w", err))
		return
	}
	logf("Saved %s", path)
	status("Done")
	progress(1)
	done(nil)
}

func loadFilesCmd(svc *Services) tea.Cmd {
	return func() tea.Msg {
		entries, err := svc.Store.List()
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("list files: %w", err)}
		}
		return FilesLoadedMsg{Entries: entries}
	}
}

func openFileCmd(svc *Services, entry storage.Entry) tea.Cmd {
	return func() tea.Msg {
		content, err := svc.Store.Read(entry.Path)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("open %s: %w", entry.Name, err)}
		}
		return FileOpenedMsg{Entry: entry, Content: content}
	}
}

func deleteFilesCmd(svc *Services, entries []storage.Entry) tea.Cmd {
	return func() tea.Msg {
		failed := 0
		for _, e := range entries {
			if err := svc.Store.Delete(e.Path); err != nil {
				failed++
			}
		}
		return FileDeletedMsg{Failed: failed}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(_ time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

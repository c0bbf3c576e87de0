package tui

import "github.com/0xti4n/vidio/internal/storage"

// ProgressMsg updates the completion fraction of a running job.
type ProgressMsg struct {
	JobID    string
	Fraction float64
}

// StatusMsg updates the one-line phase description of a running job.
type StatusMsg struct {
	JobID string
	Text  string
}

// LogMsg appends one line to a running job's activity log.
type LogMsg struct {
	JobID string
	Text  string
}

// JobDoneMsg signals a job finished. Err is nil on success and
// context.Canceled when the user backed out.
type JobDoneMsg struct {
	JobID string
	Err   error
}

// FilesLoadedMsg carries the stored file listing for the browser.
type FilesLoadedMsg struct {
	Entries []storage.Entry
}

// FileOpenedMsg carries a stored file's content for the viewer.
type FileOpenedMsg struct {
	Entry   storage.Entry
	Content string
}

// FileDeletedMsg signals the selected files were deleted.
type FileDeletedMsg struct {
	Failed int
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// spinnerTickMsg advances the processing screen spinner.
type spinnerTickMsg struct{}

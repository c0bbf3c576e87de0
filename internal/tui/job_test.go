package tui

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/0xti4n/vidio/internal/config"
	"github.com/0xti4n/vidio/internal/report"
	"github.com/0xti4n/vidio/internal/storage"
	"github.com/0xti4n/vidio/internal/transcript"
)

// captureSender records every message a job emits, in order.
type captureSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *captureSender) Send(msg tea.Msg) {
	c.mu.Lock()
	c.msgs = append(c.msgs, msg)
	c.mu.Unlock()
}

func (c *captureSender) doneMsg(t *testing.T) JobDoneMsg {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.msgs) == 0 {
		t.Fatal("job emitted no messages")
	}
	last, ok := c.msgs[len(c.msgs)-1].(JobDoneMsg)
	if !ok {
		t.Fatalf("last message is %T, want JobDoneMsg", c.msgs[len(c.msgs)-1])
	}
	return last
}

type fakeFetcher struct {
	snippets []transcript.Snippet
	err      error
	calls    int
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoID string, languages []string, preserveFormatting bool) ([]transcript.Snippet, error) {
	f.calls++
	return f.snippets, f.err
}

type fakeGenerator struct {
	out   string
	err   error
	calls int
}

func (g *fakeGenerator) Generate(ctx context.Context, transcriptText string) (string, error) {
	g.calls++
	return g.out, g.err
}

func jobServices(t *testing.T, fetcher transcript.Fetcher, gen report.Generator) *Services {
	t.Helper()
	dir := t.TempDir()
	return &Services{
		Store:   storage.New(filepath.Join(dir, "transcripts"), filepath.Join(dir, "reports")),
		Fetcher: fetcher,
		Reporter: func() (report.Generator, error) {
			if gen == nil {
				return nil, report.ErrNotConfigured
			}
			return gen, nil
		},
		Settings: *config.NewSettings(),
	}
}

var testSnippets = []transcript.Snippet{
	{Start: 0, Duration: 2.5, Text: "hello there"},
	{Start: 2.5, Duration: 3, Text: "and welcome"},
}

func TestRunJobFetchesAndStores(t *testing.T) {
	fetcher := &fakeFetcher{snippets: testSnippets}
	svc := jobServices(t, fetcher, nil)
	sender := &captureSender{}

	runJob(context.Background(), svc, sender, "job-1", Request{
		VideoID:   "abc123",
		Languages: []string{"en"},
	})

	if got := sender.doneMsg(t); got.Err != nil {
		t.Fatalf("job failed: %v", got.Err)
	}
	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls)
	}
	if !svc.Store.TranscriptExists("abc123") {
		t.Error("transcript not stored")
	}

	var final float64
	for _, msg := range sender.msgs {
		if p, ok := msg.(ProgressMsg); ok {
			final = p.Fraction
		}
	}
	if final != 1 {
		t.Errorf("final progress = %v, want 1", final)
	}
}

func TestRunJobSkipsStoredTranscript(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("network should not be hit")}
	svc := jobServices(t, fetcher, nil)
	if _, err := svc.Store.SaveTranscript("abc123", []string{"[0.0-2.5s] hello"}); err != nil {
		t.Fatal(err)
	}
	sender := &captureSender{}

	runJob(context.Background(), svc, sender, "job-1", Request{
		VideoID:   "abc123",
		Languages: []string{"en"},
	})

	if got := sender.doneMsg(t); got.Err != nil {
		t.Fatalf("job failed: %v", got.Err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher called %d times for a stored transcript", fetcher.calls)
	}
}

func TestRunJobGeneratesReport(t *testing.T) {
	gen := &fakeGenerator{out: "# Report\n\nFine video."}
	svc := jobServices(t, &fakeFetcher{snippets: testSnippets}, gen)
	sender := &captureSender{}

	runJob(context.Background(), svc, sender, "job-1", Request{
		VideoID:        "abc123",
		Languages:      []string{"en"},
		GenerateReport: true,
	})

	if got := sender.doneMsg(t); got.Err != nil {
		t.Fatalf("job failed: %v", got.Err)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	content, err := svc.Store.LoadReport("abc123")
	if err != nil {
		t.Fatalf("report not stored: %v", err)
	}
	if content != gen.out {
		t.Errorf("stored report = %q", content)
	}
}

func TestRunJobSkipsStoredReport(t *testing.T) {
	gen := &fakeGenerator{out: "new"}
	svc := jobServices(t, &fakeFetcher{snippets: testSnippets}, gen)
	if _, err := svc.Store.SaveReport("abc123", "old"); err != nil {
		t.Fatal(err)
	}
	sender := &captureSender{}

	runJob(context.Background(), svc, sender, "job-1", Request{
		VideoID:        "abc123",
		Languages:      []string{"en"},
		GenerateReport: true,
	})

	if got := sender.doneMsg(t); got.Err != nil {
		t.Fatalf("job failed: %v", got.Err)
	}
	if gen.calls != 0 {
		t.Error("generator called despite stored report")
	}
	content, _ := svc.Store.LoadReport("abc123")
	if content != "old" {
		t.Errorf("stored report overwritten: %q", content)
	}
}

func TestRunJobReportWithoutAPIKey(t *testing.T) {
	svc := jobServices(t, &fakeFetcher{snippets: testSnippets}, nil)
	sender := &captureSender{}

	runJob(context.Background(), svc, sender, "job-1", Request{
		VideoID:        "abc123",
		Languages:      []string{"en"},
		GenerateReport: true,
	})

	got := sender.doneMsg(t)
	if !errors.Is(got.Err, report.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", got.Err)
	}
	// The transcript stage already succeeded and must stay stored.
	if !svc.Store.TranscriptExists("abc123") {
		t.Error("transcript dropped on report failure")
	}
}

func TestRunJobFetchError(t *testing.T) {
	svc := jobServices(t, &fakeFetcher{err: errors.New("no transcript available")}, nil)
	sender := &captureSender{}

	runJob(context.Background(), svc, sender, "job-1", Request{
		VideoID:   "abc123",
		Languages: []string{"en"},
	})

	got := sender.doneMsg(t)
	if got.Err == nil {
		t.Fatal("fetch error not surfaced")
	}
	if svc.Store.TranscriptExists("abc123") {
		t.Error("failed fetch left a stored transcript")
	}
}

func TestRunJobCancelledBetweenStages(t *testing.T) {
	gen := &fakeGenerator{out: "never"}
	svc := jobServices(t, &fakeFetcher{snippets: testSnippets}, gen)
	if _, err := svc.Store.SaveTranscript("abc123", []string{"[0.0-2.5s] hello"}); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sender := &captureSender{}

	runJob(ctx, svc, sender, "job-1", Request{
		VideoID:        "abc123",
		GenerateReport: true,
	})

	got := sender.doneMsg(t)
	if !errors.Is(got.Err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", got.Err)
	}
	if gen.calls != 0 {
		t.Error("generator ran after cancellation")
	}
}

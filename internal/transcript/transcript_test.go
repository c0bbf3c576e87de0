package transcript

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="2.5">Hello &amp; welcome</text>
  <text start="2.5" dur="3.1">to the &lt;i&gt;show&lt;/i&gt;</text>
  <text start="5.6" dur="1.0">   </text>
</transcript>`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "abc123" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("lang") != "en" {
			w.Write([]byte(`<transcript></transcript>`))
			return
		}
		w.Write([]byte(sampleXML))
	}))
	defer srv.Close()

	f := NewHTTPFetcher()
	f.BaseURL = srv.URL

	snippets, err := f.Fetch(context.Background(), "abc123", []string{"es", "en"}, false)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("got %d snippets, want 2 (blank dropped)", len(snippets))
	}
	if snippets[0].Text != "Hello & welcome" {
		t.Errorf("entity decoding: got %q", snippets[0].Text)
	}
	if snippets[1].Text != "to the show" {
		t.Errorf("markup stripping: got %q", snippets[1].Text)
	}
	if snippets[0].Start != 0 || snippets[0].Duration != 2.5 {
		t.Errorf("timing: got %+v", snippets[0])
	}
}

func TestFetchPreserveFormatting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleXML))
	}))
	defer srv.Close()

	f := NewHTTPFetcher()
	f.BaseURL = srv.URL

	snippets, err := f.Fetch(context.Background(), "abc123", []string{"en"}, true)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if snippets[1].Text != "to the <i>show</i>" {
		t.Errorf("formatting not preserved: got %q", snippets[1].Text)
	}
}

func TestFetchNoTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<transcript></transcript>`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher()
	f.BaseURL = srv.URL

	if _, err := f.Fetch(context.Background(), "abc123", []string{"en", "es"}, false); err == nil {
		t.Fatal("expected error when no language has a transcript")
	}
}

func TestFormatSnippets(t *testing.T) {
	lines := FormatSnippets([]Snippet{
		{Start: 0, Duration: 2.5, Text: "hello"},
		{Start: 2.5, Duration: 3.1, Text: "world"},
	})
	want := []string{"[0.0-2.5s] hello", "[2.5-5.6s] world"}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

// Package transcript fetches YouTube video transcripts.
package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Snippet is one timed caption line.
type Snippet struct {
	Start    float64
	Duration float64
	Text     string
}

// Fetcher retrieves the transcript for a video.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string, preserveFormatting bool) ([]Snippet, error)
}

// HTTPFetcher fetches transcripts from YouTube's timedtext endpoint.
type HTTPFetcher struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPFetcher returns a fetcher with sane timeouts.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: "https://video.google.com/timedtext",
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type timedTextDoc struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedTextDef `xml:"text"`
}

type timedTextDef struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Body     string  `xml:",chardata"`
}

// Fetch tries each preferred language in order and returns the first
// transcript found.
func (f *HTTPFetcher) Fetch(ctx context.Context, videoID string, languages []string, preserveFormatting bool) ([]Snippet, error) {
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	var lastErr error
	for _, lang := range languages {
		snippets, err := f.fetchLang(ctx, videoID, lang, preserveFormatting)
		if err != nil {
			lastErr = err
			continue
		}
		if len(snippets) > 0 {
			return snippets, nil
		}
		lastErr = fmt.Errorf("no transcript available in %q", lang)
	}
	return nil, fmt.Errorf("failed to fetch transcript for %s: %w", videoID, lastErr)
}

func (f *HTTPFetcher) fetchLang(ctx context.Context, videoID, lang string, preserveFormatting bool) ([]Snippet, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", strings.TrimSpace(lang))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, err
	}

	var doc timedTextDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("timedtext: parse response: %w", err)
	}

	snippets := make([]Snippet, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		text := html.UnescapeString(t.Body)
		if !preserveFormatting {
			text = stripMarkup(text)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		snippets = append(snippets, Snippet{
			Start:    t.Start,
			Duration: t.Duration,
			Text:     text,
		})
	}
	return snippets, nil
}

var markupRe = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)

func stripMarkup(s string) string {
	return markupRe.ReplaceAllString(s, "")
}

// FormatSnippets renders snippets as the on-disk transcript line format,
// e.g. "[12.3-15.6s] hello".
func FormatSnippets(snippets []Snippet) []string {
	lines := make([]string, 0, len(snippets))
	for _, s := range snippets {
		lines = append(lines, fmt.Sprintf("[%.1f-%.1fs] %s", s.Start, s.Start+s.Duration, s.Text))
	}
	return lines
}

// Text joins snippet texts into one plain-text blob, used as report input.
func Text(snippets []Snippet) string {
	parts := make([]string, 0, len(snippets))
	for _, s := range snippets {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

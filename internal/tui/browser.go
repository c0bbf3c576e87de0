package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/0xti4n/vidio/internal/scroll"
	"github.com/0xti4n/vidio/internal/storage"
)

// Browser filter modes.
const (
	filterAll = iota
	filterTranscripts
	filterReports
)

// Browser lists stored transcripts and reports with filtering, search, and
// multi-select.
type Browser struct {
	entries  []storage.Entry // full listing
	visible  []storage.Entry // after filter + search
	window   *scroll.Window
	filter   int
	search   textinput.Model
	searchOn bool
	width    int
	height   int
}

// NewBrowser creates an empty browser.
func NewBrowser() *Browser {
	si := textinput.New()
	si.Placeholder = "search"
	si.CharLimit = 100
	si.Prompt = "/"
	return &Browser{
		window: scroll.New(0, 10),
		search: si,
	}
}

// SetEntries replaces the listing, preserving filter, search, and the
// user's place where possible. Marks don't survive: indices into the old
// listing mean nothing in the new one.
func (b *Browser) SetEntries(entries []storage.Entry) {
	b.entries = entries
	b.applyFilter()
}

// SetFilter switches the kind filter.
func (b *Browser) SetFilter(filter int) {
	b.filter = filter
	b.applyFilter()
}

// Filter returns the active kind filter.
func (b *Browser) Filter() int { return b.filter }

func (b *Browser) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(b.search.Value()))
	b.visible = b.visible[:0]
	for _, e := range b.entries {
		switch b.filter {
		case filterTranscripts:
			if e.Kind != storage.KindTranscript {
				continue
			}
		case filterReports:
			if e.Kind != storage.KindReport {
				continue
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		b.visible = append(b.visible, e)
	}
	b.window.Replace(len(b.visible))
}

// Selected returns the entry under the cursor, or nil when empty.
func (b *Browser) Selected() *storage.Entry {
	i := b.window.Selected()
	if i < 0 {
		return nil
	}
	return &b.visible[i]
}

// MarkedOrSelected returns the marked entries, or just the selection when
// nothing is marked.
func (b *Browser) MarkedOrSelected() []storage.Entry {
	idxs := b.window.MarkedIndices()
	if len(idxs) == 0 {
		if sel := b.Selected(); sel != nil {
			return []storage.Entry{*sel}
		}
		return nil
	}
	out := make([]storage.Entry, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, b.visible[i])
	}
	return out
}

// Window exposes the selection window for key handling.
func (b *Browser) Window() *scroll.Window { return b.window }

// StartSearch opens the search input.
func (b *Browser) StartSearch() {
	b.searchOn = true
	b.search.Focus()
}

// EndSearch closes the search input; keep controls whether the query stays
// applied.
func (b *Browser) EndSearch(keep bool) {
	b.searchOn = false
	b.search.Blur()
	if !keep {
		b.search.SetValue("")
	}
	b.applyFilter()
}

// Searching reports whether the search input is capturing keys.
func (b *Browser) Searching() bool { return b.searchOn }

// SearchInput returns the search model for update forwarding.
func (b *Browser) SearchInput() *textinput.Model { return &b.search }

// Refilter reapplies filter and search after the query changed.
func (b *Browser) Refilter() { b.applyFilter() }

// SetSize resizes the browser viewport.
func (b *Browser) SetSize(width, height int) {
	b.width = width
	b.height = height
	rows := height - 4 // title, filter bar, search/footer rows
	if rows < 1 {
		rows = 1
	}
	b.window.SetViewport(rows)
}

// View renders the browser.
func (b *Browser) View() string {
	filterName := func(f int, name string) string {
		if b.filter == f {
			return titleStyle.Render(name)
		}
		return hintStyle.Render(name)
	}
	header := fmt.Sprintf("%s   %s | %s | %s",
		titleStyle.Render("Files"),
		filterName(filterAll, "1:All"),
		filterName(filterTranscripts, "2:Transcripts"),
		filterName(filterReports, "3:Reports"),
	)

	parts := []string{header}
	if b.searchOn || b.search.Value() != "" {
		parts = append(parts, b.search.View())
	} else {
		parts = append(parts, "")
	}

	if len(b.visible) == 0 {
		parts = append(parts, "", hintStyle.Render("No files. Press Esc to go back."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	start, end := b.window.Visible()
	for i := start; i < end; i++ {
		parts = append(parts, b.renderEntry(i))
	}

	parts = append(parts, "",
		hintStyle.Render(fmt.Sprintf("%d/%d", b.window.Selected()+1, len(b.visible))))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (b *Browser) renderEntry(i int) string {
	e := b.visible[i]

	mark := "  "
	if b.window.Marked(i) {
		mark = markStyle.Render("✓ ")
	}

	var kindStyle lipgloss.Style
	if e.Kind == storage.KindTranscript {
		kindStyle = entryTranscriptStyle
	} else {
		kindStyle = entryReportStyle
	}
	kind := kindStyle.Render(fmt.Sprintf("%-10s", e.Kind))

	line := fmt.Sprintf("%s%s %s  %s  %s",
		mark, kind, e.Modified.Format("2006-01-02 15:04"),
		humanSize(e.Size), e.Name)

	maxWidth := b.width - 2
	if maxWidth > 0 {
		line = ansi.Truncate(line, maxWidth, "…")
	}
	if i == b.window.Selected() {
		return selectedItemStyle.Render(line)
	}
	return line
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}

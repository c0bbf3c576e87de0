package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/0xti4n/vidio/internal/markdown"
	"github.com/0xti4n/vidio/internal/storage"
)

// Viewer displays a stored file with scrolling. Reports are laid out as
// markdown; transcripts as word-wrapped plain text. Renders are cached per
// width, so resizes re-render but scrolling doesn't.
type Viewer struct {
	entry   storage.Entry
	content string

	lines      []markdown.Line
	renderedAt int // width the cache was built for
	offset     int
	width      int
	height     int
}

// NewViewer creates an empty viewer.
func NewViewer() *Viewer {
	return &Viewer{renderedAt: -1}
}

// Open loads a file into the viewer and resets scroll.
func (v *Viewer) Open(entry storage.Entry, content string) {
	v.entry = entry
	v.content = content
	v.offset = 0
	v.renderedAt = -1
}

// Entry returns the open file's entry.
func (v *Viewer) Entry() storage.Entry { return v.entry }

// SetSize resizes the viewer, re-rendering if the width changed and
// re-clamping the scroll offset.
func (v *Viewer) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.ensureRendered()
	v.clampOffset()
}

func (v *Viewer) ensureRendered() {
	contentWidth := v.width - 2
	if contentWidth < 1 {
		contentWidth = 1
	}
	if v.renderedAt == contentWidth {
		return
	}
	v.renderedAt = contentWidth

	if v.entry.Kind == storage.KindReport {
		v.lines = markdown.Render(v.content, contentWidth)
		return
	}
	v.lines = v.lines[:0]
	for _, raw := range strings.Split(v.content, "\n") {
		if raw == "" {
			v.lines = append(v.lines, markdown.Line{})
			continue
		}
		v.lines = append(v.lines, markdown.PlainWrap(raw, contentWidth)...)
	}
}

func (v *Viewer) pageSize() int {
	h := v.height - 3 // title, blank, scroll indicator
	if h < 1 {
		h = 1
	}
	return h
}

func (v *Viewer) maxOffset() int {
	max := len(v.lines) - v.pageSize()
	if max < 0 {
		max = 0
	}
	return max
}

func (v *Viewer) clampOffset() {
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// ScrollUp moves the view up n lines.
func (v *Viewer) ScrollUp(n int) {
	v.offset -= n
	v.clampOffset()
}

// ScrollDown moves the view down n lines.
func (v *Viewer) ScrollDown(n int) {
	v.offset += n
	v.clampOffset()
}

// PageUp moves up one page.
func (v *Viewer) PageUp() { v.ScrollUp(v.pageSize()) }

// PageDown moves down one page.
func (v *Viewer) PageDown() { v.ScrollDown(v.pageSize()) }

// Top jumps to the start.
func (v *Viewer) Top() { v.offset = 0 }

// Bottom jumps to the end.
func (v *Viewer) Bottom() { v.offset = v.maxOffset() }

// Offset returns the current scroll offset.
func (v *Viewer) Offset() int { return v.offset }

// View renders the viewer.
func (v *Viewer) View() string {
	v.ensureRendered()
	v.clampOffset()

	parts := []string{viewerTitleStyle.Render(v.entry.Name), ""}

	end := v.offset + v.pageSize()
	if end > len(v.lines) {
		end = len(v.lines)
	}
	for _, line := range v.lines[v.offset:end] {
		parts = append(parts, renderLine(line))
	}
	for i := end - v.offset; i < v.pageSize(); i++ {
		parts = append(parts, "")
	}

	parts = append(parts, scrollInfoStyle.Render(v.scrollInfo()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v *Viewer) scrollInfo() string {
	n := len(v.lines)
	if n == 0 {
		return "empty"
	}
	end := v.offset + v.pageSize()
	if end > n {
		end = n
	}
	return fmt.Sprintf("Line %d-%d of %d", v.offset+1, end, n)
}

// renderLine maps the layout engine's styled spans onto lipgloss.
func renderLine(line markdown.Line) string {
	var b strings.Builder
	for _, span := range line {
		b.WriteString(spanStyle(span.Style).Render(span.Text))
	}
	return b.String()
}

func spanStyle(s markdown.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Strikethrough {
		st = st.Strikethrough(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	switch s.Color {
	case markdown.ColorCyan:
		st = st.Foreground(colorCyan)
	case markdown.ColorYellow:
		st = st.Foreground(colorYellow)
	case markdown.ColorBlue:
		st = st.Foreground(colorBlue)
	case markdown.ColorGray:
		st = st.Foreground(colorGray)
	}
	return st
}

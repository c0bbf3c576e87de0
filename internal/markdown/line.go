// Package markdown renders markdown text into styled, width-wrapped
// terminal display lines. Rendering is pure and total: malformed input
// degrades to literal text, it never fails.
package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Color is a small semantic palette tag; mapping to concrete terminal
// colors is the presenter's job.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorBlue
	ColorGray
)

// Style is the set of modifiers applied to a span.
type Style struct {
	Bold          bool
	Italic        bool
	Strikethrough bool
	Underline     bool
	Reverse       bool
	Color         Color
}

// Span is a run of text with a single style.
type Span struct {
	Text  string
	Style Style
}

// Line is one physical terminal row after wrapping.
type Line []Span

// String returns the line's text without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width returns the line's display width in terminal columns.
func (l Line) Width() int {
	w := 0
	for _, s := range l {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}

func plainLine(text string, style Style) Line {
	return Line{Span{Text: text, Style: style}}
}

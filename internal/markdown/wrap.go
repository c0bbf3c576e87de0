package markdown

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// wrapText greedily word-wraps s to the given display width. Words wider
// than the width are split mid-word so no output line exceeds it.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var out []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		if line.Len() > 0 {
			out = append(out, line.String())
			line.Reset()
			lineWidth = 0
		}
	}

	for _, word := range words {
		ww := runewidth.StringWidth(word)
		sep := 0
		if lineWidth > 0 {
			sep = 1
		}

		if lineWidth+sep+ww <= width {
			if sep == 1 {
				line.WriteByte(' ')
			}
			line.WriteString(word)
			lineWidth += sep + ww
			continue
		}

		flush()
		if ww <= width {
			line.WriteString(word)
			lineWidth = ww
			continue
		}

		// Word wider than the whole line: hard split. All segments but
		// the last become full lines; the tail stays open for more words.
		segs := splitWord(word, width)
		for i, seg := range segs {
			if i < len(segs)-1 {
				out = append(out, seg)
				continue
			}
			line.WriteString(seg)
			lineWidth = runewidth.StringWidth(seg)
		}
	}
	flush()
	return out
}

// PlainWrap word-wraps unstyled text into display lines, for callers that
// show raw text through the same presentation path as rendered markdown.
func PlainWrap(s string, width int) []Line {
	wrapped := wrapText(s, width)
	out := make([]Line, 0, len(wrapped))
	for _, w := range wrapped {
		out = append(out, plainLine(w, Style{}))
	}
	return out
}

// splitWord breaks a single word into segments no wider than width. A rune
// wider than the whole width still gets its own segment.
func splitWord(word string, width int) []string {
	var segs []string
	var seg strings.Builder
	segWidth := 0

	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if segWidth > 0 && segWidth+rw > width {
			segs = append(segs, seg.String())
			seg.Reset()
			segWidth = 0
		}
		seg.WriteRune(r)
		segWidth += rw
	}
	if seg.Len() > 0 {
		segs = append(segs, seg.String())
	}
	return segs
}

// atom is one unbreakable word. Style boundaries can fall mid-word
// ("wor**ld**"), so an atom may carry several spans.
type atom []Span

func (a atom) width() int {
	w := 0
	for _, sp := range a {
		w += runewidth.StringWidth(sp.Text)
	}
	return w
}

// tokenize splits a span sequence into atoms on whitespace, preserving
// styles across the split.
func tokenize(spans []Span) []atom {
	var atoms []atom
	var cur atom
	var piece strings.Builder

	for _, sp := range spans {
		closePiece := func() {
			if piece.Len() > 0 {
				cur = append(cur, Span{Text: piece.String(), Style: sp.Style})
				piece.Reset()
			}
		}
		for _, r := range sp.Text {
			if unicode.IsSpace(r) {
				closePiece()
				if len(cur) > 0 {
					atoms = append(atoms, cur)
					cur = nil
				}
				continue
			}
			piece.WriteRune(r)
		}
		closePiece()
	}
	if len(cur) > 0 {
		atoms = append(atoms, cur)
	}
	return atoms
}

// wrapSpans greedily wraps styled spans to the given width, joining atoms
// with single unstyled spaces. Atoms wider than the width are hard-split.
func wrapSpans(spans []Span, width int) []Line {
	if width < 1 {
		width = 1
	}
	atoms := tokenize(spans)
	if len(atoms) == 0 {
		return nil
	}

	var out []Line
	var cur Line
	curWidth := 0

	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
			cur = nil
			curWidth = 0
		}
	}

	for _, a := range atoms {
		aw := a.width()
		sep := 0
		if curWidth > 0 {
			sep = 1
		}

		if curWidth+sep+aw <= width {
			if sep == 1 {
				cur = appendSpan(cur, Span{Text: " "})
			}
			for _, sp := range a {
				cur = appendSpan(cur, sp)
			}
			curWidth += sep + aw
			continue
		}

		flush()
		if aw <= width {
			for _, sp := range a {
				cur = appendSpan(cur, sp)
			}
			curWidth = aw
			continue
		}

		pieces := splitAtom(a, width)
		for i, p := range pieces {
			if i < len(pieces)-1 {
				out = append(out, p)
				continue
			}
			cur = p
			curWidth = p.Width()
		}
	}
	flush()
	return out
}

func splitAtom(a atom, width int) []Line {
	var out []Line
	var cur Line
	curWidth := 0

	for _, sp := range a {
		var piece strings.Builder
		for _, r := range sp.Text {
			rw := runewidth.RuneWidth(r)
			if curWidth > 0 && curWidth+rw > width {
				if piece.Len() > 0 {
					cur = appendSpan(cur, Span{Text: piece.String(), Style: sp.Style})
					piece.Reset()
				}
				out = append(out, cur)
				cur = nil
				curWidth = 0
			}
			piece.WriteRune(r)
			curWidth += rw
		}
		if piece.Len() > 0 {
			cur = appendSpan(cur, Span{Text: piece.String(), Style: sp.Style})
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// appendSpan adds a span to the line, merging with the tail when the styles
// match so lines stay compact.
func appendSpan(l Line, sp Span) Line {
	if sp.Text == "" {
		return l
	}
	if n := len(l); n > 0 && l[n-1].Style == sp.Style {
		l[n-1].Text += sp.Text
		return l
	}
	return append(l, sp)
}

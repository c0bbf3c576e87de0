package markdown

import (
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
	),
)

var codeStyle = Style{Reverse: true, Color: ColorYellow}

// Render lays out markdown source for a terminal of the given width. Widths
// below 1 are treated as 1; every returned line fits within width except
// tables whose columns have all hit their minimum.
func Render(src string, width int) []Line {
	if width < 1 {
		width = 1
	}
	source := []byte(html.UnescapeString(src))
	doc := md.Parser().Parse(text.NewReader(source))

	r := &renderer{source: source, width: width}
	_ = ast.Walk(doc, r.walk)
	r.endRun()
	r.flushPending()
	return r.lines
}

// renderer carries walk state. Inline text accumulates in buf under the
// current style stack; style transitions move it into pending as a styled
// span, and block boundaries wrap pending into display lines.
type renderer struct {
	source []byte
	width  int
	lines  []Line

	buf     strings.Builder
	pending []Span
	mods    []Style

	table    *tableModel
	tableRow []string
	inHead   bool
}

func (r *renderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Text:
		if entering {
			r.buf.Write(node.Segment.Value(r.source))
			if node.HardLineBreak() {
				r.endRun()
				r.flushPending()
			} else if node.SoftLineBreak() {
				r.buf.WriteByte(' ')
			}
		}

	case *ast.Emphasis:
		if entering {
			if node.Level >= 2 {
				r.push(Style{Bold: true})
			} else {
				r.push(Style{Italic: true})
			}
		} else {
			r.pop()
		}

	case *east.Strikethrough:
		if entering {
			r.push(Style{Strikethrough: true})
		} else {
			r.pop()
		}

	case *ast.Link:
		if entering {
			r.push(Style{Underline: true})
		} else {
			r.pop()
		}

	case *ast.AutoLink:
		if entering {
			r.push(Style{Underline: true})
			r.buf.Write(node.URL(r.source))
			r.pop()
		}
		return ast.WalkSkipChildren, nil

	case *ast.Heading:
		if !entering {
			style := Style{Bold: true, Color: ColorCyan}
			if node.Level <= 2 {
				style.Underline = true
			}
			r.endRun()
			for i := range r.pending {
				r.pending[i].Style = mergeStyle(r.pending[i].Style, style)
			}
			r.flushPending()
			r.blank()
		}

	case *ast.Paragraph:
		if !entering {
			r.endRun()
			r.flushPending()
			if !r.inTable() {
				r.blank()
			}
		}

	case *ast.TextBlock:
		// Tight list items wrap their text in a TextBlock instead of a
		// Paragraph; flush without the trailing blank line.
		if !entering {
			r.endRun()
			r.flushPending()
		}

	case *ast.Blockquote:
		if !entering {
			r.endRun()
			r.flushPending()
			r.blank()
		}

	case *ast.ListItem:
		if entering {
			r.buf.WriteString("• ")
		}

	case *ast.List:
		if !entering {
			r.blank()
		}

	case *east.TaskCheckBox:
		if entering {
			if node.IsChecked {
				r.buf.WriteString("[x] ")
			} else {
				r.buf.WriteString("[ ] ")
			}
		}

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					code.Write(t.Segment.Value(r.source))
				}
			}
			r.endRun()
			r.pending = append(r.pending, Span{Text: code.String(), Style: codeStyle})
		}
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock:
		if entering {
			r.renderCodeBlock(node.Lines())
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			r.renderCodeBlock(node.Lines())
		}
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		if entering {
			r.endRun()
			r.flushPending()
			r.lines = append(r.lines, plainLine(strings.Repeat("─", r.width), Style{Color: ColorGray}))
			r.blank()
		}

	case *east.Table:
		if entering {
			r.endRun()
			r.flushPending()
			r.table = &tableModel{}
		} else {
			r.lines = append(r.lines, r.table.layout(r.width)...)
			r.blank()
			r.table = nil
		}

	case *east.TableHeader:
		r.inHead = entering

	case *east.TableRow:
		if entering {
			r.tableRow = nil
		} else if r.table != nil {
			r.table.rows = append(r.table.rows, r.tableRow)
			r.tableRow = nil
		}

	case *east.TableCell:
		if !entering {
			cell := strings.TrimSpace(r.cellText())
			if r.inHead && r.table != nil {
				r.table.headers = append(r.table.headers, cell)
			} else {
				r.tableRow = append(r.tableRow, cell)
			}
		}
	}
	return ast.WalkContinue, nil
}

func (r *renderer) inTable() bool { return r.table != nil }

func (r *renderer) push(s Style) {
	r.endRun()
	r.mods = append(r.mods, s)
}

func (r *renderer) pop() {
	r.endRun()
	if len(r.mods) > 0 {
		r.mods = r.mods[:len(r.mods)-1]
	}
}

// endRun moves buffered text into pending under the active style stack.
func (r *renderer) endRun() {
	if r.buf.Len() == 0 {
		return
	}
	r.pending = append(r.pending, Span{Text: r.buf.String(), Style: r.styleFromStack()})
	r.buf.Reset()
}

// styleFromStack merges the active inline modifiers, innermost last.
func (r *renderer) styleFromStack() Style {
	var s Style
	for _, m := range r.mods {
		s = mergeStyle(s, m)
	}
	return s
}

func mergeStyle(base, over Style) Style {
	if over.Bold {
		base.Bold = true
	}
	if over.Italic {
		base.Italic = true
	}
	if over.Strikethrough {
		base.Strikethrough = true
	}
	if over.Underline {
		base.Underline = true
		if base.Color == ColorNone {
			base.Color = ColorBlue
		}
	}
	if over.Reverse {
		base.Reverse = true
	}
	if over.Color != ColorNone {
		base.Color = over.Color
	}
	return base
}

// flushPending wraps the pending spans into display lines. Inside a table
// the spans stay put for the cell collector.
func (r *renderer) flushPending() {
	if r.inTable() {
		return
	}
	spans := r.pending
	r.pending = nil
	r.lines = append(r.lines, wrapSpans(spans, r.width)...)
}

// cellText drains pending and buf as plain text for one table cell.
func (r *renderer) cellText() string {
	var b strings.Builder
	for _, sp := range r.pending {
		b.WriteString(sp.Text)
	}
	b.WriteString(r.buf.String())
	r.pending = nil
	r.buf.Reset()
	return b.String()
}

func (r *renderer) renderCodeBlock(segments *text.Segments) {
	r.endRun()
	r.flushPending()
	style := Style{Color: ColorYellow}
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		raw := strings.TrimRight(string(seg.Value(r.source)), "\n")
		if raw == "" {
			r.lines = append(r.lines, Line{})
			continue
		}
		// Hard-split rather than word-wrap so indentation survives.
		for _, piece := range splitWord(raw, r.width) {
			r.lines = append(r.lines, plainLine(piece, style))
		}
	}
	r.blank()
}

// blank appends an empty separator line, collapsing runs of blanks.
func (r *renderer) blank() {
	if len(r.lines) == 0 {
		return
	}
	if len(r.lines[len(r.lines)-1]) == 0 {
		return
	}
	r.lines = append(r.lines, Line{})
}

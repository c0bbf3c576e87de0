package markdown

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth is the floor a column can be shrunk to when the table is
// wider than the target width.
const minColumnWidth = 3

// tableModel accumulates raw cell strings while the renderer is inside a
// table block.
type tableModel struct {
	headers []string
	rows    [][]string
}

// layout renders the accumulated table as bordered display lines.
func (t *tableModel) layout(width int) []Line {
	cols := len(t.headers)
	for _, r := range t.rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	if cols == 0 {
		return nil
	}

	headers := normalizeRow(t.headers, cols)
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		rows[i] = normalizeRow(r, cols)
	}

	widths := naturalWidths(headers, rows, cols)
	shrinkToFit(widths, width)

	borderStyle := Style{Color: ColorGray}
	top := borderLine('┌', '┬', '┐', widths)
	sep := borderLine('├', '┼', '┤', widths)
	bottom := borderLine('└', '┴', '┘', widths)

	var out []Line
	out = append(out, plainLine(top, borderStyle))

	for _, phys := range wrapCells(headers, widths) {
		out = append(out, renderRow(phys, widths, true))
	}
	out = append(out, plainLine(sep, borderStyle))

	for _, row := range rows {
		for _, phys := range wrapCells(row, widths) {
			out = append(out, renderRow(phys, widths, false))
		}
		out = append(out, plainLine(sep, borderStyle))
	}

	// The final separator doubles as the closing border.
	out[len(out)-1] = plainLine(bottom, borderStyle)
	return out
}

func normalizeRow(row []string, cols int) []string {
	out := make([]string, cols)
	copy(out, row)
	return out
}

func naturalWidths(headers []string, rows [][]string, cols int) []int {
	widths := make([]int, cols)
	for i, h := range headers {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// shrinkToFit reduces column widths, widest first, until the table fits the
// target width or every column is at its floor. A table that still does not
// fit overflows; that is accepted degradation, not an error.
func shrinkToFit(widths []int, target int) {
	cols := len(widths)
	content := 0
	for _, w := range widths {
		content += w
	}
	total := content + 2*cols + cols + 1
	if total <= target {
		return
	}
	over := total - target

	idxs := make([]int, cols)
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return widths[idxs[a]] > widths[idxs[b]]
	})

	for _, i := range idxs {
		if over == 0 {
			break
		}
		if widths[i] > minColumnWidth {
			reducible := widths[i] - minColumnWidth
			reduce := reducible
			if reduce > over {
				reduce = over
			}
			widths[i] -= reduce
			over -= reduce
		}
	}
}

// wrapCells word-wraps each cell to its column width and returns the
// resulting physical sub-rows for one logical row.
func wrapCells(cells []string, widths []int) [][]string {
	cols := len(widths)
	wrapped := make([][]string, cols)
	maxLines := 1
	for i, w := range widths {
		if w < 1 {
			w = 1
		}
		wrapped[i] = wrapText(cells[i], w)
		if len(wrapped[i]) > maxLines {
			maxLines = len(wrapped[i])
		}
	}

	out := make([][]string, maxLines)
	for li := 0; li < maxLines; li++ {
		row := make([]string, cols)
		for ci := 0; ci < cols; ci++ {
			if li < len(wrapped[ci]) {
				row[ci] = wrapped[ci][li]
			}
		}
		out[li] = row
	}
	return out
}

func renderRow(cells []string, widths []int, header bool) Line {
	borderStyle := Style{Color: ColorGray}
	cellStyle := Style{}
	if header {
		cellStyle = Style{Bold: true, Color: ColorCyan}
	}

	line := Line{Span{Text: "│", Style: borderStyle}}
	for i, cell := range cells {
		var content string
		if header {
			content = centerText(cell, widths[i])
		} else {
			content = padRight(cell, widths[i])
		}
		line = append(line, Span{Text: " " + content + " ", Style: cellStyle})
		line = append(line, Span{Text: "│", Style: borderStyle})
	}
	return line
}

func borderLine(left, mid, right rune, widths []int) string {
	var b strings.Builder
	b.WriteRune(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
		if i+1 < len(widths) {
			b.WriteRune(mid)
		}
	}
	b.WriteRune(right)
	return b.String()
}

func centerText(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

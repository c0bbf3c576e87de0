package markdown

import (
	"strings"
	"testing"
)

func TestTableBorders(t *testing.T) {
	src := "| A | B |\n|---|---|\n| one | two |\n| three | four |\n"
	lines := Render(src, 80)

	var texts []string
	for _, ln := range lines {
		if s := ln.String(); s != "" {
			texts = append(texts, s)
		}
	}
	if len(texts) != 7 {
		t.Fatalf("got %d table lines, want 7:\n%s", len(texts), strings.Join(texts, "\n"))
	}

	if !strings.HasPrefix(texts[0], "┌") || !strings.HasSuffix(texts[0], "┐") {
		t.Errorf("top border = %q", texts[0])
	}
	if !strings.HasPrefix(texts[2], "├") || !strings.HasSuffix(texts[2], "┤") {
		t.Errorf("header separator = %q", texts[2])
	}
	// Separator after every body row; the last one becomes the bottom
	// border.
	if !strings.HasPrefix(texts[4], "├") {
		t.Errorf("row separator = %q", texts[4])
	}
	if !strings.HasPrefix(texts[6], "└") || !strings.HasSuffix(texts[6], "┘") {
		t.Errorf("bottom border = %q", texts[6])
	}
	if !strings.Contains(texts[0], "┬") || !strings.Contains(texts[6], "┴") {
		t.Error("column junctions missing from borders")
	}
}

func TestTableHeaderStyle(t *testing.T) {
	src := "| Name |\n|------|\n| Ada |\n"
	lines := Render(src, 80)

	var header Line
	for _, ln := range lines {
		if strings.Contains(ln.String(), "Name") {
			header = ln
			break
		}
	}
	if header == nil {
		t.Fatal("header row not rendered")
	}
	for _, sp := range header {
		if strings.Contains(sp.Text, "Name") {
			if !sp.Style.Bold || sp.Style.Color != ColorCyan {
				t.Errorf("header cell style = %+v, want bold cyan", sp.Style)
			}
		}
	}
}

func TestTableNaturalWidthWhenRoomy(t *testing.T) {
	src := "| A | B |\n|---|---|\n| aaaa | bb |\n"
	lines := Render(src, 80)
	// Content widths 4 and 2, so the frame is 4+2 + padding 4 + borders 3.
	wantWidth := 4 + 2 + 4 + 3
	for _, ln := range lines {
		if s := ln.String(); strings.HasPrefix(s, "┌") {
			if ln.Width() != wantWidth {
				t.Errorf("table width = %d, want %d", ln.Width(), wantWidth)
			}
		}
	}
}

func TestTableShrinksToFit(t *testing.T) {
	long := strings.Repeat("word ", 12)
	src := "| Short | Long |\n|---|---|\n| x | " + long + " |\n"
	for _, width := range []int{30, 20, 15} {
		lines := Render(src, width)
		for _, ln := range lines {
			if ln.Width() > width {
				t.Errorf("width %d: table line %q is %d wide", width, ln.String(), ln.Width())
			}
		}
	}
}

func TestTableColumnFloor(t *testing.T) {
	widths := []int{40, 40, 40}
	shrinkToFit(widths, 10)
	for i, w := range widths {
		if w != minColumnWidth {
			t.Errorf("column %d = %d, want floor %d", i, w, minColumnWidth)
		}
	}
}

func TestTableShrinkWidestFirst(t *testing.T) {
	widths := []int{4, 20}
	// Frame: content + 2*2 padding + 3 borders = content + 7.
	shrinkToFit(widths, 26)
	if widths[0] != 4 {
		t.Errorf("narrow column shrunk to %d, want untouched 4", widths[0])
	}
	if widths[1] != 15 {
		t.Errorf("wide column = %d, want 15", widths[1])
	}
}

func TestTableRaggedRows(t *testing.T) {
	tm := &tableModel{
		headers: []string{"A"},
		rows:    [][]string{{"1", "2", "3"}, {"x"}},
	}
	lines := tm.layout(80)
	if len(lines) == 0 {
		t.Fatal("no output for ragged table")
	}
	// Every bordered row must carry the full column count.
	for _, ln := range lines {
		s := ln.String()
		if strings.HasPrefix(s, "│") && strings.Count(s, "│") != 4 {
			t.Errorf("row %q has %d column borders, want 4", s, strings.Count(s, "│"))
		}
	}
}

func TestTableCellWrapping(t *testing.T) {
	tm := &tableModel{
		headers: []string{"H"},
		rows:    [][]string{{"several words that must wrap"}},
	}
	widths := []int{8}
	phys := wrapCells([]string{"several words that must wrap"}, widths)
	if len(phys) < 2 {
		t.Fatalf("cell did not wrap: %v", phys)
	}
	for _, row := range phys {
		for _, cell := range row {
			if got := cellDisplayWidth(cell); got > 8 {
				t.Errorf("wrapped cell %q is %d wide", cell, got)
			}
		}
	}
	_ = tm
}

func cellDisplayWidth(s string) int {
	return plainLine(s, Style{}).Width()
}

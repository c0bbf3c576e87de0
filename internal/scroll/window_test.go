package scroll

import (
	"reflect"
	"testing"
)

// check asserts the structural invariants that must hold after any
// operation: selection in range (or -1 when empty), offset in range, and
// the selection inside the visible window.
func check(t *testing.T, w *Window) {
	t.Helper()
	if w.Len() == 0 {
		if w.Selected() != -1 {
			t.Fatalf("empty window Selected() = %d, want -1", w.Selected())
		}
		return
	}
	sel := w.Selected()
	if sel < 0 || sel >= w.Len() {
		t.Fatalf("selection %d out of range [0,%d)", sel, w.Len())
	}
	start, end := w.Visible()
	if sel < start || sel >= end {
		t.Fatalf("selection %d outside visible [%d,%d)", sel, start, end)
	}
	if w.Offset() < 0 {
		t.Fatalf("negative offset %d", w.Offset())
	}
}

func TestSelectionWraps(t *testing.T) {
	w := New(3, 5)
	w.SelectPrev()
	check(t, w)
	if w.Selected() != 2 {
		t.Errorf("prev from 0 = %d, want 2", w.Selected())
	}
	w.SelectNext()
	check(t, w)
	if w.Selected() != 0 {
		t.Errorf("next from last = %d, want 0", w.Selected())
	}
}

func TestViewportFollowsSelection(t *testing.T) {
	w := New(10, 3)
	for i := 0; i < 5; i++ {
		w.SelectNext()
		check(t, w)
	}
	if w.Selected() != 5 {
		t.Fatalf("selected = %d, want 5", w.Selected())
	}
	if w.Offset() != 3 {
		t.Errorf("offset = %d, want 3", w.Offset())
	}

	// Wrapping back to the top scrolls the viewport home.
	for i := 0; i < 5; i++ {
		w.SelectNext()
		check(t, w)
	}
	if w.Selected() != 0 || w.Offset() != 0 {
		t.Errorf("after wrap: selected %d offset %d, want 0 0", w.Selected(), w.Offset())
	}
}

func TestPaging(t *testing.T) {
	w := New(10, 4)
	w.PageDown()
	check(t, w)
	if w.Selected() != 4 {
		t.Errorf("page down = %d, want 4", w.Selected())
	}
	w.PageDown()
	w.PageDown()
	check(t, w)
	if w.Selected() != 9 {
		t.Errorf("page down past end = %d, want 9", w.Selected())
	}
	w.PageUp()
	w.PageUp()
	w.PageUp()
	check(t, w)
	if w.Selected() != 0 {
		t.Errorf("page up past start = %d, want 0", w.Selected())
	}
}

func TestHomeEnd(t *testing.T) {
	w := New(20, 5)
	w.End()
	check(t, w)
	if w.Selected() != 19 {
		t.Errorf("End = %d, want 19", w.Selected())
	}
	if w.Offset() != 15 {
		t.Errorf("offset after End = %d, want 15", w.Offset())
	}
	w.Home()
	check(t, w)
	if w.Selected() != 0 || w.Offset() != 0 {
		t.Errorf("Home: selected %d offset %d", w.Selected(), w.Offset())
	}
}

func TestReplaceShrinksSelection(t *testing.T) {
	w := New(10, 5)
	w.End()
	if w.Selected() != 9 {
		t.Fatalf("selected = %d", w.Selected())
	}
	// List shrinks under the cursor: selection clamps to the new end.
	w.Replace(3)
	check(t, w)
	if w.Selected() != 2 {
		t.Errorf("selected after shrink = %d, want 2", w.Selected())
	}
	w.Replace(0)
	check(t, w)
	w.Replace(4)
	check(t, w)
	if w.Selected() != 0 {
		t.Errorf("selected after regrow = %d, want 0", w.Selected())
	}
}

func TestMarks(t *testing.T) {
	w := New(5, 5)
	w.ToggleMark()
	w.SelectNext()
	w.SelectNext()
	w.ToggleMark()
	if got := w.MarkedIndices(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("marked = %v, want [0 2]", got)
	}
	w.ToggleMark()
	if got := w.MarkedIndices(); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("after untoggle = %v, want [0]", got)
	}

	// Replace clears all marks; the indices no longer name the same items.
	w.ToggleMark()
	w.End()
	w.ToggleMark()
	w.Replace(3)
	if got := w.MarkedIndices(); len(got) != 0 {
		t.Errorf("marked after replace = %v, want none", got)
	}

	w.ToggleMark()
	w.ClearMarks()
	if got := w.MarkedIndices(); len(got) != 0 {
		t.Errorf("marked after clear = %v", got)
	}
}

func TestEmptyWindowIsInert(t *testing.T) {
	w := New(0, 5)
	w.SelectNext()
	w.SelectPrev()
	w.PageDown()
	w.PageUp()
	w.Home()
	w.End()
	w.ToggleMark()
	check(t, w)
	if len(w.MarkedIndices()) != 0 {
		t.Error("empty window accepted a mark")
	}
}

func TestViewportResize(t *testing.T) {
	w := New(10, 5)
	w.End()
	w.SetViewport(2)
	check(t, w)
	w.SetViewport(50)
	check(t, w)
	if w.Offset() != 0 {
		t.Errorf("offset with oversized viewport = %d, want 0", w.Offset())
	}
	w.SetViewport(0)
	check(t, w)
	if w.Height() != 1 {
		t.Errorf("height clamp = %d, want 1", w.Height())
	}
}

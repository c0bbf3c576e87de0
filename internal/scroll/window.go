// Package scroll maintains selection, viewport offset, and marks over a
// list whose length changes out from under it.
package scroll

// Window tracks a selected index and a viewport offset over a list of n
// items, keeping the selection visible and every index in range after any
// mutation.
type Window struct {
	length   int
	height   int
	selected int
	offset   int
	marks    map[int]bool
}

// New returns a window over n items with the given viewport height.
func New(n, height int) *Window {
	w := &Window{marks: make(map[int]bool)}
	w.Replace(n)
	w.SetViewport(height)
	return w
}

// Len reports the current item count.
func (w *Window) Len() int { return w.length }

// Selected reports the selected index, or -1 when the list is empty.
func (w *Window) Selected() int {
	if w.length == 0 {
		return -1
	}
	return w.selected
}

// Offset reports the index of the first visible item.
func (w *Window) Offset() int { return w.offset }

// Height reports the viewport height.
func (w *Window) Height() int { return w.height }

// SetViewport resizes the visible window and re-clamps the offset.
func (w *Window) SetViewport(height int) {
	if height < 1 {
		height = 1
	}
	w.height = height
	w.clamp()
}

// Replace resets the window to a list of n items. The selection and offset
// are re-clamped rather than reset, so a refresh keeps the user's place.
// Marks are cleared: the indices they point at may now hold different items.
func (w *Window) Replace(n int) {
	if n < 0 {
		n = 0
	}
	w.length = n
	w.marks = make(map[int]bool)
	w.clamp()
}

// SelectNext moves the selection down one, wrapping to the top.
func (w *Window) SelectNext() {
	if w.length == 0 {
		return
	}
	w.selected = (w.selected + 1) % w.length
	w.follow()
}

// SelectPrev moves the selection up one, wrapping to the bottom.
func (w *Window) SelectPrev() {
	if w.length == 0 {
		return
	}
	w.selected = (w.selected - 1 + w.length) % w.length
	w.follow()
}

// PageDown moves the selection a full viewport down, clamped to the end.
func (w *Window) PageDown() {
	if w.length == 0 {
		return
	}
	w.selected += w.height
	if w.selected > w.length-1 {
		w.selected = w.length - 1
	}
	w.follow()
}

// PageUp moves the selection a full viewport up, clamped to the start.
func (w *Window) PageUp() {
	if w.length == 0 {
		return
	}
	w.selected -= w.height
	if w.selected < 0 {
		w.selected = 0
	}
	w.follow()
}

// Home selects the first item.
func (w *Window) Home() {
	w.selected = 0
	w.follow()
}

// End selects the last item.
func (w *Window) End() {
	if w.length == 0 {
		return
	}
	w.selected = w.length - 1
	w.follow()
}

// ToggleMark flips the mark on the selected item.
func (w *Window) ToggleMark() {
	if w.length == 0 {
		return
	}
	if w.marks[w.selected] {
		delete(w.marks, w.selected)
	} else {
		w.marks[w.selected] = true
	}
}

// Marked reports whether the item at i is marked.
func (w *Window) Marked(i int) bool { return w.marks[i] }

// MarkedIndices returns the marked indices in ascending order.
func (w *Window) MarkedIndices() []int {
	out := make([]int, 0, len(w.marks))
	for i := 0; i < w.length; i++ {
		if w.marks[i] {
			out = append(out, i)
		}
	}
	return out
}

// ClearMarks drops all marks.
func (w *Window) ClearMarks() {
	w.marks = make(map[int]bool)
}

// Visible returns the half-open index range [start, end) currently in view.
func (w *Window) Visible() (start, end int) {
	start = w.offset
	end = w.offset + w.height
	if end > w.length {
		end = w.length
	}
	return start, end
}

// follow scrolls the viewport the minimum distance needed to keep the
// selection visible.
func (w *Window) follow() {
	if w.selected < w.offset {
		w.offset = w.selected
	}
	if w.selected >= w.offset+w.height {
		w.offset = w.selected - w.height + 1
	}
	w.clamp()
}

func (w *Window) clamp() {
	if w.selected > w.length-1 {
		w.selected = w.length - 1
	}
	if w.selected < 0 {
		w.selected = 0
	}
	maxOffset := w.length - w.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if w.offset > maxOffset {
		w.offset = maxOffset
	}
	if w.offset < 0 {
		w.offset = 0
	}
	if w.length > 0 {
		if w.selected < w.offset {
			w.offset = w.selected
		}
		if w.selected >= w.offset+w.height {
			w.offset = w.selected - w.height + 1
		}
	}
}

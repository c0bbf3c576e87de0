package tui

import "github.com/charmbracelet/lipgloss"

// Home menu actions, in display order.
const (
	menuNewRequest = iota
	menuBrowse
	menuSettings
	menuQuit
	menuCount
)

var menuLabels = [menuCount]string{
	"New request",
	"Browse files",
	"Settings",
	"Quit",
}

// HomeMenu is the landing screen menu.
type HomeMenu struct {
	cursor int
}

// NewHomeMenu creates the menu with the first item selected.
func NewHomeMenu() *HomeMenu {
	return &HomeMenu{}
}

// MoveUp moves the cursor up, wrapping.
func (h *HomeMenu) MoveUp() {
	h.cursor = (h.cursor - 1 + menuCount) % menuCount
}

// MoveDown moves the cursor down, wrapping.
func (h *HomeMenu) MoveDown() {
	h.cursor = (h.cursor + 1) % menuCount
}

// Cursor returns the selected menu action.
func (h *HomeMenu) Cursor() int { return h.cursor }

// Select jumps directly to an action. Out-of-range values are ignored.
func (h *HomeMenu) Select(i int) {
	if i >= 0 && i < menuCount {
		h.cursor = i
	}
}

// View renders the menu.
func (h *HomeMenu) View() string {
	parts := []string{
		titleStyle.Render("vidio"),
		hintStyle.Render("video transcripts and reports"),
		"",
	}
	for i, label := range menuLabels {
		if i == h.cursor {
			parts = append(parts, menuSelectedStyle.Render("▸ "+label))
		} else {
			parts = append(parts, menuItemStyle.Render("  "+label))
		}
	}
	parts = append(parts, "", hintStyle.Render("j/k navigate  |  Enter select  |  1-4 jump"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

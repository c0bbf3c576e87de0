package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// confirmMode values.
const (
	confirmNone   = 0
	confirmDelete = 1
	confirmQuit   = 2
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmDelete {
		return renderConfirmBar(
			fmt.Sprintf("Delete %d file(s)? (y/n)", m.confirmCount),
			width,
		)
	}
	if m.confirmMode == confirmQuit {
		return renderConfirmBar(
			"Job running. Quit? (y/n)",
			width,
		)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	left := " " + getKeyHints(m)

	right := ""
	if m.jobID != "" {
		right = lipgloss.NewStyle().Foreground(colorGreen).Render("Working") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	quit := keyHint("Ctrl+q", "quit")
	back := keyHint("Esc", "back")

	switch m.screen {
	case screenHome:
		return quit + "  " + keyHint("j/k", "navigate") + "  " + keyHint("Enter", "select")
	case screenNewRequest:
		return back + "  " + keyHint("Tab", "field") + "  " +
			keyHint("Space", "toggle") + "  " + keyHint("Enter", "submit")
	case screenProcessing:
		if m.jobID != "" {
			return keyHint("Esc", "cancel")
		}
		return back
	case screenBrowse:
		if m.browser.Searching() {
			return keyHint("Enter", "apply") + "  " + keyHint("Esc", "clear")
		}
		return back + "  " + keyHint("1/2/3", "filter") + "  " + keyHint("/", "search") + "  " +
			keyHint("Space", "mark") + "  " + keyHint("r", "report") + "  " +
			keyHint("x", "delete") + "  " + keyHint("Enter", "open")
	case screenView:
		return back + "  " + keyHint("j/k", "scroll") + "  " +
			keyHint("Space/b", "page") + "  " + keyHint("g/G", "top/bottom")
	case screenSettings:
		return back + "  " + keyHint("j/k", "navigate") + "  " + keyHint("Space", "toggle")
	}
	return quit
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/0xti4n/vidio/internal/config"
)

// Settings rows, in display order. Only the toggles are editable here;
// languages and directories change via the config file.
const (
	settingLanguages = iota
	settingPreserve
	settingAutoReport
	settingTranscriptsDir
	settingReportsDir
	settingCount
)

// SettingsForm shows current settings and toggles the boolean ones.
type SettingsForm struct {
	settings config.Settings
	cursor   int
	dirty    bool
}

// NewSettingsForm creates the form over a settings snapshot.
func NewSettingsForm(settings config.Settings) *SettingsForm {
	return &SettingsForm{settings: settings}
}

// MoveUp moves the cursor up, wrapping.
func (s *SettingsForm) MoveUp() {
	s.cursor = (s.cursor - 1 + settingCount) % settingCount
}

// MoveDown moves the cursor down, wrapping.
func (s *SettingsForm) MoveDown() {
	s.cursor = (s.cursor + 1) % settingCount
}

// Toggle flips the selected setting if it is a boolean; it reports whether
// anything changed.
func (s *SettingsForm) Toggle() bool {
	switch s.cursor {
	case settingPreserve:
		s.settings.PreserveFormatting = !s.settings.PreserveFormatting
	case settingAutoReport:
		s.settings.AutoReport = !s.settings.AutoReport
	default:
		return false
	}
	s.dirty = true
	return true
}

// Settings returns the current (possibly modified) settings.
func (s *SettingsForm) Settings() config.Settings { return s.settings }

// Dirty reports whether any setting changed since creation.
func (s *SettingsForm) Dirty() bool { return s.dirty }

// View renders the form.
func (s *SettingsForm) View() string {
	labelStyle := lipgloss.NewStyle().Width(22).Foreground(colorDim)
	valueStyle := lipgloss.NewStyle().Foreground(colorWhite)

	toggle := func(on bool) string {
		if on {
			return toggleOnStyle.Render("on")
		}
		return toggleOffStyle.Render("off")
	}

	row := func(i int, label, value string) string {
		line := labelStyle.Render(label) + valueStyle.Render(value)
		if i == s.cursor {
			return selectedItemStyle.Render(line)
		}
		return line
	}
	toggleRow := func(i int, label string, on bool) string {
		line := labelStyle.Render(label) + toggle(on)
		if i == s.cursor {
			return selectedItemStyle.Render(line)
		}
		return line
	}

	parts := []string{
		titleStyle.Render("Settings"),
		"",
		row(settingLanguages, "Languages", strings.Join(s.settings.Languages, ", ")),
		toggleRow(settingPreserve, "Preserve formatting", s.settings.PreserveFormatting),
		toggleRow(settingAutoReport, "Auto report", s.settings.AutoReport),
		row(settingTranscriptsDir, "Transcripts dir", s.settings.EffectiveTranscriptsDir()),
		row(settingReportsDir, "Reports dir", s.settings.EffectiveReportsDir()),
		"",
		hintStyle.Render("Space toggle  |  Esc back (saves changes)"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

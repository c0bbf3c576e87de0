package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/0xti4n/vidio/internal/config"
)

// Request is a validated submission from the new-request form.
type Request struct {
	VideoID            string
	Languages          []string
	PreserveFormatting bool
	GenerateReport     bool
}

// RequestForm collects a video URL and fetch options.
type RequestForm struct {
	urlInput  textinput.Model
	langInput textinput.Model
	preserve  bool
	report    bool

	focusIndex int // 0=url, 1=languages, 2=preserve, 3=report
	width      int
}

// NewRequestForm creates the form pre-filled from settings defaults.
func NewRequestForm(settings config.Settings, width int) *RequestForm {
	ui := textinput.New()
	ui.Placeholder = "https://www.youtube.com/watch?v=... or video ID"
	ui.CharLimit = 200
	ui.Width = width - 8

	li := textinput.New()
	li.Placeholder = "en, es"
	li.SetValue(strings.Join(settings.Languages, ", "))
	li.CharLimit = 100
	li.Width = width - 8

	f := &RequestForm{
		urlInput:  ui,
		langInput: li,
		preserve:  settings.PreserveFormatting,
		report:    settings.AutoReport,
		width:     width,
	}
	f.urlInput.Focus()
	return f
}

// FocusNext moves to the next field.
func (f *RequestForm) FocusNext() {
	f.blurAll()
	f.focusIndex = (f.focusIndex + 1) % 4
	f.focusCurrent()
}

// FocusPrev moves to the previous field.
func (f *RequestForm) FocusPrev() {
	f.blurAll()
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = 3
	}
	f.focusCurrent()
}

func (f *RequestForm) blurAll() {
	f.urlInput.Blur()
	f.langInput.Blur()
}

func (f *RequestForm) focusCurrent() {
	switch f.focusIndex {
	case 0:
		f.urlInput.Focus()
	case 1:
		f.langInput.Focus()
	}
}

// FocusIndex returns the currently focused field index.
func (f *RequestForm) FocusIndex() int {
	return f.focusIndex
}

// OnToggle reports whether the focused field is one of the toggles.
func (f *RequestForm) OnToggle() bool {
	return f.focusIndex >= 2
}

// Toggle flips the focused toggle field.
func (f *RequestForm) Toggle() {
	switch f.focusIndex {
	case 2:
		f.preserve = !f.preserve
	case 3:
		f.report = !f.report
	}
}

// URLInput returns the URL input model for update forwarding.
func (f *RequestForm) URLInput() *textinput.Model {
	return &f.urlInput
}

// LangInput returns the languages input model for update forwarding.
func (f *RequestForm) LangInput() *textinput.Model {
	return &f.langInput
}

// URL returns the raw URL field value.
func (f *RequestForm) URL() string {
	return strings.TrimSpace(f.urlInput.Value())
}

// Languages parses the comma-separated language field, dropping blanks.
func (f *RequestForm) Languages() []string {
	var out []string
	for _, part := range strings.Split(f.langInput.Value(), ",") {
		if lang := strings.TrimSpace(part); lang != "" {
			out = append(out, lang)
		}
	}
	return out
}

// Options returns the current toggle values.
func (f *RequestForm) Options() (preserve, report bool) {
	return f.preserve, f.report
}

// View renders the form.
func (f *RequestForm) View() string {
	label := func(i int, text string) string {
		if f.focusIndex == i {
			return formFocusedLabelStyle.Render("▸ " + text)
		}
		return formLabelStyle.Render("  " + text)
	}
	toggle := func(on bool) string {
		if on {
			return toggleOnStyle.Render("on")
		}
		return toggleOffStyle.Render("off")
	}

	parts := []string{
		titleStyle.Render("New Request"),
		"",
		label(0, "Video URL or ID:"),
		"  " + f.urlInput.View(),
		"",
		label(1, "Languages (priority order):"),
		"  " + f.langInput.View(),
		"",
		label(2, "Preserve formatting: ") + toggle(f.preserve),
		label(3, "Generate report:     ") + toggle(f.report),
		"",
		hintStyle.Render("Tab next field  |  Space toggle  |  Enter submit  |  Esc back"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

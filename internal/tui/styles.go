package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "26", Dark: "39"}
	colorGray   = lipgloss.AdaptiveColor{Light: "245", Dark: "243"}
)

// Layout styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

// Home menu styles.
var (
	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan)
)

// Form styles.
var (
	formLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	formFocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// Browser styles.
var (
	entryTranscriptStyle = lipgloss.NewStyle().Foreground(colorGreen)
	entryReportStyle     = lipgloss.NewStyle().Foreground(colorBlue)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	markStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// Processing screen styles.
var (
	progressFillStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	progressTrackStyle = lipgloss.NewStyle().Foreground(colorDim)

	logTimeStyle = lipgloss.NewStyle().Foreground(colorDim)
	logTextStyle = lipgloss.NewStyle().Foreground(colorWhite)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Viewer styles.
var (
	viewerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan).
				Underline(true)

	scrollInfoStyle = lipgloss.NewStyle().Foreground(colorDim)
)

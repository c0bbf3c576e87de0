package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// logRingSize bounds the activity log shown on the processing screen.
const logRingSize = 10

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type logEntry struct {
	at   time.Time
	text string
}

// ProgressPane shows a running job: spinner, status line, progress bar, and
// a bounded activity log.
type ProgressPane struct {
	video    string
	status   string
	fraction float64
	log      []logEntry
	frame    int
	width    int
}

// NewProgressPane creates an empty progress pane.
func NewProgressPane() *ProgressPane {
	return &ProgressPane{status: "Starting..."}
}

// Reset clears the pane for a new job on the given video.
func (p *ProgressPane) Reset(videoID string) {
	p.video = videoID
	p.status = "Starting..."
	p.fraction = 0
	p.log = nil
	p.frame = 0
}

// SetStatus replaces the status line and mirrors it into the log.
func (p *ProgressPane) SetStatus(text string) {
	p.status = text
	p.Append(text)
}

// SetFraction updates progress, clamped to [0,1] on receipt so a misbehaving
// producer can't draw an impossible bar.
func (p *ProgressPane) SetFraction(f float64) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	p.fraction = f
}

// Fraction returns the clamped progress fraction.
func (p *ProgressPane) Fraction() float64 { return p.fraction }

// Append adds a timestamped line to the activity log, evicting the oldest
// once the ring is full.
func (p *ProgressPane) Append(text string) {
	p.log = append(p.log, logEntry{at: time.Now(), text: text})
	if len(p.log) > logRingSize {
		p.log = p.log[len(p.log)-logRingSize:]
	}
}

// LogLines returns the current activity log texts, oldest first.
func (p *ProgressPane) LogLines() []string {
	out := make([]string, len(p.log))
	for i, e := range p.log {
		out[i] = e.text
	}
	return out
}

// Tick advances the spinner.
func (p *ProgressPane) Tick() {
	p.frame = (p.frame + 1) % len(spinnerFrames)
}

// SetWidth resizes the pane.
func (p *ProgressPane) SetWidth(w int) {
	if w < 20 {
		w = 20
	}
	p.width = w
}

// View renders the pane.
func (p *ProgressPane) View() string {
	barWidth := p.width - 10
	if barWidth < 10 {
		barWidth = 10
	}
	filled := int(p.fraction * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := progressFillStyle.Render(strings.Repeat("█", filled)) +
		progressTrackStyle.Render(strings.Repeat("░", barWidth-filled))

	title := "Processing"
	if p.video != "" {
		title += " " + p.video
	}
	parts := []string{
		titleStyle.Render(title),
		"",
		spinnerFrames[p.frame] + " " + p.status,
		"",
		fmt.Sprintf("%s %3.0f%%", bar, p.fraction*100),
		"",
	}
	for _, e := range p.log {
		parts = append(parts,
			logTimeStyle.Render(e.at.Format("15:04:05"))+" "+logTextStyle.Render(e.text))
	}
	parts = append(parts, "", hintStyle.Render("Esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

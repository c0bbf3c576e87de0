// Package tui implements the interactive TUI for vidio.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/0xti4n/vidio/internal/config"
	"github.com/0xti4n/vidio/internal/report"
	"github.com/0xti4n/vidio/internal/storage"
	"github.com/0xti4n/vidio/internal/transcript"
)

// Services bundles the backends the TUI drives. Job goroutines only ever
// touch these, never the model.
type Services struct {
	Store    *storage.Store
	Fetcher  transcript.Fetcher
	Reporter func() (report.Generator, error)
	Settings config.Settings
}

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI against the given services.
func Run(svc *Services) error {
	ref := &programRef{}
	model := NewModel(svc, ref)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	// Store program reference for job goroutine sends
	ref.Set(p)

	_, err := p.Run()
	return err
}

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/0xti4n/vidio/internal/config"
	"github.com/0xti4n/vidio/internal/storage"
	"github.com/0xti4n/vidio/internal/videoid"
)

// screen identifies the active screen of the state machine.
type screen int

const (
	screenHome screen = iota
	screenNewRequest
	screenProcessing
	screenBrowse
	screenView
	screenSettings
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	svc *Services

	// UI state
	screen screen
	width  int
	height int
	err    error

	// Child components
	home         *HomeMenu
	form         *RequestForm
	progress     *ProgressPane
	browser      *Browser
	viewer       *Viewer
	settingsForm *SettingsForm

	// Program reference for goroutine Send()
	program *programRef

	// Job state. jobID is non-empty while a job runs; messages carrying
	// any other ID are stale and dropped.
	jobID          string
	jobCancel      context.CancelFunc
	spinnerRunning bool

	// Confirm mode
	confirmMode  int
	confirmCount int
}

// NewModel creates the initial TUI model.
func NewModel(svc *Services, program *programRef) Model {
	return Model{
		svc:      svc,
		home:     NewHomeMenu(),
		progress: NewProgressPane(),
		browser:  NewBrowser(),
		viewer:   NewViewer(),
		program:  program,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// ── Job progress ───────────────────────────────────────────────
	case ProgressMsg:
		if msg.JobID == m.jobID {
			m.progress.SetFraction(msg.Fraction)
		}
		return m, nil

	case StatusMsg:
		if msg.JobID == m.jobID {
			m.progress.SetStatus(msg.Text)
		}
		return m, nil

	case LogMsg:
		if msg.JobID == m.jobID {
			m.progress.Append(msg.Text)
		}
		return m, nil

	case JobDoneMsg:
		if msg.JobID != m.jobID {
			return m, nil
		}
		m.stopJob()
		if msg.Err != nil {
			// The ring in the progress pane keeps the job's log until
			// the next job starts, so the failure stays inspectable.
			m.err = msg.Err
			cmds = append(cmds, clearErrorAfter(5*time.Second), m.exitProcessing())
			return m, tea.Batch(cmds...)
		}
		m.form = nil
		m.screen = screenHome
		return m, nil

	case spinnerTickMsg:
		if m.jobID != "" {
			m.progress.Tick()
			cmds = append(cmds, spinnerTick())
		} else {
			m.spinnerRunning = false
		}
		return m, tea.Batch(cmds...)

	// ── File data ──────────────────────────────────────────────────
	case FilesLoadedMsg:
		m.browser.SetEntries(msg.Entries)
		return m, nil

	case FileOpenedMsg:
		m.viewer.Open(msg.Entry, msg.Content)
		m.viewer.SetSize(m.width, m.height-1)
		m.screen = screenView
		return m, nil

	case FileDeletedMsg:
		if msg.Failed > 0 {
			m.err = fmt.Errorf("%d file(s) could not be deleted", msg.Failed)
			cmds = append(cmds, clearErrorAfter(5*time.Second))
		}
		cmds = append(cmds, loadFilesCmd(m.svc))
		return m, tea.Batch(cmds...)

	// ── Error handling ─────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		cmds = append(cmds, clearErrorAfter(5*time.Second))
		return m, tea.Batch(cmds...)

	case ClearErrorMsg:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Confirm mode captures everything
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// Browser search captures everything except Esc/Enter
	if m.screen == screenBrowse && m.browser.Searching() {
		return m.handleSearchKey(msg)
	}

	if key.Matches(msg, globalKeys.Quit) {
		if m.jobID != "" {
			m.confirmMode = confirmQuit
			return nil
		}
		return m.doQuit()
	}

	switch m.screen {
	case screenHome:
		return m.handleHomeKey(msg)
	case screenNewRequest:
		return m.handleFormKey(msg)
	case screenProcessing:
		return m.handleProcessingKey(msg)
	case screenBrowse:
		return m.handleBrowserKey(msg)
	case screenView:
		return m.handleViewerKey(msg)
	case screenSettings:
		return m.handleSettingsKey(msg)
	}
	return nil
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, homeKeys.Up):
		m.home.MoveUp()
	case key.Matches(msg, homeKeys.Down):
		m.home.MoveDown()
	case key.Matches(msg, homeKeys.Enter):
		return m.selectMenu(m.home.Cursor())
	}
	switch msg.String() {
	case "1", "2", "3", "4":
		i := int(msg.String()[0] - '1')
		m.home.Select(i)
		return m.selectMenu(i)
	case "q":
		return m.doQuit()
	}
	return nil
}

func (m *Model) selectMenu(action int) tea.Cmd {
	switch action {
	case menuNewRequest:
		m.form = NewRequestForm(m.svc.Settings, m.contentWidth())
		m.screen = screenNewRequest
	case menuBrowse:
		m.screen = screenBrowse
		return loadFilesCmd(m.svc)
	case menuSettings:
		m.settingsForm = NewSettingsForm(m.svc.Settings)
		m.screen = screenSettings
	case menuQuit:
		return m.doQuit()
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, globalKeys.Back):
		m.form = nil
		m.screen = screenHome
		return nil
	case key.Matches(msg, formKeys.Submit):
		// Enter on a text field moves on to the next one; only the
		// toggles at the end of the form submit.
		if m.form.FocusIndex() < 2 {
			m.form.FocusNext()
			return nil
		}
		return m.submitForm()
	case key.Matches(msg, formKeys.Next):
		m.form.FocusNext()
		return nil
	case key.Matches(msg, formKeys.Prev):
		m.form.FocusPrev()
		return nil
	case key.Matches(msg, formKeys.Toggle):
		if m.form.OnToggle() {
			m.form.Toggle()
			return nil
		}
	}

	// Forward to active input
	switch m.form.FocusIndex() {
	case 0:
		ti := m.form.URLInput()
		newTI, _ := ti.Update(msg)
		*ti = newTI
	case 1:
		ti := m.form.LangInput()
		newTI, _ := ti.Update(msg)
		*ti = newTI
	}
	return nil
}

func (m *Model) submitForm() tea.Cmd {
	id, err := videoid.Extract(m.form.URL())
	if err != nil {
		m.err = err
		return clearErrorAfter(3 * time.Second)
	}

	languages := m.form.Languages()
	if len(languages) == 0 {
		languages = m.svc.Settings.Languages
	}
	preserve, genReport := m.form.Options()

	// The form stays around so a failed job can drop back into it with
	// the submitted values intact.
	return m.startJob(Request{
		VideoID:            id,
		Languages:          languages,
		PreserveFormatting: preserve,
		GenerateReport:     genReport,
	})
}

// startJob switches to the processing screen and launches the pipeline.
func (m *Model) startJob(req Request) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.jobID = uuid.NewString()
	m.jobCancel = cancel
	m.progress.Reset(req.VideoID)
	m.screen = screenProcessing

	cmds := []tea.Cmd{startJobCmd(ctx, m.svc, m.program, m.jobID, req)}
	if !m.spinnerRunning {
		m.spinnerRunning = true
		cmds = append(cmds, spinnerTick())
	}
	return tea.Batch(cmds...)
}

// stopJob tears down the running job's state.
func (m *Model) stopJob() {
	if m.jobCancel != nil {
		m.jobCancel()
		m.jobCancel = nil
	}
	m.jobID = ""
}

func (m *Model) handleProcessingKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, globalKeys.Back) {
		if m.jobID != "" {
			m.stopJob()
			m.progress.Append("Cancelled")
		}
		return m.exitProcessing()
	}
	return nil
}

// exitProcessing leaves the processing screen for wherever the job was
// started from: the request form when one is live, otherwise the browser.
func (m *Model) exitProcessing() tea.Cmd {
	if m.form != nil {
		m.screen = screenNewRequest
		return nil
	}
	m.screen = screenBrowse
	return loadFilesCmd(m.svc)
}

func (m *Model) handleBrowserKey(msg tea.KeyMsg) tea.Cmd {
	w := m.browser.Window()
	switch {
	case key.Matches(msg, globalKeys.Back):
		m.screen = screenHome
	case key.Matches(msg, browserKeys.Up):
		w.SelectPrev()
	case key.Matches(msg, browserKeys.Down):
		w.SelectNext()
	case key.Matches(msg, browserKeys.PageUp):
		w.PageUp()
	case key.Matches(msg, browserKeys.PageDown):
		w.PageDown()
	case key.Matches(msg, browserKeys.Home):
		w.Home()
	case key.Matches(msg, browserKeys.End):
		w.End()
	case key.Matches(msg, browserKeys.All):
		m.browser.SetFilter(filterAll)
	case key.Matches(msg, browserKeys.Trans):
		m.browser.SetFilter(filterTranscripts)
	case key.Matches(msg, browserKeys.Reports):
		m.browser.SetFilter(filterReports)
	case key.Matches(msg, browserKeys.Search):
		m.browser.StartSearch()
	case key.Matches(msg, browserKeys.Mark):
		w.ToggleMark()
	case key.Matches(msg, browserKeys.Refresh):
		return loadFilesCmd(m.svc)
	case key.Matches(msg, browserKeys.Delete):
		targets := m.browser.MarkedOrSelected()
		if len(targets) > 0 {
			m.confirmMode = confirmDelete
			m.confirmCount = len(targets)
		}
	case key.Matches(msg, browserKeys.Report):
		return m.reportFromSelected()
	case key.Matches(msg, browserKeys.Open):
		if sel := m.browser.Selected(); sel != nil {
			return openFileCmd(m.svc, *sel)
		}
	}
	return nil
}

// reportFromSelected generates a report from an already stored transcript.
func (m *Model) reportFromSelected() tea.Cmd {
	sel := m.browser.Selected()
	if sel == nil || sel.Kind != storage.KindTranscript {
		return nil
	}
	id := sel.VideoID()
	if id == "" {
		return nil
	}
	return m.startJob(Request{
		VideoID:            id,
		Languages:          m.svc.Settings.Languages,
		PreserveFormatting: m.svc.Settings.PreserveFormatting,
		GenerateReport:     true,
	})
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEscape:
		m.browser.EndSearch(false)
		return nil
	case tea.KeyEnter:
		m.browser.EndSearch(true)
		return nil
	}
	ti := m.browser.SearchInput()
	newTI, _ := ti.Update(msg)
	*ti = newTI
	m.browser.Refilter()
	return nil
}

func (m *Model) handleViewerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, globalKeys.Back):
		m.screen = screenBrowse
	case key.Matches(msg, viewerKeys.Up):
		m.viewer.ScrollUp(1)
	case key.Matches(msg, viewerKeys.Down):
		m.viewer.ScrollDown(1)
	case key.Matches(msg, viewerKeys.PageUp):
		m.viewer.PageUp()
	case key.Matches(msg, viewerKeys.PageDown):
		m.viewer.PageDown()
	case key.Matches(msg, viewerKeys.Top):
		m.viewer.Top()
	case key.Matches(msg, viewerKeys.Bottom):
		m.viewer.Bottom()
	}
	return nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, globalKeys.Back):
		return m.closeSettings()
	case key.Matches(msg, settingsKeys.Up):
		m.settingsForm.MoveUp()
	case key.Matches(msg, settingsKeys.Down):
		m.settingsForm.MoveDown()
	case key.Matches(msg, settingsKeys.Toggle):
		m.settingsForm.Toggle()
	}
	return nil
}

func (m *Model) closeSettings() tea.Cmd {
	if m.settingsForm.Dirty() {
		s := m.settingsForm.Settings()
		m.svc.Settings = s
		if err := config.SaveSettings(&s); err != nil {
			m.err = fmt.Errorf("save settings: %w", err)
			m.settingsForm = nil
			m.screen = screenHome
			return clearErrorAfter(5 * time.Second)
		}
	}
	m.settingsForm = nil
	m.screen = screenHome
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		switch m.confirmMode {
		case confirmDelete:
			m.confirmMode = confirmNone
			return deleteFilesCmd(m.svc, m.browser.MarkedOrSelected())
		case confirmQuit:
			m.confirmMode = confirmNone
			return m.doQuit()
		}
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmMode = confirmNone
	}
	return nil
}

// doQuit performs clean shutdown: cancel any job, clear program ref, quit.
func (m *Model) doQuit() tea.Cmd {
	m.stopJob()
	m.program.Clear()
	return tea.Quit
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) contentWidth() int {
	w := m.width
	if w < 40 {
		w = 40
	}
	return w
}

func (m *Model) updateDimensions() {
	contentHeight := m.height - 1 // status bar
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.browser.SetSize(m.width, contentHeight)
	m.viewer.SetSize(m.width, contentHeight)
	m.progress.SetWidth(m.width)
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < 40 || m.height < 10 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render("Terminal too small (need 40x10)")
	}

	var content string
	switch m.screen {
	case screenHome:
		content = m.home.View()
	case screenNewRequest:
		content = m.form.View()
	case screenProcessing:
		content = m.progress.View()
	case screenBrowse:
		content = m.browser.View()
	case screenView:
		content = m.viewer.View()
	case screenSettings:
		content = m.settingsForm.View()
	}

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 1).
		Padding(0, 1).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, body, renderStatusBar(&m, m.width))
}

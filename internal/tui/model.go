package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"screencmp/internal/config"
	"screencmp/internal/profile"
	"screencmp/internal/screen"
	"screencmp/internal/tui/components"
)

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 80
	MinTerminalHeight = 20
)

// Model represents the main TUI state. The collection store is the single
// source of truth for entry data; the spec list component only carries raw
// input text between keystrokes.
type Model struct {
	collection *screen.Collection
	pipeline   *screen.Pipeline
	watcher    *profile.Watcher

	width  int
	height int

	// Components
	specList     *components.SpecList
	resultsTable *components.ResultsTable
	preview      *components.Preview
	statusBar    *components.StatusBar

	helpMode         bool
	lastError        error
	terminalTooSmall bool
}

// NewModel creates the TUI model around an existing collection. The
// pipeline is wired with the spec list as its field error source, so raw
// input that never parsed keeps the published state Invalid.
func NewModel(col *screen.Collection) *Model {
	m := &Model{
		collection: col,
		specList:   components.NewSpecList(col.Specs()),
		preview:    components.NewPreview(),
		statusBar:  components.NewStatusBar(),
	}

	m.pipeline = screen.NewPipeline(col, screen.WithFieldErrorSource(m.specList.FieldErrors))

	snap := m.pipeline.Snapshot()
	m.resultsTable = components.NewResultsTable(snap)
	m.preview.SetScreens(snap.Screens)
	m.statusBar.SetCount(col.Len())

	return m
}

// SetWatcher attaches the profile watcher for live reload.
func (m *Model) SetWatcher(w *profile.Watcher) {
	m.watcher = w
}

// Pipeline exposes the pipeline, mainly so the program can stop it.
func (m *Model) Pipeline() *screen.Pipeline {
	return m.pipeline
}

// Init starts the background waits.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForSnapshot()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForProfileReload())
	}
	return tea.Batch(cmds...)
}

// Update dispatches messages to handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case snapshotMsg:
		return m.handleSnapshot(msg)
	case components.FieldEditedMsg:
		return m.handleFieldEdited(msg)
	case profileReloadedMsg:
		return m.handleProfileReloaded(msg)
	case errMsg:
		return m.handleError(msg)
	}
	return m, nil
}

// View renders the full screen.
func (m *Model) View() string {
	if m.terminalTooSmall {
		return m.terminalTooSmallView()
	}
	if m.helpMode {
		return m.helpView()
	}
	if m.width == 0 {
		return "loading..."
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.resultsTable.View(),
		m.preview.View(),
	)
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		m.specList.View(),
		right,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.statusBar.View())
}

// terminalTooSmallView asks the user to resize.
func (m *Model) terminalTooSmallView() string {
	msg := fmt.Sprintf(
		"Terminal Too Small\n\nCurrent: %dx%d\nRequired: %dx%d or larger\n\nResize your terminal to continue.",
		m.width, m.height, MinTerminalWidth, MinTerminalHeight,
	)
	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(msg)
}

// helpView renders the key reference.
func (m *Model) helpView() string {
	help := `screencmp — compare screen sizes

  a          add a screen (up to 6)
  d          delete the selected screen (at least 1 kept)
  r          reset to the two preset screens
  up/down    select screen
  left/right select field
  enter, i   edit the selected field
  tab        next field while editing
  esc        stop editing
  ?          toggle this help
  q, ctrl+c  quit

Edits recompute width, height, and area for every screen.
Invalid values show an error instead of stale results.

Press any key to return.`

	return lipgloss.NewStyle().Padding(1, 2).Render(help)
}

// Messages

type snapshotMsg struct {
	snapshot screen.Snapshot
}

type profileReloadedMsg struct {
	profile *config.Profile
}

type errMsg struct {
	err error
}

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"screencmp/internal/logger"
	"screencmp/internal/screen"
)

// handleKeyPress routes keys. Two modes: navigation (row/field selection
// plus the collection operations) and editing (keystrokes feed the focused
// field input).
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.helpMode {
		m.helpMode = false
		return m, nil
	}

	if m.specList.Editing() {
		return m.handleEditingKey(msg)
	}
	return m.handleNavigationKey(msg)
}

func (m *Model) handleNavigationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()

	case "?":
		m.helpMode = true
		return m, nil

	case "up", "k":
		m.specList.MoveRow(-1)
		return m, nil

	case "down", "j":
		m.specList.MoveRow(1)
		return m, nil

	case "left", "h", "shift+tab":
		m.specList.MoveField(-1)
		return m, nil

	case "right", "l", "tab":
		m.specList.MoveField(1)
		return m, nil

	case "enter", "i":
		m.statusBar.SetMessage("")
		m.statusBar.SetInputMode(true)
		return m, m.specList.StartEditing()

	case "a":
		return m.addScreen()

	case "d", "x":
		return m.removeSelected()

	case "r":
		return m.resetCollection()
	}

	return m, nil
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.specList.StopEditing()
		m.statusBar.SetInputMode(false)
		m.pipeline.Flush()
		return m, nil

	case tea.KeyEnter:
		// Explicit submit: leave edit mode and recompute immediately
		// rather than waiting out the debounce window.
		m.specList.StopEditing()
		m.statusBar.SetInputMode(false)
		m.pipeline.Flush()
		return m, nil

	case tea.KeyTab:
		m.specList.MoveField(1)
		return m, nil

	case tea.KeyShiftTab:
		m.specList.MoveField(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.specList, cmd = m.specList.Update(msg)
	return m, cmd
}

func (m *Model) addScreen() (tea.Model, tea.Cmd) {
	m.statusBar.SetMessage("")
	spec, err := m.collection.AddDefault()
	if err != nil {
		if errors.Is(err, screen.ErrCollectionFull) {
			m.statusBar.SetMessage(err.Error())
			return m, nil
		}
		return m, func() tea.Msg { return errMsg{err} }
	}

	logger.Debug("tui: screen added", "id", spec.ID)
	m.specList.SetSpecs(m.collection.Specs())
	m.statusBar.SetCount(m.collection.Len())
	return m, nil
}

func (m *Model) removeSelected() (tea.Model, tea.Cmd) {
	m.statusBar.SetMessage("")
	id := m.specList.SelectedID()
	if id == "" {
		return m, nil
	}

	if err := m.collection.Remove(id); err != nil {
		if errors.Is(err, screen.ErrLastScreen) {
			m.statusBar.SetMessage(err.Error())
			return m, nil
		}
		return m, func() tea.Msg { return errMsg{err} }
	}

	m.specList.SetSpecs(m.collection.Specs())
	m.statusBar.SetCount(m.collection.Len())
	return m, nil
}

func (m *Model) resetCollection() (tea.Model, tea.Cmd) {
	m.statusBar.SetMessage("")
	m.collection.Reset()
	m.specList.SetSpecs(m.collection.Specs())
	m.statusBar.SetCount(m.collection.Len())
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.pipeline.Stop()
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return m, tea.Quit
}

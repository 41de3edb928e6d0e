package tui

import (
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"screencmp/internal/logger"
	"screencmp/internal/profile"
	"screencmp/internal/screen"
	"screencmp/internal/tui/components"
)

// Message Handlers
//
// Each message type gets its own handler so Update stays a plain dispatch
// table and the handlers are testable in isolation.

// handleWindowSize handles terminal resize events.
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight
	if m.terminalTooSmall {
		return m, nil
	}

	dims := CalculatePaneDimensions(msg.Width, msg.Height)
	m.specList.SetSize(dims.ListWidth, dims.ListHeight)
	m.resultsTable.SetSize(dims.RightWidth, dims.ResultsHeight)
	m.preview.SetSize(dims.RightWidth, dims.PreviewHeight)
	m.statusBar.SetWidth(msg.Width)

	return m, nil
}

// handleSnapshot handles a freshly published pipeline snapshot. Derived
// results and the error message are mutually exclusive: an Invalid snapshot
// clears the table and the preview together.
func (m *Model) handleSnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	logger.Debug("tui: snapshot published",
		"state", msg.snapshot.State,
		"screens", len(msg.snapshot.Screens))

	m.resultsTable.SetSnapshot(msg.snapshot)
	m.preview.SetScreens(msg.snapshot.Screens)
	m.statusBar.SetCount(m.collection.Len())

	return m, m.waitForSnapshot()
}

// handleFieldEdited parses a raw field edit and applies it to the store.
// Unparseable input is recorded as a field error instead; the pipeline is
// still triggered so the published state reflects it.
func (m *Model) handleFieldEdited(msg components.FieldEditedMsg) (tea.Model, tea.Cmd) {
	m.statusBar.SetMessage("")
	raw := strings.TrimSpace(msg.Raw)

	if msg.Field == components.FieldColor {
		m.specList.ClearFieldError(msg.ScreenID, msg.Field)
		m.specList.SetColor(msg.ScreenID, raw)
		if err := m.collection.Update(msg.ScreenID, screen.Patch{Color: &raw}); err != nil {
			return m, nil
		}
		return m, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	switch {
	case raw == "":
		m.specList.SetFieldError(msg.ScreenID, msg.Field, "is required")
	case err != nil || math.IsInf(value, 0):
		m.specList.SetFieldError(msg.ScreenID, msg.Field, "must be a number")
	default:
		m.specList.ClearFieldError(msg.ScreenID, msg.Field)
		patch := screen.Patch{}
		switch msg.Field {
		case components.FieldDiagonal:
			patch.Diagonal = &value
		case components.FieldAspectX:
			patch.AspectX = &value
		case components.FieldAspectY:
			patch.AspectY = &value
		}
		if updateErr := m.collection.Update(msg.ScreenID, patch); updateErr != nil {
			logger.Warn("tui: edit for missing screen", "id", msg.ScreenID)
		}
		return m, nil
	}

	// No store change happened, so schedule the recompute explicitly; the
	// pipeline will pick the field errors up and publish Invalid.
	m.pipeline.Trigger()
	return m, nil
}

// handleProfileReloaded rebuilds the collection from a changed profile.
func (m *Model) handleProfileReloaded(msg profileReloadedMsg) (tea.Model, tea.Cmd) {
	logger.Info("tui: applying reloaded profile")

	seed := profile.Seed(msg.profile)
	m.collection.Seed(seed)
	m.specList.SetSpecs(m.collection.Specs())
	m.statusBar.SetCount(m.collection.Len())

	return m, m.waitForProfileReload()
}

// handleError handles error messages.
func (m *Model) handleError(msg errMsg) (tea.Model, tea.Cmd) {
	m.lastError = msg.err
	if msg.err != nil {
		m.statusBar.SetMessage(msg.err.Error())
	}
	return m, nil
}

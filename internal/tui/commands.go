package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Command Builders
//
// These methods create tea.Cmd functions for async waits. Values a closure
// needs are captured before it is created, so later model changes cannot
// race with delivery.

// waitForSnapshot waits for the next published pipeline snapshot. The
// handler re-arms it, so at most one wait is outstanding.
func (m *Model) waitForSnapshot() tea.Cmd {
	capturedPipeline := m.pipeline

	return func() tea.Msg {
		snap, ok := <-capturedPipeline.Updates()
		if !ok {
			return nil
		}
		return snapshotMsg{snapshot: snap}
	}
}

// waitForProfileReload waits for profile change events from the watcher.
func (m *Model) waitForProfileReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	capturedWatcher := m.watcher

	return func() tea.Msg {
		event, ok := <-capturedWatcher.Reloads()
		if !ok {
			return nil
		}
		return profileReloadedMsg{profile: event.Profile}
	}
}

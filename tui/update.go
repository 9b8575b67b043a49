package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m.refit(), nil

	case LoadedMsg:
		m.table = msg.Table
		m.err = nil
		m.reloads++
		return m.refit(), nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ChangedMsg:
		return m, tea.Batch(m.loadCmd(), m.waitCmd())

	case WatcherFailedMsg:
		m.err = msg.Err
		return m, m.waitCmd()
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r":
		return m, m.loadCmd()
	}

	return m, nil
}

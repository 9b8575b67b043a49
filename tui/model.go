// Package tui shows a table that refits itself to the terminal
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tabfit/internal/watch"
	"github.com/young1lin/tabfit/table"
)

// Loader builds the table from its source
type Loader func() (*table.Table, error)

// Model represents the application state
type Model struct {
	name    string
	load    Loader
	watcher watch.Watcher

	table  *table.Table
	output *table.Output
	width  int
	height int

	// State
	ready    bool
	quitting bool
	reloads  int

	// Error state
	err error

	// Styles
	styles Styles
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Status  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red
	warnColor := lipgloss.Color("208")      // Orange

	styles.Status = lipgloss.NewStyle().
		Foreground(primaryColor).
		Background(secondaryColor)

	styles.Warning = lipgloss.NewStyle().
		Foreground(warnColor).
		Background(secondaryColor).
		Bold(true)

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return styles
}

// NewModel creates a model showing the table built by load. name labels the
// status bar. watcher may be nil.
func NewModel(name string, load Loader, watcher watch.Watcher) Model {
	return Model{
		name:    name,
		load:    load,
		watcher: watcher,
		styles:  DefaultStyles(),
	}
}

// Init loads the table and starts listening for changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.waitCmd())
}

// Output returns the most recent rendering, or nil
func (m Model) Output() *table.Output {
	return m.output
}

// refit renders the table at the current width
func (m Model) refit() Model {
	if m.table == nil || m.width <= 0 {
		return m
	}
	out, err := m.table.Render(m.width)
	if err != nil {
		m.err = err
		return m
	}
	m.output = out
	return m
}

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		t, err := load()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return LoadedMsg{Table: t}
	}
}

// waitCmd blocks until the watcher reports something
func (m Model) waitCmd() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return ChangedMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return WatcherFailedMsg{Err: err}
		}
	}
}

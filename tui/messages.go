package tui

import "github.com/young1lin/tabfit/table"

// LoadedMsg carries a freshly loaded table
type LoadedMsg struct {
	Table *table.Table
}

// ErrorMsg is sent when loading or rendering fails
type ErrorMsg struct {
	Err error
}

// ChangedMsg is sent when the watched source changes
type ChangedMsg struct{}

// WatcherFailedMsg is sent when the file watcher reports an error
type WatcherFailedMsg struct {
	Err error
}

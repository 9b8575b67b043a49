package tui

import (
	"fmt"
	"strings"

	"github.com/young1lin/tabfit/internal/width"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready || m.output == nil {
		if m.err != nil {
			return m.renderError() + "\n"
		}
		return m.styles.Muted.Render("Loading...") + "\n"
	}

	var b strings.Builder
	for _, line := range m.output.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if m.err != nil {
		b.WriteString(m.renderError())
		b.WriteByte('\n')
	}
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderStatus renders the one-line status bar, cut to the terminal width
func (m Model) renderStatus() string {
	status := fmt.Sprintf(" %s  %d cols  %d rows", m.name, m.width, m.table.Len())
	style := m.styles.Status
	if m.output.Overflow > 0 {
		status += fmt.Sprintf("  overflow +%d", m.output.Overflow)
		style = m.styles.Warning
	}
	status = width.Truncate(status, m.width, "…")
	return style.Render(status + strings.Repeat(" ", max(m.width-width.String(status), 0)))
}

// renderError renders the error line
func (m Model) renderError() string {
	return m.styles.Error.Render("Error: " + m.err.Error())
}

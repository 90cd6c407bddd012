package tui

import (
	"fmt"
	"strings"

	"github.com/sancognition/memsniff/internal/output"
)

const rowFormat = "%-8d %-28s %18s %18s"

func (m Model) View() string {
	var b strings.Builder

	title := "memsniff"
	if m.refreshing {
		title += " " + refreshingStyle.Render("(refreshing…)")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("r retry • q quit"))
		return b.String()
	}

	if len(m.records) == 0 && !m.refreshing {
		b.WriteString("No processes available.\n\n")
		b.WriteString(helpStyle.Render("r refresh • q quit"))
		return b.String()
	}

	header := fmt.Sprintf("%-8s %-28s %18s %18s",
		"PID", "PROCESS", "WORKING SET (MIB)", "PRIVATE (MIB)")
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")

	// Keep the cursor inside the visible window.
	visible := m.visibleRows()
	offset := 0
	if m.cursor >= visible {
		offset = m.cursor - visible + 1
	}

	for i := offset; i < len(m.records) && i < offset+visible; i++ {
		r := m.records[i]
		ws := fmt.Sprintf("%.2f", float64(r.WorkingSetBytes)/(1024*1024))
		priv := fmt.Sprintf("%.2f", float64(r.PrivateBytes)/(1024*1024))
		row := fmt.Sprintf(rowFormat, r.PID, output.TruncateName(r.Name), ws, priv)

		switch {
		case i == m.cursor:
			row = tableSelectedStyle.Render(row)
		case r.WorkingSetBytes > 1024*1024*1024:
			row = memHighStyle.Render(row)
		case r.WorkingSetBytes > 512*1024*1024:
			row = memMedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"↑/↓ move • s sort (%s) • r refresh • q quit", m.sortBy)))
	return b.String()
}

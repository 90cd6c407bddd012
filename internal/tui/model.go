package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sancognition/memsniff/internal/proc"
	"github.com/sancognition/memsniff/pkg/model"
)

type sortColumn int

const (
	sortWorkingSet sortColumn = iota
	sortPrivate
)

func (c sortColumn) String() string {
	if c == sortPrivate {
		return "private bytes"
	}
	return "working set"
}

// Model is the bubbletea model for the snapshot browser. It holds one
// collection pass at a time; a new pass runs only when the user asks.
type Model struct {
	records    []model.Record
	err        error
	sortBy     sortColumn
	cursor     int
	width      int
	height     int
	keys       KeyMap
	refreshing bool
}

func New() Model {
	return Model{
		keys:       DefaultKeyMap(),
		refreshing: true,
	}
}

func (m Model) Init() tea.Cmd {
	return takeSnapshot
}

// takeSnapshot runs one collection pass off the update loop.
func takeSnapshot() tea.Msg {
	records, err := proc.Collect()
	return snapshotMsg{records: records, err: err}
}

// Run launches the interactive snapshot browser.
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// visibleRows is how many table rows fit under the title, header and
// help lines.
func (m Model) visibleRows() int {
	rows := m.height - 6
	if rows < 1 {
		if m.height == 0 {
			// No WindowSizeMsg yet (also the case in tests).
			return defaultVisibleRows
		}
		rows = 1
	}
	return rows
}

const defaultVisibleRows = 20

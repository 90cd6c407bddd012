package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sancognition/memsniff/pkg/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case snapshotMsg:
		m.refreshing = false
		m.err = msg.err
		if msg.err == nil {
			m.records = sortRecords(msg.records, m.sortBy)
			if m.cursor >= len(m.records) && len(m.records) > 0 {
				m.cursor = len(m.records) - 1
			}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Sort):
			if m.sortBy == sortWorkingSet {
				m.sortBy = sortPrivate
			} else {
				m.sortBy = sortWorkingSet
			}
			m.records = sortRecords(m.records, m.sortBy)
			m.cursor = 0
		case key.Matches(msg, m.keys.Refresh):
			if !m.refreshing {
				m.refreshing = true
				return m, takeSnapshot
			}
		}
	}

	return m, nil
}

func sortRecords(records []model.Record, by sortColumn) []model.Record {
	sorted := make([]model.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if by == sortPrivate {
			return sorted[i].PrivateBytes > sorted[j].PrivateBytes
		}
		return sorted[i].WorkingSetBytes > sorted[j].WorkingSetBytes
	})
	return sorted
}

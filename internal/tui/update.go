package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgReportsLoaded:
		m.reports = msg.Reports
		m.loaded = true
		m.err = nil
		m.refresh()
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.loaded = true
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateLayoutSizes()
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.table.MoveUp(m.table.Height())
	case key.Matches(msg, m.keys.NextPage):
		m.table.MoveDown(m.table.Height())
	case key.Matches(msg, m.keys.Top):
		m.table.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.table.GotoBottom()
	case key.Matches(msg, m.keys.Detail):
		if m.mode == ModeDetail {
			m.mode = ModeNormal
		} else {
			m.mode = ModeDetail
		}
		m.updateLayoutSizes()
	case key.Matches(msg, m.keys.Sort):
		m.sortMode = m.sortMode.Next()
		m.refresh()
	case key.Matches(msg, m.keys.Filter):
		m.filter = nextCategoryFilter(m.filter)
		m.refresh()
	}
	return m, nil
}

// detailHeight is the number of lines reserved for the detail pane.
const detailHeight = 14

// updateLayoutSizes fits the table into the window.
func (m *Model) updateLayoutSizes() {
	if m.height == 0 {
		return
	}
	// Header, footer and app padding.
	reserved := 8
	if m.help.ShowAll {
		reserved += 4
	}
	if m.mode == ModeDetail {
		reserved += detailHeight
	}
	m.table.SetHeight(max(m.height-reserved, 3))
	m.table.SetWidth(max(m.width-4, 20))
}

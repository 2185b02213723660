package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/leadtime/internal/domain"
)

func intPtr(v int) *int { return &v }

func testReports() []domain.ItemReport {
	finished := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	return []domain.ItemReport{
		{
			Key:        "JIRA-10",
			Title:      "Ship it",
			Status:     "Done",
			Category:   domain.CategoryDone,
			Created:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			StartedAt:  time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
			FinishedAt: &finished,
			LeadTime:   intPtr(9),
			CycleTime:  intPtr(14),
			Categories: []domain.DurationEntry{
				domain.NewDurationEntry("in_progress", 48*time.Hour),
				domain.NewDurationEntry("done", 24*time.Hour),
			},
			Actors: []domain.DurationEntry{
				domain.NewDurationEntry("alice", 48*time.Hour),
			},
		},
		{
			Key:       "JIRA-9",
			Title:     "Build it",
			Status:    "In Progress",
			Category:  domain.CategoryInProgress,
			StartedAt: time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
			LeadTime:  intPtr(12),
			Warnings:  []string{"unknown status id: 42"},
		},
		{
			Key:      "JIRA-11",
			Title:    "Plan it",
			Status:   "Open",
			Category: domain.CategoryNew,
		},
	}
}

func loadedModel() *Model {
	reports := testReports()
	m := New("history.yaml", func(context.Context) ([]domain.ItemReport, error) {
		return reports, nil
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(MsgReportsLoaded{Reports: reports})
	return m
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func visibleKeys(m *Model) []string {
	keys := make([]string, 0, len(m.Visible()))
	for _, r := range m.Visible() {
		keys = append(keys, r.Key)
	}
	return keys
}

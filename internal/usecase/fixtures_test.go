package usecase_test

import (
	"time"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/testutil"
)

var est = time.FixedZone("EST", -5*3600)

func at(day, hour int) time.Time {
	return time.Date(2020, 1, day, hour, 0, 0, 0, est)
}

func statusChange(actor string, when time.Time, from, to string) domain.ChangeEvent {
	return domain.ChangeEvent{At: when, Field: domain.FieldStatus, From: from, To: to, Actor: actor}
}

// testHistory holds an epic and two stories. JIRA-2 is done, JIRA-3 is
// still being worked on.
func testHistory() *domain.History {
	release := time.Date(2020, 1, 20, 0, 0, 0, 0, est)
	resolved := at(15, 12)

	return &domain.History{
		Statuses: []domain.Status{
			{ID: "1", Name: "Open"},
			{ID: "2", Name: "In Progress"},
			{ID: "3", Name: "Done"},
		},
		FixVersions: []domain.FixVersion{{ID: "10", Name: "1.0", ReleaseDate: &release}},
		Items: []domain.RawItem{
			{
				Key:      "JIRA-3",
				Title:    "Second story",
				Type:     "Story",
				Creator:  "jane",
				Created:  at(6, 9),
				StatusID: "2",
				Events: []domain.ChangeEvent{
					statusChange("jane", at(7, 9), "1", "2"),
				},
			},
			{
				Key:       "JIRA-2",
				Title:     "First story",
				Type:      "Story",
				Creator:   "john",
				ParentKey: "JIRA-1",
				Created:   at(1, 12),
				StatusID:  "3",
				// Resolution recorded slightly after the status change.
				ResolutionDate: &resolved,
				FixVersionIDs:  []string{"10"},
				Events: []domain.ChangeEvent{
					statusChange("john", at(3, 12), "1", "2"),
					statusChange("john", at(15, 12), "2", "3"),
				},
			},
			{
				Key:      "JIRA-1",
				Title:    "Epic",
				Type:     "Epic",
				Creator:  "john",
				Created:  at(1, 9),
				StatusID: "1",
			},
		},
	}
}

func testOptions() domain.AssembleOptions {
	opts := domain.DefaultAssembleOptions()
	opts.IsWorkDay = domain.NewCalendar(domain.DefaultWeekend(), nil).Predicate()
	return opts
}

func testClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: at(21, 12)}
}

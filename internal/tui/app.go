package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/leadtime/internal/domain"
)

// LoadFunc produces the reports shown by the browser.
type LoadFunc func(ctx context.Context) ([]domain.ItemReport, error)

// Model is the bubbletea model of the report browser.
type Model struct {
	load LoadFunc
	err  error

	// State
	reports []domain.ItemReport
	visible []domain.ItemReport

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	table  table.Model

	title    string
	filter   domain.StatusCategory
	mode     Mode
	sortMode SortMode
	width    int
	height   int
	loaded   bool
}

// New creates a browser titled title that loads its rows through load.
func New(title string, load LoadFunc) *Model {
	styles := DefaultStyles()

	ts := table.DefaultStyles()
	ts.Header = styles.TableHeader
	ts.Cell = styles.TableCell
	ts.Selected = styles.TableSelected

	t := table.New(
		table.WithColumns(tableColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(ts),
	)

	return &Model{
		load:   load,
		keys:   DefaultKeyMap(),
		styles: styles,
		help:   help.New(),
		table:  t,
		title:  title,
	}
}

// Run starts the browser in the alternate screen and blocks until it exits.
func Run(title string, load LoadFunc) error {
	p := tea.NewProgram(New(title, load), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.loadReports()
}

// loadReports returns a command that runs the load function.
func (m *Model) loadReports() tea.Cmd {
	return func() tea.Msg {
		if m.load == nil {
			return MsgReportsLoaded{}
		}
		reports, err := m.load(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgReportsLoaded{Reports: reports}
	}
}

// Selected returns the report under the cursor, or nil when the table is empty.
func (m *Model) Selected() *domain.ItemReport {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return nil
	}
	return &m.visible[i]
}

// Visible returns the filtered and sorted rows in display order.
func (m *Model) Visible() []domain.ItemReport {
	return m.visible
}

// refresh rebuilds the visible rows from the current filter and sort mode.
func (m *Model) refresh() {
	visible := make([]domain.ItemReport, 0, len(m.reports))
	for _, r := range m.reports {
		if m.filter != "" && r.Category != m.filter {
			continue
		}
		visible = append(visible, r)
	}

	slices.SortStableFunc(visible, func(a, b domain.ItemReport) int {
		switch m.sortMode {
		case SortByLead:
			if c := compareDaysDesc(a.LeadTime, b.LeadTime); c != 0 {
				return c
			}
		case SortByCycle:
			if c := compareDaysDesc(a.CycleTime, b.CycleTime); c != 0 {
				return c
			}
		case SortByKey:
		}
		return domain.CompareKeys(a.Key, b.Key)
	})

	m.visible = visible
	rows := make([]table.Row, 0, len(visible))
	for i := range visible {
		rows = append(rows, tableRow(&visible[i]))
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c < 0 || c >= len(rows) {
		m.table.SetCursor(0)
	}
}

// compareDaysDesc orders larger values first and missing values last.
func compareDaysDesc(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a > *b:
		return -1
	case *a < *b:
		return 1
	default:
		return 0
	}
}

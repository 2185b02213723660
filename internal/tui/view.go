package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/leadtime/internal/domain"
)

const dateLayout = "2006-01-02"

func tableColumns() []table.Column {
	return []table.Column{
		{Title: "Key", Width: 12},
		{Title: "Title", Width: 32},
		{Title: "Status", Width: 16},
		{Title: "Started", Width: 10},
		{Title: "Finished", Width: 10},
		{Title: "Lead", Width: 5},
		{Title: "Cycle", Width: 5},
	}
}

func tableRow(r *domain.ItemReport) table.Row {
	return table.Row{
		r.Key,
		r.Title,
		CategoryIcon(r.Category) + " " + r.Status,
		formatDate(&r.StartedAt),
		formatDate(r.FinishedAt),
		formatDays(r.LeadTime),
		formatDays(r.CycleTime),
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.loaded {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.WarningMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
		return m.styles.App.Render(b.String())
	}

	if len(m.visible) == 0 {
		b.WriteString(m.styles.HeaderText.Render("No items"))
	} else {
		b.WriteString(m.table.View())
	}

	if m.mode == ModeDetail {
		if r := m.Selected(); r != nil {
			b.WriteString("\n")
			b.WriteString(m.viewDetail(r))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("leadtime")
	if m.title != "" {
		title += " " + m.styles.HeaderText.Render(m.title)
	}

	filter := "all"
	if m.filter != "" {
		filter = m.filter.Display()
	}
	info := m.styles.HeaderText.Render(fmt.Sprintf("%d/%d items · sort: %s · category: %s",
		len(m.visible), len(m.reports), m.sortMode, filter))

	return lipgloss.JoinVertical(lipgloss.Left, title, info)
}

func (m *Model) viewDetail(r *domain.ItemReport) string {
	var lines []string
	lines = append(lines, m.styles.DetailTitle.Render(r.Key+"  "+r.Title))

	field := func(label, value string) {
		lines = append(lines, m.styles.DetailLabel.Render(label)+m.styles.DetailValue.Render(value))
	}
	field("Status", m.styles.CategoryStyle(r.Category).Render(
		fmt.Sprintf("%s %s (%s)", CategoryIcon(r.Category), r.Status, r.Category.Display())))
	if r.Type != "" {
		field("Type", r.Type)
	}
	if r.Parent != "" {
		field("Parent", r.Parent)
	}
	if r.FixVersion != "" {
		field("Fix version", r.FixVersion)
	}
	field("Created", formatDate(&r.Created))
	field("Started", formatDate(&r.StartedAt))
	field("Finished", formatDate(r.FinishedAt))
	field("Lead/Cycle", formatDays(r.LeadTime)+" / "+formatDays(r.CycleTime)+" days")

	if len(r.Categories) > 0 {
		lines = append(lines, "")
		lines = append(lines, m.durationLines(r.Categories, func(name string) lipgloss.Style {
			return m.styles.CategoryStyle(domain.StatusCategory(name))
		})...)
	}
	if len(r.Actors) > 0 {
		lines = append(lines, "")
		lines = append(lines, m.durationLines(r.Actors, func(string) lipgloss.Style {
			return m.styles.DetailBar
		})...)
	}
	for _, w := range r.Warnings {
		lines = append(lines, m.styles.WarningMsg.Render("! "+w))
	}

	width := m.width - 6
	if width < 20 {
		return m.styles.Detail.Render(strings.Join(lines, "\n"))
	}
	return m.styles.Detail.Width(width).Render(strings.Join(lines, "\n"))
}

// barWidth is the width of the longest duration bar in the detail pane.
const barWidth = 30

// durationLines renders entries as labelled bars scaled to the longest entry.
func (m *Model) durationLines(entries []domain.DurationEntry, style func(string) lipgloss.Style) []string {
	var longest time.Duration
	for _, e := range entries {
		longest = max(longest, e.Duration)
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		n := 0
		if longest > 0 {
			n = int(int64(barWidth) * int64(e.Duration) / int64(longest))
		}
		bar := style(e.Name).Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("%s%s %s",
			m.styles.DetailLabel.Render(e.Name), bar, formatDuration(e)))
	}
	return lines
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func formatDays(d *int) string {
	if d == nil {
		return "-"
	}
	return strconv.Itoa(*d)
}

func formatDuration(e domain.DurationEntry) string {
	return strconv.FormatFloat(e.Days, 'f', 1, 64) + "d"
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/leadtime/internal/domain"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

const dateLayout = "2006-01-02"

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// validateFormat returns an error for formats other than table, json and yaml.
func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml): %w", format, domain.ErrInvalidArgument)
	}
}

// writeEncoded writes v as JSON or YAML.
func writeEncoded(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return validateFormat(format)
	}
	return nil
}

// writeTable renders rows under headers with a rounded border.
func writeTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, _ = fmt.Fprintln(w, t.Render())
}

// writeReports renders one row per item.
func writeReports(w io.Writer, reports []domain.ItemReport) {
	rows := make([][]string, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		rows = append(rows, []string{
			r.Key,
			truncate(r.Title, 40),
			r.Status,
			r.Category.Display(),
			formatDate(&r.StartedAt),
			formatDate(r.FinishedAt),
			formatDays(r.LeadTime),
			formatDays(r.CycleTime),
		})
	}
	writeTable(w, []string{"KEY", "TITLE", "STATUS", "CATEGORY", "STARTED", "FINISHED", "LEAD", "CYCLE"}, rows)
}

// writeReportDetail prints one item with its duration breakdowns.
func writeReportDetail(w io.Writer, r *domain.ItemReport) {
	_, _ = fmt.Fprintf(w, "%s: %s\n", r.Key, r.Title)
	_, _ = fmt.Fprintf(w, "  Status:    %s (%s)\n", r.Status, r.Category.Display())
	if r.Type != "" {
		_, _ = fmt.Fprintf(w, "  Type:      %s\n", r.Type)
	}
	if r.Parent != "" {
		_, _ = fmt.Fprintf(w, "  Parent:    %s\n", r.Parent)
	}
	if r.FixVersion != "" {
		_, _ = fmt.Fprintf(w, "  Version:   %s\n", r.FixVersion)
	}
	_, _ = fmt.Fprintf(w, "  Created:   %s\n", formatDate(&r.Created))
	_, _ = fmt.Fprintf(w, "  Started:   %s\n", formatDate(&r.StartedAt))
	_, _ = fmt.Fprintf(w, "  Finished:  %s\n", formatDate(r.FinishedAt))
	_, _ = fmt.Fprintf(w, "  Lead time: %s\n", formatDays(r.LeadTime))
	_, _ = fmt.Fprintf(w, "  Cycle:     %s\n", formatDays(r.CycleTime))
	if r.DaysEstimated > 0 {
		_, _ = fmt.Fprintf(w, "  Estimate:  %s\n", formatFloatDays(r.DaysEstimated))
	}

	if len(r.Categories) > 0 {
		_, _ = fmt.Fprintln(w)
		writeTable(w, []string{"CATEGORY", "DAYS"}, durationRows(r.Categories, func(name string) string {
			return domain.StatusCategory(name).Display()
		}))
	}
	if len(r.Actors) > 0 {
		_, _ = fmt.Fprintln(w)
		writeTable(w, []string{"ACTOR", "DAYS"}, durationRows(r.Actors, func(name string) string {
			if name == "" {
				return "(unassigned)"
			}
			return name
		}))
	}
	for _, warning := range r.Warnings {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}

func durationRows(entries []domain.DurationEntry, label func(string) string) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{label(e.Name), formatFloatDays(e.Days)})
	}
	return rows
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

func formatFloatDays(d float64) string {
	return strconv.FormatFloat(d, 'f', 2, 64)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}

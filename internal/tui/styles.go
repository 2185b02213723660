package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/leadtime/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Category colors
	New        lipgloss.Color
	InProgress lipgloss.Color
	OnHold     lipgloss.Color
	Done       lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	New:        lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	OnHold:     lipgloss.Color("#E17055"), // Orange
	Done:       lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Table
	TableHeader   lipgloss.Style
	TableCell     lipgloss.Style
	TableSelected lipgloss.Style

	// Category badges
	CategoryNew        lipgloss.Style
	CategoryInProgress lipgloss.Style
	CategoryOnHold     lipgloss.Style
	CategoryDone       lipgloss.Style
	CategoryUnknown    lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Warning line
	WarningMsg lipgloss.Style

	// Detail view
	Detail      lipgloss.Style
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
	DetailBar   lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Colors.Muted).
			BorderBottom(true),

		TableCell: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TableSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		CategoryNew: lipgloss.NewStyle().
			Foreground(Colors.New),

		CategoryInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		CategoryOnHold: lipgloss.NewStyle().
			Foreground(Colors.OnHold),

		CategoryDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		CategoryUnknown: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		WarningMsg: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Detail: lipgloss.NewStyle().
			Padding(0, 1).
			MarginTop(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(12),

		DetailValue: lipgloss.NewStyle(),

		DetailBar: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
	}
}

// CategoryStyle returns the style for a given category.
func (s Styles) CategoryStyle(c domain.StatusCategory) lipgloss.Style {
	switch c {
	case domain.CategoryNew:
		return s.CategoryNew
	case domain.CategoryInProgress:
		return s.CategoryInProgress
	case domain.CategoryOnHold:
		return s.CategoryOnHold
	case domain.CategoryDone:
		return s.CategoryDone
	default:
		return s.CategoryUnknown
	}
}

// CategoryIcon returns an icon for a given category.
func CategoryIcon(c domain.StatusCategory) string {
	switch c {
	case domain.CategoryNew:
		return "○"
	case domain.CategoryInProgress:
		return "●"
	case domain.CategoryOnHold:
		return "◌"
	case domain.CategoryDone:
		return "✓"
	default:
		return "?"
	}
}

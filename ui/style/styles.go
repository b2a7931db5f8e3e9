// Package style holds the picker styles and the entity color palette.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the picker.
type Styles struct {
	// Rows
	Row         lipgloss.Style
	RowFocused  lipgloss.Style
	Cell        lipgloss.Style
	Checked     lipgloss.Style
	Unchecked   lipgloss.Style
	Placeholder lipgloss.Style

	// Header and chrome
	Header     lipgloss.Style
	FilterBar  lipgloss.Style
	StatusBar  lipgloss.Style
	ActiveChip lipgloss.Style // label currently used as a filter

	// Misc
	Muted lipgloss.Style
	Error lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Row: lipgloss.NewStyle(),
		RowFocused: lipgloss.NewStyle().
			Background(lipgloss.Color("236")),
		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Checked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true),
		Unchecked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")),

		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true),
		FilterBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		ActiveChip: lipgloss.NewStyle().
			Underline(true),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Counter     lipgloss.Style
	Page        lipgloss.Style
	PageTitle   lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusArmed lipgloss.Style
	StatusStuck lipgloss.Style
	DotFocused  lipgloss.Style
	Dot         lipgloss.Style
	Help        lipgloss.Style
	HelpBox     lipgloss.Style
	Error       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Page: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		PageTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusArmed: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),  // green
		StatusStuck: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		DotFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Dot:         lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Help:        lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Page        lipgloss.Style
	PageNumber  lipgloss.Style
	Cover       lipgloss.Style
	CoverTitle  lipgloss.Style
	SheetLight  lipgloss.Style
	SheetDark   lipgloss.Style
	Status      lipgloss.Style
	Chapter     lipgloss.Style
	Help        lipgloss.Style
	Dim         lipgloss.Style
	TOCBox      lipgloss.Style
	TOCCursor   lipgloss.Style
	TOCEntry    lipgloss.Style
	TOCCurrent  lipgloss.Style
	SoundFlash  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Page: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		PageNumber: lipgloss.NewStyle().
			Faint(true).
			Align(lipgloss.Center),
		Cover: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("94")).
			Padding(2, 6),
		CoverTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		SheetLight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		SheetDark: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Chapter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Help:  lipgloss.NewStyle().Faint(true),
		Dim:   lipgloss.NewStyle().Faint(true),
		TOCBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		TOCCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		TOCEntry: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		TOCCurrent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		SoundFlash: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
	}
}

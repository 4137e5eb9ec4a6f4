// Package ui provides the text styling for the blueprint CLI.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Accent      = lipgloss.Color("#8BC34A") // Lime Green
	Muted       = lipgloss.Color("#6b7685")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Styles groups the rendering styles used by the CLI.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Defined lipgloss.Style
	Open    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the standard styles. NO_COLOR strips every
// foreground so output stays plain.
func DefaultStyles() Styles {
	s := Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(Info).MarginTop(1),
		Label:   lipgloss.NewStyle().Foreground(Muted).Width(14),
		Value:   lipgloss.NewStyle(),
		Defined: lipgloss.NewStyle().Bold(true).Foreground(Accent),
		Open:    lipgloss.NewStyle().Foreground(Muted),
		Warning: lipgloss.NewStyle().Foreground(Warning),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(Destructive),
	}
	if noColor() {
		plain := lipgloss.NewStyle()
		s.Title = plain.Bold(true)
		s.Heading = plain.MarginTop(1)
		s.Label = plain.Width(14)
		s.Defined = plain
		s.Open = plain
		s.Warning = plain
		s.Error = plain
	}
	return s
}

// Row renders a "label  value" line.
func (s Styles) Row(label, value string) string {
	return s.Label.Render(label) + s.Value.Render(value)
}

func noColor() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}

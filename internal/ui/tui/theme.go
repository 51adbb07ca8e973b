package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	Near       lipgloss.Style
	Inflection lipgloss.Style
	Far        lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Near:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Inflection: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Far:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

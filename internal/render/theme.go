package render

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Muted lipgloss.Style
	Card  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true),
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Muted: lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

package viz

import (
	"github.com/charmbracelet/lipgloss"
)

var canvasStyle = lipgloss.NewStyle().Padding(1, 2)

// The remaining styles pick their colors up from CurrentTheme at render
// time, so a theme switch shows on the next frame.

func headerText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Primary).MarginBottom(1).Render(s)
}

func labelText(s string) string {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(12).Render(s)
}

func valueText(s string) string {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text).Render(s)
}

func mutedText(s string) string {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(s)
}

func warnText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Warning).Render(s)
}

func graphText(s string) string {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Padding(1, 0).Render(s)
}

func statsPanel(s string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(CurrentTheme.Muted).
		Padding(1, 2).
		Width(42).
		Render(s)
}

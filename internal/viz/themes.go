package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a color scheme for the live view. The t key cycles through the
// registered themes.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("86"),
		Secondary: lipgloss.Color("49"),
		Text:      lipgloss.Color("252"),
		Muted:     lipgloss.Color("240"),
		Warning:   lipgloss.Color("214"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Text:      lipgloss.Color("#88ff88"),
		Muted:     lipgloss.Color("#005500"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#00a8cc"),
		Secondary: lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	CurrentTheme = ThemeMinimal

	Themes = []Theme{
		ThemeMinimal,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns the theme with the given name, falling back to minimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMinimal
}

// SetTheme switches the current theme by name.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one, wrapping around.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = ThemeMinimal
}

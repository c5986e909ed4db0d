package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines a color scheme for the explorer
type Theme struct {
	Name   string
	Header lipgloss.Color
	Label  lipgloss.Color
	Value  lipgloss.Color
	Active lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
}

// Available themes
var (
	ThemeDefault = Theme{
		Name:   "default",
		Header: lipgloss.Color("86"),
		Label:  lipgloss.Color("245"),
		Value:  lipgloss.Color("252"),
		Active: lipgloss.Color("205"),
		Muted:  lipgloss.Color("240"),
		Error:  lipgloss.Color("203"),
	}

	ThemePhosphor = Theme{
		Name:   "phosphor",
		Header: lipgloss.Color("#00ff00"), // Green phosphor
		Label:  lipgloss.Color("#00aa00"),
		Value:  lipgloss.Color("#88ff88"),
		Active: lipgloss.Color("#ffff00"),
		Muted:  lipgloss.Color("#005500"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Header: lipgloss.Color("#00a8cc"), // Ocean blue
		Label:  lipgloss.Color("#4488aa"),
		Value:  lipgloss.Color("#e0f0ff"),
		Active: lipgloss.Color("#ffd700"),
		Muted:  lipgloss.Color("#336688"),
		Error:  lipgloss.Color("#ff4444"),
	}

	// All available themes, in cycling order
	Themes = []Theme{
		ThemeDefault,
		ThemePhosphor,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to the default
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// ThemeNames returns the list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

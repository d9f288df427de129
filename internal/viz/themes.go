package viz

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme defines color scheme for playback
type Theme struct {
	Name       string
	Head       lipgloss.Color
	Trail      lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
}

// Available themes
var (
	// Classic mirrors a matplotlib figure: red head, blue trail.
	ThemeClassic = Theme{
		Name:       "classic",
		Head:       lipgloss.Color("#ff2222"),
		Trail:      lipgloss.Color("#3377ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Head:       lipgloss.Color("#88ff88"),
		Trail:      lipgloss.Color("#00cc00"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Warning:    lipgloss.Color("#ffff00"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Head:       lipgloss.Color("#feca57"),
		Trail:      lipgloss.Color("#ff6b6b"), // Coral
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Warning:    lipgloss.Color("#ffc048"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Fade blends from the background (alpha 0) to the trail colour (alpha 1).
func (t Theme) Fade(alpha float64) lipgloss.Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	bg, err := colorful.Hex(string(t.Background))
	if err != nil {
		return t.Trail
	}
	fg, err := colorful.Hex(string(t.Trail))
	if err != nil {
		return t.Trail
	}
	return lipgloss.Color(bg.BlendRgb(fg, alpha).Clamped().Hex())
}

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, footer and rail
	SurfaceAlt string // Cards and overlays
	FocusBg    string // Focused card and rail entry

	// Selection colors
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Weather chip colors keyed by condition
	WeatherColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Rail: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),

		weatherColors: t.WeatherColors,
		muted:         t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Rail     lipgloss.Style
	Modal    lipgloss.Style

	weatherColors map[string]string
	muted         string
}

// WeatherStyle returns the chip style for a weather condition.
func (s Styles) WeatherStyle(condition string) lipgloss.Style {
	color := s.weatherColors[condition]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)
}

// Theme definitions

var themes = map[string]Theme{
	"Midnight": midnightTheme(),
	"Aurora":   auroraTheme(),
	"Ember":    emberTheme(),
}

var themeOrder = []string{"Midnight", "Aurora", "Ember"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return midnightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func midnightTheme() Theme {
	// Tailwind indigo/slate, the launcher's living-room look
	return Theme{
		Name: "Midnight",

		Background: "#0b1020",
		Surface:    "#111827", // gray-900
		SurfaceAlt: "#1e1b4b", // indigo-950
		FocusBg:    "#312e81", // indigo-900

		SelectionBg:   "#4f46e5", // indigo-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		BorderFocus: "#a5b4fc", // indigo-300

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#818cf8", // indigo-400
		Success: "#22c55e", // green-500
		Warning: "#facc15", // yellow-400
		Danger:  "#ef4444", // red-500
		Info:    "#38bdf8", // sky-400

		WeatherColors: map[string]string{
			"sunny":  "#facc15", // yellow-400
			"cloudy": "#9ca3af", // gray-400
			"rainy":  "#60a5fa", // blue-400
			"snowy":  "#67e8f9", // cyan-300
			"windy":  "#2dd4bf", // teal-400
		},
	}
}

func auroraTheme() Theme {
	// Cool greens and violets
	return Theme{
		Name: "Aurora",

		Background: "#05140f",
		Surface:    "#0a1f1a",
		SurfaceAlt: "#102a24",
		FocusBg:    "#14532d", // green-900

		SelectionBg:   "#0d9488", // teal-600
		SelectionText: "#ecfeff", // cyan-50

		Border:      "#1f4d43",
		BorderMuted: "#102a24",
		BorderFocus: "#5eead4", // teal-300

		Text:    "#e6fffa",
		Muted:   "#8fbcb0",
		Faint:   "#5b8078",
		Accent:  "#a78bfa", // violet-400
		Success: "#4ade80", // green-400
		Warning: "#fde047", // yellow-300
		Danger:  "#fb7185", // rose-400
		Info:    "#5eead4", // teal-300

		WeatherColors: map[string]string{
			"sunny":  "#fde047",
			"cloudy": "#a8b8b3",
			"rainy":  "#7dd3fc",
			"snowy":  "#e0f2fe",
			"windy":  "#5eead4",
		},
	}
}

func emberTheme() Theme {
	// Warm ambers over charcoal
	return Theme{
		Name: "Ember",

		Background: "#120c0a",
		Surface:    "#1c1412",
		SurfaceAlt: "#2a1d18",
		FocusBg:    "#431407", // orange-950

		SelectionBg:   "#c2410c", // orange-700
		SelectionText: "#fff7ed", // orange-50

		Border:      "#57392c",
		BorderMuted: "#2a1d18",
		BorderFocus: "#fdba74", // orange-300

		Text:    "#fdf4ec",
		Muted:   "#c4a898",
		Faint:   "#8a7266",
		Accent:  "#fb923c", // orange-400
		Success: "#a3e635", // lime-400
		Warning: "#fbbf24", // amber-400
		Danger:  "#f87171", // red-400
		Info:    "#fcd34d", // amber-300

		WeatherColors: map[string]string{
			"sunny":  "#fbbf24",
			"cloudy": "#a8a29e",
			"rainy":  "#93c5fd",
			"snowy":  "#f5f5f4",
			"windy":  "#fdba74",
		},
	}
}

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// palette is the set of colors a theme is built from
type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	danger    lipgloss.Color
	warning   lipgloss.Color
	success   lipgloss.Color
	muted     lipgloss.Color
	border    lipgloss.Color
	text      lipgloss.Color
	inverse   lipgloss.Color
}

var (
	lightPalette = palette{
		primary:   lipgloss.Color("#1D4ED8"), // Blue
		secondary: lipgloss.Color("#0369A1"), // Sky
		danger:    lipgloss.Color("#DC2626"),
		warning:   lipgloss.Color("#B45309"),
		success:   lipgloss.Color("#15803D"),
		muted:     lipgloss.Color("#6B7280"),
		border:    lipgloss.Color("#93C5FD"),
		text:      lipgloss.Color("#111827"),
		inverse:   lipgloss.Color("#FFFFFF"),
	}

	darkPalette = palette{
		primary:   lipgloss.Color("#00BFFF"), // Deep sky blue
		secondary: lipgloss.Color("#87CEEB"), // Sky blue
		danger:    lipgloss.Color("#FF6B6B"),
		warning:   lipgloss.Color("#FFD93D"),
		success:   lipgloss.Color("#6BCF7F"),
		muted:     lipgloss.Color("#9CA3AF"),
		border:    lipgloss.Color("#4A90E2"),
		text:      lipgloss.Color("#FFFFFF"),
		inverse:   lipgloss.Color("#0B1220"),
	}
)

// Styles holds every style the views use, derived from one theme
type Styles struct {
	Mode models.ThemeMode

	Title         lipgloss.Style
	ActiveTitle   lipgloss.Style
	Pane          lipgloss.Style
	ActivePane    lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Muted         lipgloss.Style
	Success       lipgloss.Style
	Error         lipgloss.Style
	Help          lipgloss.Style
	SectionHeader lipgloss.Style
	SearchBox     lipgloss.Style
	Selected      lipgloss.Style
	Badge         lipgloss.Style

	AlertExtreme  lipgloss.Style
	AlertSevere   lipgloss.Style
	AlertModerate lipgloss.Style
	AlertMinor    lipgloss.Style

	palette palette
}

// NewStyles builds the styles for a theme mode
func NewStyles(mode models.ThemeMode) Styles {
	p := lightPalette
	if mode == models.ThemeDark {
		p = darkPalette
	}

	return Styles{
		Mode: mode,

		// Title styles (no padding - Pane already has padding)
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),

		ActiveTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.inverse).
			Background(p.primary).
			Padding(0, 1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			MarginRight(1),

		ActivePane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.primary).
			Padding(0, 1).
			MarginRight(1),

		Label: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(p.text),

		Muted: lipgloss.NewStyle().
			Foreground(p.muted),

		Success: lipgloss.NewStyle().
			Foreground(p.success),

		Error: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(1, 0, 0, 0),

		SectionHeader: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginTop(1),

		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.secondary).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),

		AlertExtreme: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),

		AlertSevere: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8C42")).
			Bold(true),

		AlertModerate: lipgloss.NewStyle().
			Foreground(p.warning).
			Bold(true),

		AlertMinor: lipgloss.NewStyle().
			Foreground(p.success),

		palette: p,
	}
}

// Colored renders s in a raw hex color, as produced by the insights levels
func (s Styles) Colored(color, text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(text)
}

// Spinner is the spinner style for the theme
func (s Styles) Spinner() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.palette.primary)
}

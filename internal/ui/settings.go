package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// setting is one row of the settings panel
type setting struct {
	label   string
	options [2]string
	// selected reports which option is active
	selected func(models.Preferences) int
	// toggle switches to the other option
	toggle func(Session, models.Preferences)
}

var settings = []setting{
	{
		label:   "Theme",
		options: [2]string{"Light", "Dark"},
		selected: func(p models.Preferences) int {
			return boolIndex(p.Theme.Mode == models.ThemeDark)
		},
		toggle: func(s Session, _ models.Preferences) { s.ToggleTheme() },
	},
	{
		label:   "Temperature",
		options: [2]string{"°C", "°F"},
		selected: func(p models.Preferences) int {
			return boolIndex(p.Units.Temperature == models.Fahrenheit)
		},
		toggle: func(s Session, p models.Preferences) {
			u := models.Fahrenheit
			if p.Units.Temperature == models.Fahrenheit {
				u = models.Celsius
			}
			s.UpdateUnits(models.UnitsPatch{Temperature: &u})
		},
	},
	{
		label:   "Wind Speed",
		options: [2]string{"km/h", "mph"},
		selected: func(p models.Preferences) int {
			return boolIndex(p.Units.Wind == models.Mph)
		},
		toggle: func(s Session, p models.Preferences) {
			u := models.Mph
			if p.Units.Wind == models.Mph {
				u = models.Kmh
			}
			s.UpdateUnits(models.UnitsPatch{Wind: &u})
		},
	},
	{
		label:   "Pressure",
		options: [2]string{"mb", "in"},
		selected: func(p models.Preferences) int {
			return boolIndex(p.Units.Pressure == models.Inches)
		},
		toggle: func(s Session, p models.Preferences) {
			u := models.Inches
			if p.Units.Pressure == models.Inches {
				u = models.Millibars
			}
			s.UpdateUnits(models.UnitsPatch{Pressure: &u})
		},
	},
	{
		label:   "Visibility",
		options: [2]string{"km", "miles"},
		selected: func(p models.Preferences) int {
			return boolIndex(p.Units.Visibility == models.Miles)
		},
		toggle: func(s Session, p models.Preferences) {
			u := models.Miles
			if p.Units.Visibility == models.Miles {
				u = models.Kilometers
			}
			s.UpdateUnits(models.UnitsPatch{Visibility: &u})
		},
	},
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// handleSettingsKeys handles keyboard input in settings state
func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", ",", "o", "q":
		m.state = StateDashboard
	case "up", "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case "down", "j":
		if m.settingsCursor < len(settings)-1 {
			m.settingsCursor++
		}
	case "enter", " ", "left", "right", "h", "l":
		m.applySetting(m.settingsCursor)
	case "t":
		m.applySetting(0)
	case "1", "2", "3", "4":
		m.applySetting(int(msg.String()[0] - '0'))
	}
	return m, nil
}

func (m *Model) applySetting(i int) {
	settings[i].toggle(m.store, m.session.Preferences)
	m.refresh()
}

// viewSettings renders the settings panel
func (m Model) viewSettings() string {
	prefs := m.session.Preferences

	var rows []string
	for i, s := range settings {
		cursor := "  "
		label := m.styles.Label.Render(fmt.Sprintf("%-12s", s.label))
		if i == m.settingsCursor {
			cursor = m.styles.Selected.Render("▸ ")
		}

		var opts []string
		for j, o := range s.options {
			if j == s.selected(prefs) {
				opts = append(opts, m.styles.ActiveTitle.Render(o))
			} else {
				opts = append(opts, m.styles.Muted.Render(" "+o+" "))
			}
		}
		rows = append(rows, cursor+label+" "+strings.Join(opts, " "))
	}

	panel := m.styles.Pane.Render(
		m.styles.Title.Render("⚙ Settings") + "\n\n" + strings.Join(rows, "\n"),
	)
	help := m.styles.Help.Render("↑/↓: Select • Enter/←/→: Toggle • T: Theme • 1-4: Units • Esc: Back")

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", panel, help)
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/insights"
	"github.com/ngmaloney/weather-terminal/internal/units"
)

// renderCurrentPane renders the current conditions pane
func (m Model) renderCurrentPane(width int) string {
	snap := m.session.Snapshot
	cur := snap.Current
	u := m.session.Preferences.Units
	s := m.styles

	// Content width is the pane width less border (2) and padding (2)
	wrap := lipgloss.NewStyle().Width(max(width-4, 20))

	var content strings.Builder
	content.WriteString(s.Title.Render("Current Weather"))
	content.WriteString("\n\n")

	icon := insights.WeatherIcon(cur.Condition.Code, cur.Daytime())
	content.WriteString(fmt.Sprintf("%s  %s\n", icon, s.Value.Bold(true).Render(units.FormatTemperature(cur.TempC, cur.TempF, u))))

	// Feels-like is derived locally and shown in the selected unit
	feels := insights.FeelsLike(cur.TempC, cur.Humidity, cur.WindKph)
	content.WriteString(s.Muted.Render("Feels like " + units.FormatTemperature(feels, units.CelsiusToFahrenheit(feels), u)))
	content.WriteString("\n")
	content.WriteString(s.Value.Render(cur.Condition.Text))
	content.WriteString("\n")
	content.WriteString(s.Muted.Render(locationLine(snap.Location.Name, snap.Location.Region, snap.Location.Country)))
	content.WriteString("\n\n")

	metric := func(label, value string) {
		content.WriteString(s.Label.Render(fmt.Sprintf("%-11s", label)))
		content.WriteString(s.Value.Render(value))
		content.WriteString("\n")
	}
	metric("Wind", units.FormatWindSpeed(cur.WindKph, cur.WindMph, u))
	metric("Pressure", units.FormatPressure(cur.PressureMb, cur.PressureIn, u))
	metric("Visibility", units.FormatVisibility(cur.VisKm, cur.VisMiles, u))
	metric("Humidity", fmt.Sprintf("%.0f%%", cur.Humidity))

	content.WriteString("\n")
	content.WriteString(s.Label.Render("👕 Clothing"))
	content.WriteString("\n")
	content.WriteString(wrap.Render(insights.ClothingSuggestion(cur.TempC)))
	content.WriteString("\n")
	content.WriteString(s.Label.Render("🎯 Activities"))
	content.WriteString("\n")
	content.WriteString(wrap.Render(insights.ActivityRecommendation(cur.TempC, cur.Condition.Text)))

	return s.Pane.Width(width).Render(content.String())
}

// locationLine joins the non-empty location parts
func locationLine(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/insights"
	"github.com/ngmaloney/weather-terminal/internal/units"
)

// renderEnvironmentPane renders humidity, wind, pressure, visibility, UV,
// cloud cover and air quality with their descriptions
func (m Model) renderEnvironmentPane(width int) string {
	cur := m.session.Snapshot.Current
	u := m.session.Preferences.Units
	s := m.styles

	var content strings.Builder
	content.WriteString(s.Title.Render("Environmental Data"))
	content.WriteString("\n\n")

	row := func(label, value, note string) {
		content.WriteString(s.Label.Render(fmt.Sprintf("%-11s", label)))
		content.WriteString(s.Value.Render(value))
		if note != "" {
			content.WriteString("  ")
			content.WriteString(s.Muted.Render(note))
		}
		content.WriteString("\n")
	}

	row("Humidity", fmt.Sprintf("%.0f%%", cur.Humidity), insights.HumidityDescription(cur.Humidity))
	row("Wind", units.FormatWindSpeed(cur.WindKph, cur.WindMph, u), fmt.Sprintf("%s %s", insights.WindArrow(cur.WindDegree), cur.WindDir))
	row("Pressure", units.FormatPressure(cur.PressureMb, cur.PressureIn, u), insights.PressureDescription(cur.PressureMb))
	row("Visibility", units.FormatVisibility(cur.VisKm, cur.VisMiles, u), insights.VisibilityDescription(cur.VisKm))

	uv := insights.UVLevel(cur.UV)
	content.WriteString(s.Label.Render(fmt.Sprintf("%-11s", "UV Index")))
	content.WriteString(s.Value.Render(fmt.Sprintf("%g - ", cur.UV)))
	content.WriteString(s.Colored(uv.Color, uv.Label))
	content.WriteString("  ")
	content.WriteString(s.Muted.Render(insights.UVRisk(cur.UV)))
	content.WriteString("\n")

	row("Cloud", fmt.Sprintf("%.0f%%", cur.Cloud), insights.CloudDescription(cur.Cloud))

	if aq := cur.AirQuality; aq != nil {
		if level, ok := insights.EPAIndexLevel(aq.USEPAIndex); ok {
			content.WriteString(s.Label.Render(fmt.Sprintf("%-11s", "Air Quality")))
			content.WriteString(s.Colored(level.Color, level.Label))
			content.WriteString("  ")
			content.WriteString(s.Muted.Render(fmt.Sprintf("PM2.5 %.1f · PM10 %.1f", aq.PM25, aq.PM10)))
			content.WriteString("\n")
		}
	}

	return s.Pane.Width(width).Render(strings.TrimRight(content.String(), "\n"))
}

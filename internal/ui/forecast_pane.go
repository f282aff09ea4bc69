package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/insights"
	"github.com/ngmaloney/weather-terminal/internal/units"
)

// renderForecastPane renders the tab bar and the active forecast
func (m Model) renderForecastPane(width int) string {
	s := m.styles

	tab := func(label string, pane ActivePane) string {
		if m.activePane == pane {
			return s.ActiveTitle.Render(label)
		}
		return s.Muted.Render(" " + label + " ")
	}
	tabs := tab("Hourly Forecast", PaneHourly) + " " + tab("7-Day Forecast", PaneDaily)

	var body string
	if m.activePane == PaneHourly {
		body = m.renderHourly(width - 4)
	} else {
		body = m.renderDaily()
	}

	return s.ActivePane.Width(width).Render(tabs + "\n\n" + body)
}

// renderHourly renders today's hours as columns, as many as fit
func (m Model) renderHourly(width int) string {
	today, ok := m.session.Snapshot.Today()
	if !ok || len(today.Hours) == 0 {
		return m.styles.Muted.Render("No hourly data available")
	}
	u := m.session.Preferences.Units

	const colWidth = 9
	cols := max(width/colWidth, 1)
	hours := today.Hours
	if len(hours) > cols {
		hours = hours[:cols]
	}

	cell := lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center)
	rows := make([][]string, 5)
	for _, h := range hours {
		rain := ""
		if h.ChanceOfRain > 0 {
			rain = fmt.Sprintf("💧%.0f%%", h.ChanceOfRain)
		}
		rows[0] = append(rows[0], cell.Render(m.styles.Label.Render(units.FormatTime(h.Time))))
		rows[1] = append(rows[1], cell.Render(insights.WeatherIcon(h.Condition.Code, h.IsDay == 1)))
		rows[2] = append(rows[2], cell.Render(m.styles.Value.Bold(true).Render(units.FormatTemperature(h.TempC, h.TempF, u))))
		rows[3] = append(rows[3], cell.Render(m.styles.Muted.Render(units.FormatWindSpeed(h.WindKph, h.WindMph, u))))
		rows[4] = append(rows[4], cell.Render(m.styles.Muted.Render(rain)))
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, r...)
	}
	if len(hours) < len(today.Hours) {
		lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("Showing %d of %d hours; widen the terminal for more", len(hours), len(today.Hours))))
	}
	return strings.Join(lines, "\n")
}

// renderDaily renders one line per forecast day
func (m Model) renderDaily() string {
	days := m.session.Snapshot.Forecast.Days
	if len(days) == 0 {
		return m.styles.Muted.Render("No daily data available")
	}
	u := m.session.Preferences.Units
	s := m.styles

	var lines []string
	for i, d := range days {
		label := units.FormatDate(d.Date)
		if i == 0 {
			label = "Today"
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
			s.Label.Render(fmt.Sprintf("%-12s", label)),
			insights.WeatherIcon(d.Day.Condition.Code, true),
			s.Value.Bold(true).Render(fmt.Sprintf("%6s", units.FormatTemperature(d.Day.MaxTempC, d.Day.MaxTempF, u))),
			s.Muted.Render(fmt.Sprintf("%6s", units.FormatTemperature(d.Day.MinTempC, d.Day.MinTempF, u))),
			s.Muted.Render("wind"),
			s.Value.Render(fmt.Sprintf("%-9s", units.FormatWindSpeed(d.Day.MaxWindKph, d.Day.MaxWindMph, u))),
			s.Muted.Render("rain"),
			s.Value.Render(fmt.Sprintf("%.0f%%", d.Day.DailyChanceOfRain)),
		))
		if d.Day.Condition.Text != "" {
			lines = append(lines, s.Muted.Render("             "+d.Day.Condition.Text))
		}
	}
	return strings.Join(lines, "\n")
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/units"
)

// alertStyle returns the style for an alert severity
func (s Styles) alertStyle(severity models.AlertSeverity) lipgloss.Style {
	switch severity {
	case models.SeverityExtreme:
		return s.AlertExtreme
	case models.SeveritySevere:
		return s.AlertSevere
	case models.SeverityModerate:
		return s.AlertModerate
	case models.SeverityMinor:
		return s.AlertMinor
	default:
		return s.Value
	}
}

// activeAlerts filters the snapshot's alerts to those in effect at the clock's time
func (m Model) activeAlerts() []models.Alert {
	return m.session.Snapshot.ActiveAlerts(m.clock.Now())
}

// renderAlerts renders the alerts section; empty when nothing is in effect
func (m Model) renderAlerts(width int) string {
	alerts := m.activeAlerts()
	if len(alerts) == 0 {
		return ""
	}

	wrap := lipgloss.NewStyle().Width(max(width-6, 20))
	var lines []string
	for _, alert := range alerts {
		style := m.styles.alertStyle(alert.Level())
		title := alert.Event
		if title == "" {
			title = alert.Headline
		}
		lines = append(lines, style.Render(fmt.Sprintf("⚠  %s", title)))
		if alert.Headline != "" && alert.Headline != title {
			lines = append(lines, wrap.Render("   "+alert.Headline))
		}
		if alert.Severity != "" || alert.Urgency != "" {
			lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("   %s · %s", alert.Severity, alert.Urgency)))
		}
		if alert.Areas != "" {
			lines = append(lines, wrap.Render("   Areas: "+alert.Areas))
		}
		if alert.Expires != "" {
			lines = append(lines, fmt.Sprintf("   Expires: %s", units.FormatDateTime(alert.Expires)))
		}
		if alert.Instruction != "" {
			lines = append(lines, wrap.Render("   Instructions: "+alert.Instruction))
		}
		lines = append(lines, "")
	}

	return m.styles.Pane.Width(width).Render(
		m.styles.Title.Render(fmt.Sprintf("⚠ Weather Alerts (%d)", len(alerts))) + "\n\n" +
			strings.TrimRight(strings.Join(lines, "\n"), "\n"),
	)
}

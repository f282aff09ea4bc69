package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/store"
)

// renderHeader renders the title, the shown location and the live clock
func (m Model) renderHeader() string {
	s := m.styles

	left := s.Title.Render("🌤  Weather Dashboard")
	if snap := m.session.Snapshot; snap != nil {
		left += "\n" + s.Muted.Render("📍 "+locationLine(snap.Location.Name, snap.Location.Country))
	}
	right := s.Value.Bold(true).Render(m.now.Format("15:04:05")) + "\n" +
		s.Muted.Render(m.now.Format("Mon, Jan 2, 2006"))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 2 {
		gap = 2
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), lipgloss.NewStyle().Align(lipgloss.Right).Render(right))

	if m.session.Fallback {
		header += "\n" + s.Badge.Render(fmt.Sprintf("⚠ Live data unavailable for %s; showing sample data", m.session.Location))
	}
	return header
}

// viewDashboard renders the main display
func (m Model) viewDashboard() string {
	full := max(m.width-2, 40)

	var top string
	if m.width >= 100 {
		half := full/2 - 1
		top = lipgloss.JoinHorizontal(lipgloss.Top, m.renderCurrentPane(half), m.renderEnvironmentPane(half))
	} else {
		top = lipgloss.JoinVertical(lipgloss.Left, m.renderCurrentPane(full), m.renderEnvironmentPane(full))
	}

	sections := []string{m.renderHeader(), "", top, m.renderForecastPane(full)}
	if alerts := m.renderAlerts(full); alerts != "" {
		sections = append(sections, alerts)
	}

	star := "*: Favorite"
	if m.session.Preferences.IsFavorite(m.session.Location) {
		star = "*: Unfavorite"
	}
	help := m.styles.Help.Render(fmt.Sprintf("/: Search • F: Favorites • %s • Tab: Hourly/Daily • ,: Settings • T: Theme • R: Refresh • Q: Quit", star))
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	msg := fmt.Sprintf("%s Loading weather data for %s...", m.spinner.View(), m.session.Location)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		msg,
		m.styles.Help.Render("Q: Quit"),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := m.styles.Error.Render("✗ Error")

	errorMsg := m.session.Err
	if errorMsg == "" {
		errorMsg = store.FetchFailedMessage
	}

	help := m.styles.Help.Render("R: Reload • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}

// viewSearch renders the search box, suggestions and favorites
func (m Model) viewSearch() string {
	s := m.styles

	searchBox := s.SearchBox.Width(min(max(m.width-4, 30), 64)).Render(m.searchInput.View())

	var lines []string
	query := strings.TrimSpace(m.searchInput.Value())
	switch {
	case m.searching:
		lines = append(lines, s.Muted.Render("Searching..."))
	case len(m.suggestions) > 0:
		for i, sug := range m.suggestions {
			star := "☆"
			if m.session.Preferences.IsFavorite(sug.Name) {
				star = s.Badge.Render("★")
			}
			line := fmt.Sprintf("%s %s  %s", star, sug.Name, s.Muted.Render(sug.Details()))
			if i == m.suggestionCursor {
				line = s.Selected.Render("▸ ") + line
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
		}
	case len([]rune(query)) >= minSearchLength:
		lines = append(lines, s.Muted.Render("No matching locations"))
	}

	sections := []string{m.renderHeader(), "", searchBox}
	if len(lines) > 0 {
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if favs := m.session.Preferences.Favorites; len(favs) > 0 {
		sections = append(sections, s.SectionHeader.Render("Favorites"), s.Muted.Render(strings.Join(favs, " • ")))
	}

	sections = append(sections, s.Help.Render("Enter: Search • ↑/↓: Pick suggestion • Ctrl+S: Star suggestion • Esc: Back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// favoriteItem wraps a favorite location name for use in a list
type favoriteItem struct {
	name    string
	current bool
}

// FilterValue implements list.Item
func (f favoriteItem) FilterValue() string {
	return f.name
}

// Title implements list.DefaultItem
func (f favoriteItem) Title() string {
	return "★ " + f.name
}

// Description implements list.DefaultItem
func (f favoriteItem) Description() string {
	if f.current {
		return "Currently shown"
	}
	return "Enter to view"
}

// newFavoriteList creates a list.Model from the stored favorites
func (m Model) newFavoriteList() list.Model {
	favorites := m.session.Preferences.Favorites
	items := make([]list.Item, len(favorites))
	for i, name := range favorites {
		items[i] = favoriteItem{name: name, current: name == m.session.Location}
	}

	width, height := m.width-4, m.height-8
	if width < 20 {
		width = 20
	}
	if height < 5 {
		height = 5
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Favorite Locations"
	l.Styles.Title = m.styles.ActiveTitle
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("favorite", "favorites")
	if idx := indexOf(favorites, m.session.Location); idx >= 0 {
		l.Select(idx)
	}
	return l
}

func indexOf(items []string, v string) int {
	for i, s := range items {
		if s == v {
			return i
		}
	}
	return -1
}

// handleFavoriteList handles keyboard input in favorites state
func (m Model) handleFavoriteList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc", "f", "q":
		m.state = StateDashboard
		return m, nil
	case "enter":
		if item, ok := m.favoriteList.SelectedItem().(favoriteItem); ok {
			m.state = StateDashboard
			return m, fetchByLocation(m.store, item.name)
		}
		return m, nil
	case "d", "x", "delete", "backspace":
		if item, ok := m.favoriteList.SelectedItem().(favoriteItem); ok {
			idx := m.favoriteList.Index()
			m.store.RemoveFavorite(item.name)
			m.refresh()
			if n := len(m.favoriteList.Items()); n > 0 {
				m.favoriteList.Select(min(idx, n-1))
			}
		}
		return m, nil
	}

	m.favoriteList, cmd = m.favoriteList.Update(msg)
	return m, cmd
}

// viewFavorites renders the favorites list
func (m Model) viewFavorites() string {
	var body string
	if len(m.session.Preferences.Favorites) == 0 {
		body = m.styles.Muted.Render("No favorites yet. Press * on the dashboard or Ctrl+S on a search result to add one.")
	} else {
		body = m.favoriteList.View()
	}

	help := m.styles.Help.Render("↑/↓: Navigate • Enter: View • D: Remove • Esc: Back")
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", body, help)
}

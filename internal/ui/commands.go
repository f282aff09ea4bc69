package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/ngmaloney/weather-terminal/internal/geolocation"
)

const (
	locateTimeout = 10 * time.Second
	fetchTimeout  = 30 * time.Second
	searchTimeout = 10 * time.Second
)

// locate runs the one-shot startup position lookup
func locate(locator geolocation.Locator) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), locateTimeout)
		defer cancel()

		pos, err := locator.Locate(ctx)
		return locatedMsg{position: pos, err: err}
	}
}

// fetchByLocation fetches weather for a place name in the background
func fetchByLocation(s Session, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		s.FetchByLocation(ctx, name)
		return fetchDoneMsg{}
	}
}

// fetchByCoordinates fetches weather for a position in the background
func fetchByCoordinates(s Session, pos geolocation.Position) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		s.FetchByCoordinates(ctx, pos.Latitude, pos.Longitude)
		return fetchDoneMsg{}
	}
}

// searchLocations looks up suggestions for query
func searchLocations(client Searcher, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		results, err := client.SearchLocations(ctx, query)
		return suggestionsMsg{query: query, results: results, err: err}
	}
}

// waitForChange waits for the next store notification
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

// tick fires once a second for the header clock
func tick(clock clockwork.Clock) tea.Cmd {
	return func() tea.Msg {
		<-clock.After(time.Second)
		return tickMsg(clock.Now())
	}
}

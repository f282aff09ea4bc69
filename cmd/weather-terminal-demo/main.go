package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/geolocation"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/storage"
	"github.com/ngmaloney/weather-terminal/internal/store"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// offlineClient fails every request, so the dashboard shows its sample data
type offlineClient struct{}

var errOffline = &weatherapi.FetchError{Op: "forecast", Reason: weatherapi.ReasonTransport, Err: errors.New("demo mode")}

func (offlineClient) FetchByLocation(context.Context, string) (*models.Snapshot, error) {
	return nil, errOffline
}

func (offlineClient) FetchByCoordinates(context.Context, float64, float64) (*models.Snapshot, error) {
	return nil, errOffline
}

var demoPlaces = []models.LocationSummary{
	{ID: 1, Name: "London", Region: "City of London, Greater London", Country: "United Kingdom", Latitude: 51.52, Longitude: -0.11},
	{ID: 2, Name: "Paris", Region: "Ile-de-France", Country: "France", Latitude: 48.87, Longitude: 2.33},
	{ID: 3, Name: "Tokyo", Region: "Tokyo", Country: "Japan", Latitude: 35.69, Longitude: 139.69},
	{ID: 4, Name: "Portland", Region: "Oregon", Country: "United States of America", Latitude: 45.52, Longitude: -122.68},
	{ID: 5, Name: "Porto", Region: "Porto", Country: "Portugal", Latitude: 41.15, Longitude: -8.62},
}

// SearchLocations suggests fixed places whose name starts with q
func (offlineClient) SearchLocations(_ context.Context, q string) ([]models.LocationSummary, error) {
	var out []models.LocationSummary
	for _, p := range demoPlaces {
		if strings.HasPrefix(strings.ToLower(p.Name), strings.ToLower(q)) {
			out = append(out, p)
		}
	}
	return out, nil
}

// This demo shows the UI with sample data and no network access
func main() {
	client := offlineClient{}
	session := store.New(client, storage.NewMemory())
	session.AddFavorite("London")

	m := ui.NewModel(ui.Deps{
		Session: session,
		Client:  session,
		Locator: geolocation.NoopLocator{},
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}

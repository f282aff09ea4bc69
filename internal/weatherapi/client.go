// Package weatherapi fetches forecasts, alerts and location suggestions from
// the WeatherAPI.com v1 REST API.
package weatherapi

import (
	"context"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Client defines the operations the dashboard consumes
type Client interface {
	// FetchByLocation retrieves a snapshot for a place name or postal code
	FetchByLocation(ctx context.Context, query string) (*models.Snapshot, error)

	// FetchByCoordinates retrieves a snapshot for a lat/lon pair
	FetchByCoordinates(ctx context.Context, lat, lon float64) (*models.Snapshot, error)

	// SearchLocations returns location suggestions for a partial query
	SearchLocations(ctx context.Context, query string) ([]models.LocationSummary, error)
}

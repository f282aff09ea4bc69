package ui

import (
	"time"

	"github.com/ngmaloney/weather-terminal/internal/geolocation"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Message types for async operations

// locatedMsg is sent when the startup position lookup finishes
type locatedMsg struct {
	position geolocation.Position
	err      error
}

// fetchDoneMsg is sent when a store fetch returns
type fetchDoneMsg struct{}

// stateChangedMsg is sent when the store reports a change
type stateChangedMsg struct{}

// suggestionsMsg carries search results for query
type suggestionsMsg struct {
	query   string
	results []models.LocationSummary
	err     error
}

// tickMsg drives the header clock
type tickMsg time.Time

// Package geolocation finds the user's approximate position at startup.
// Lookups are one-shot and best effort; callers fall back to a named
// location on any error.
package geolocation

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrUnavailable is returned when no position source is configured
var ErrUnavailable = errors.New("geolocation unavailable")

// Position is a latitude/longitude pair in decimal degrees
type Position struct {
	Latitude  float64
	Longitude float64
}

// Locator resolves the current position
type Locator interface {
	Locate(ctx context.Context) (Position, error)
}

// StaticLocator always reports a fixed position, e.g. from command-line flags
type StaticLocator struct {
	Position Position
}

// NewStaticLocator validates lat/lon and returns a locator for them
func NewStaticLocator(lat, lon float64) (*StaticLocator, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("latitude %v out of range", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("longitude %v out of range", lon)
	}
	return &StaticLocator{Position: Position{Latitude: lat, Longitude: lon}}, nil
}

func (s *StaticLocator) Locate(context.Context) (Position, error) {
	return s.Position, nil
}

// NoopLocator never finds a position
type NoopLocator struct{}

func (NoopLocator) Locate(context.Context) (Position, error) {
	return Position{}, ErrUnavailable
}

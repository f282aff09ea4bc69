// Package config reads dashboard settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// Geolocation modes
const (
	GeolocateIP  = "ip"
	GeolocateOff = "off"
)

// Config holds all dashboard settings, populated from environment variables.
type Config struct {
	APIKey          string
	APIBaseURL      string
	DBPath          string
	DefaultLocation string
	HTTPTimeout     time.Duration

	// Geolocate is "ip" or "off"
	Geolocate    string
	GeolocateURL string

	LogFile     string
	MetricsAddr string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(envOrDefault("WEATHER_HTTP_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid WEATHER_HTTP_TIMEOUT")
	}

	geolocate := strings.ToLower(envOrDefault("WEATHER_GEOLOCATE", GeolocateIP))
	if geolocate != GeolocateIP && geolocate != GeolocateOff {
		return nil, fmt.Errorf("invalid WEATHER_GEOLOCATE %q: want %q or %q", geolocate, GeolocateIP, GeolocateOff)
	}

	cfg := &Config{
		APIKey:          os.Getenv("WEATHER_API_KEY"),
		APIBaseURL:      envOrDefault("WEATHER_API_BASE_URL", weatherapi.DefaultBaseURL),
		DBPath:          envOrDefault("WEATHER_DB_PATH", database.DBPath()),
		DefaultLocation: envOrDefault("WEATHER_DEFAULT_LOCATION", "New York"),
		HTTPTimeout:     timeout,
		Geolocate:       geolocate,
		GeolocateURL:    os.Getenv("WEATHER_GEOLOCATE_URL"),
		LogFile:         os.Getenv("WEATHER_LOG_FILE"),
		MetricsAddr:     os.Getenv("WEATHER_METRICS_ADDR"),
	}

	if strings.TrimSpace(cfg.DefaultLocation) == "" {
		return nil, errors.New("WEATHER_DEFAULT_LOCATION cannot be blank")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

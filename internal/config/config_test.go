package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "https://api.weatherapi.com/v1", cfg.APIBaseURL)
	assert.Equal(t, filepath.Join("data", "weather-terminal.db"), cfg.DBPath)
	assert.Equal(t, "New York", cfg.DefaultLocation)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, GeolocateIP, cfg.Geolocate)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "test-key")
	t.Setenv("WEATHER_API_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("WEATHER_DB_PATH", "/tmp/weather.db")
	t.Setenv("WEATHER_DEFAULT_LOCATION", "Reykjavik")
	t.Setenv("WEATHER_HTTP_TIMEOUT", "3s")
	t.Setenv("WEATHER_GEOLOCATE", "OFF")
	t.Setenv("WEATHER_GEOLOCATE_URL", "http://localhost:9998/json")
	t.Setenv("WEATHER_LOG_FILE", "debug.log")
	t.Setenv("WEATHER_METRICS_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999/v1", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/weather.db", cfg.DBPath)
	assert.Equal(t, "Reykjavik", cfg.DefaultLocation)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, GeolocateOff, cfg.Geolocate)
	assert.Equal(t, "http://localhost:9998/json", cfg.GeolocateURL)
	assert.Equal(t, "debug.log", cfg.LogFile)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	for _, v := range []string{"soon", "-1s", "0s"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("WEATHER_HTTP_TIMEOUT", v)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "WEATHER_HTTP_TIMEOUT")
		})
	}
}

func TestLoad_InvalidGeolocate(t *testing.T) {
	t.Setenv("WEATHER_GEOLOCATE", "gps")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEATHER_GEOLOCATE")
}

func TestLoad_BlankDefaultLocation(t *testing.T) {
	t.Setenv("WEATHER_DEFAULT_LOCATION", "   ")
	_, err := Load()
	require.Error(t, err)
}

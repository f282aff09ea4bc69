package units

import (
	"testing"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

func TestFormatTemperature(t *testing.T) {
	metric := models.DefaultUnits()
	imperial := metric
	imperial.Temperature = models.Fahrenheit

	tests := []struct {
		name  string
		c, f  float64
		units models.Units
		want  string
	}{
		{"celsius selected", 22, 71.6, metric, "22°C"},
		{"fahrenheit selected", 22, 71.6, imperial, "72°F"},
		{"rounds half up", 21.5, 70.7, metric, "22°C"},
		{"negative half", -0.5, 31.1, metric, "0°C"},
		{"selector not converter", 10, 999, imperial, "999°F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTemperature(tt.c, tt.f, tt.units); got != tt.want {
				t.Errorf("FormatTemperature(%v, %v) = %q, want %q", tt.c, tt.f, got, tt.want)
			}
		})
	}
}

func TestFormatWindPressureVisibility(t *testing.T) {
	metric := models.DefaultUnits()
	imperial := models.Units{
		Temperature: models.Fahrenheit,
		Wind:        models.Mph,
		Pressure:    models.Inches,
		Visibility:  models.Miles,
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"wind kmh", FormatWindSpeed(15, 9.3, metric), "15 km/h"},
		{"wind mph", FormatWindSpeed(15, 9.3, imperial), "9 mph"},
		{"pressure mb", FormatPressure(1013, 29.91, metric), "1013 mb"},
		{"pressure in", FormatPressure(1013, 29.91, imperial), "30 in"},
		{"visibility km", FormatVisibility(10, 6, metric), "10 km"},
		{"visibility miles", FormatVisibility(10, 6, imperial), "6 miles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormatTimeAndDate(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"time", FormatTime("2024-01-15 07:05"), "07:05"},
		{"date from date", FormatDate("2024-01-15"), "Mon, Jan 15"},
		{"date from timestamp", FormatDate("2024-01-16 23:00"), "Tue, Jan 16"},
		{"date time", FormatDateTime("2024-01-15 14:30"), "Jan 15, 14:30"},
		{"rfc3339", FormatDateTime("2024-01-15T14:30:00Z"), "Jan 15, 14:30"},
		{"unparseable passthrough", FormatTime("soon"), "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

package models

import (
	"encoding/json"
	"testing"
	"time"
)

const sampleForecastJSON = `{
  "location": {"name": "Paris", "region": "Ile-de-France", "country": "France", "lat": 48.87, "lon": 2.33, "tz_id": "Europe/Paris", "localtime": "2024-01-15 14:30"},
  "current": {
    "temp_c": 8.0, "temp_f": 46.4, "feelslike_c": 6.1, "feelslike_f": 43.0,
    "condition": {"text": "Light rain", "icon": "//cdn.weatherapi.com/weather/64x64/day/296.png", "code": 1183},
    "humidity": 87, "wind_kph": 19.1, "wind_mph": 11.9, "wind_degree": 230, "wind_dir": "SW",
    "pressure_mb": 1009, "pressure_in": 29.8, "precip_mm": 0.4, "precip_in": 0.02,
    "uv": 1, "vis_km": 9, "vis_miles": 5, "cloud": 75, "is_day": 1, "last_updated": "2024-01-15 14:15",
    "air_quality": {"co": 230.3, "pm2_5": 4.2, "us-epa-index": 1, "gb-defra-index": 1}
  },
  "forecast": {"forecastday": [
    {"date": "2024-01-15", "date_epoch": 1705276800,
     "day": {"maxtemp_c": 9.1, "maxtemp_f": 48.4, "mintemp_c": 4.2, "mintemp_f": 39.6, "daily_chance_of_rain": 88, "condition": {"text": "Patchy rain possible", "code": 1063}},
     "astro": {"sunrise": "08:40 AM", "sunset": "05:22 PM"},
     "hour": [{"time_epoch": 1705276800, "time": "2024-01-15 00:00", "temp_c": 5.0, "temp_f": 41.0}]}
  ]},
  "alerts": {"alert": [{"headline": "Wind warning", "severity": "Moderate", "event": "Wind", "desc": "Gusts"}]}
}`

func TestSnapshot_DecodeForecastDocument(t *testing.T) {
	var s Snapshot
	if err := json.Unmarshal([]byte(sampleForecastJSON), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if s.Location.Name != "Paris" || s.Location.Timezone != "Europe/Paris" {
		t.Errorf("Location = %+v", s.Location)
	}
	if s.Current.TempC != 8.0 || s.Current.TempF != 46.4 {
		t.Errorf("Current temps = %v/%v, want 8/46.4", s.Current.TempC, s.Current.TempF)
	}
	if !s.Current.Daytime() {
		t.Error("Current.Daytime() = false, want true")
	}
	if s.Current.AirQuality == nil || s.Current.AirQuality.USEPAIndex != 1 {
		t.Errorf("AirQuality = %+v, want us-epa-index 1", s.Current.AirQuality)
	}
	if len(s.Forecast.Days) != 1 || len(s.Forecast.Days[0].Hours) != 1 {
		t.Fatalf("Forecast days/hours = %+v", s.Forecast.Days)
	}
	if s.Forecast.Days[0].Day.DailyChanceOfRain != 88 {
		t.Errorf("DailyChanceOfRain = %v, want 88", s.Forecast.Days[0].Day.DailyChanceOfRain)
	}
	if got := s.AlertItems(); len(got) != 1 || got[0].Headline != "Wind warning" {
		t.Errorf("AlertItems() = %+v", got)
	}
}

func TestSnapshot_Today(t *testing.T) {
	var nilSnap *Snapshot
	if _, ok := nilSnap.Today(); ok {
		t.Error("Today() on nil snapshot should report false")
	}

	s := &Snapshot{Forecast: Forecast{Days: []ForecastDay{{Date: "2024-01-15"}, {Date: "2024-01-16"}}}}
	day, ok := s.Today()
	if !ok || day.Date != "2024-01-15" {
		t.Errorf("Today() = %v, %v, want 2024-01-15, true", day.Date, ok)
	}
}

func TestSnapshot_AlertsNeverNil(t *testing.T) {
	s := &Snapshot{}
	if got := s.AlertItems(); got == nil {
		t.Error("AlertItems() returned nil, want empty slice")
	}
	if got := s.ActiveAlerts(time.Now()); got == nil {
		t.Error("ActiveAlerts() returned nil, want empty slice")
	}
}

func TestSnapshot_ActiveAlertsFiltersByWindow(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	s := &Snapshot{Alerts: AlertList{Alerts: []Alert{
		{Headline: "expired", Effective: "2024-01-14T00:00:00Z", Expires: "2024-01-15T00:00:00Z"},
		{Headline: "current", Effective: "2024-01-15T06:00:00Z", Expires: "2024-01-15T18:00:00Z"},
		{Headline: "upcoming", Effective: "2024-01-16T00:00:00Z", Expires: "2024-01-16T12:00:00Z"},
		{Headline: "undated"},
	}}}

	got := s.ActiveAlerts(now)
	if len(got) != 2 || got[0].Headline != "current" || got[1].Headline != "undated" {
		t.Errorf("ActiveAlerts() = %+v, want current and undated", got)
	}
	if len(s.AlertItems()) != 4 {
		t.Errorf("AlertItems() len = %d, want 4", len(s.AlertItems()))
	}
}

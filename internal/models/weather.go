package models

import "time"

// Condition describes the sky/precipitation state reported by the API
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// Location identifies the place a snapshot was fetched for
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Timezone  string  `json:"tz_id"`
	LocalTime string  `json:"localtime"`
}

// AirQuality holds pollutant concentrations and the composite indices
type AirQuality struct {
	CO           float64 `json:"co"`
	NO2          float64 `json:"no2"`
	O3           float64 `json:"o3"`
	SO2          float64 `json:"so2"`
	PM25         float64 `json:"pm2_5"`
	PM10         float64 `json:"pm10"`
	USEPAIndex   int     `json:"us-epa-index"`
	GBDefraIndex int     `json:"gb-defra-index"`
}

// Current represents the conditions at fetch time.
// Every dual-unit pair (TempC/TempF, WindKph/WindMph, ...) describes the same
// physical quantity; display code selects one, it never derives one from the other.
type Current struct {
	TempC       float64     `json:"temp_c"`
	TempF       float64     `json:"temp_f"`
	FeelsLikeC  float64     `json:"feelslike_c"`
	FeelsLikeF  float64     `json:"feelslike_f"`
	Condition   Condition   `json:"condition"`
	Humidity    float64     `json:"humidity"`
	WindKph     float64     `json:"wind_kph"`
	WindMph     float64     `json:"wind_mph"`
	WindDegree  float64     `json:"wind_degree"`
	WindDir     string      `json:"wind_dir"`
	PressureMb  float64     `json:"pressure_mb"`
	PressureIn  float64     `json:"pressure_in"`
	PrecipMm    float64     `json:"precip_mm"`
	PrecipIn    float64     `json:"precip_in"`
	UV          float64     `json:"uv"`
	VisKm       float64     `json:"vis_km"`
	VisMiles    float64     `json:"vis_miles"`
	Cloud       float64     `json:"cloud"`
	IsDay       int         `json:"is_day"`
	LastUpdated string      `json:"last_updated"`
	AirQuality  *AirQuality `json:"air_quality,omitempty"`
}

// Daytime reports whether the API flagged the observation as daytime
func (c Current) Daytime() bool {
	return c.IsDay == 1
}

// DayForecast holds the aggregates for one forecast day
type DayForecast struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MaxTempF          float64   `json:"maxtemp_f"`
	MinTempC          float64   `json:"mintemp_c"`
	MinTempF          float64   `json:"mintemp_f"`
	AvgTempC          float64   `json:"avgtemp_c"`
	AvgTempF          float64   `json:"avgtemp_f"`
	MaxWindKph        float64   `json:"maxwind_kph"`
	MaxWindMph        float64   `json:"maxwind_mph"`
	TotalPrecipMm     float64   `json:"totalprecip_mm"`
	TotalPrecipIn     float64   `json:"totalprecip_in"`
	AvgVisKm          float64   `json:"avgvis_km"`
	AvgVisMiles       float64   `json:"avgvis_miles"`
	AvgHumidity       float64   `json:"avghumidity"`
	DailyWillItRain   int       `json:"daily_will_it_rain"`
	DailyChanceOfRain float64   `json:"daily_chance_of_rain"`
	DailyWillItSnow   int       `json:"daily_will_it_snow"`
	DailyChanceOfSnow float64   `json:"daily_chance_of_snow"`
	Condition         Condition `json:"condition"`
	UV                float64   `json:"uv"`
}

// Astro holds sun and moon times for a forecast day
type Astro struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination string `json:"moon_illumination"`
}

// HourForecast is a single hourly record
type HourForecast struct {
	TimeEpoch    int64     `json:"time_epoch"`
	Time         string    `json:"time"`
	TempC        float64   `json:"temp_c"`
	TempF        float64   `json:"temp_f"`
	IsDay        int       `json:"is_day"`
	Condition    Condition `json:"condition"`
	WindKph      float64   `json:"wind_kph"`
	WindMph      float64   `json:"wind_mph"`
	WindDegree   float64   `json:"wind_degree"`
	WindDir      string    `json:"wind_dir"`
	PressureMb   float64   `json:"pressure_mb"`
	PressureIn   float64   `json:"pressure_in"`
	PrecipMm     float64   `json:"precip_mm"`
	PrecipIn     float64   `json:"precip_in"`
	Humidity     float64   `json:"humidity"`
	Cloud        float64   `json:"cloud"`
	FeelsLikeC   float64   `json:"feelslike_c"`
	FeelsLikeF   float64   `json:"feelslike_f"`
	VisKm        float64   `json:"vis_km"`
	VisMiles     float64   `json:"vis_miles"`
	UV           float64   `json:"uv"`
	GustKph      float64   `json:"gust_kph"`
	GustMph      float64   `json:"gust_mph"`
	ChanceOfRain float64   `json:"chance_of_rain"`
	ChanceOfSnow float64   `json:"chance_of_snow"`
}

// ForecastDay is one day of the multi-day forecast
type ForecastDay struct {
	Date      string         `json:"date"`
	DateEpoch int64          `json:"date_epoch"`
	Day       DayForecast    `json:"day"`
	Astro     Astro          `json:"astro"`
	Hours     []HourForecast `json:"hour"` // 24 records, ordered by time
}

// Forecast wraps the ordered forecast days
type Forecast struct {
	Days []ForecastDay `json:"forecastday"`
}

// AlertList matches the API's {"alerts": {"alert": [...]}} nesting
type AlertList struct {
	Alerts []Alert `json:"alert"`
}

// Snapshot is the complete weather payload for one location at one fetch instant.
// It is treated as immutable once fetched and replaced wholesale on the next fetch.
type Snapshot struct {
	Location Location  `json:"location"`
	Current  Current   `json:"current"`
	Forecast Forecast  `json:"forecast"`
	Alerts   AlertList `json:"alerts"`
}

// Today returns the first forecast day, if any
func (s *Snapshot) Today() (ForecastDay, bool) {
	if s == nil || len(s.Forecast.Days) == 0 {
		return ForecastDay{}, false
	}
	return s.Forecast.Days[0], true
}

// AlertItems returns every delivered alert, never nil
func (s *Snapshot) AlertItems() []Alert {
	if s == nil || s.Alerts.Alerts == nil {
		return []Alert{}
	}
	return s.Alerts.Alerts
}

// ActiveAlerts returns the alerts in effect at now, never nil
func (s *Snapshot) ActiveAlerts(now time.Time) []Alert {
	active := []Alert{}
	for _, a := range s.AlertItems() {
		if a.IsActive(now) {
			active = append(active, a)
		}
	}
	return active
}

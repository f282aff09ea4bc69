package weatherapi

import (
	"fmt"
	"math"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/units"
)

const (
	mockDate      = "2024-01-15"
	mockDateEpoch = 1705257600
	mockIcon      = "//cdn.weatherapi.com/weather/64x64/day/116.png"
)

// MockSnapshot returns the fixed synthetic dataset shown when a name-based
// fetch fails. Every call returns a fresh value.
func MockSnapshot() *models.Snapshot {
	partlyCloudy := models.Condition{Text: "Partly cloudy", Icon: mockIcon, Code: 1003}

	hours := make([]models.HourForecast, 24)
	for i := range hours {
		tempC := 20 + math.Sin(float64(i)/24*math.Pi)*5
		isDay := 0
		if i >= 6 && i <= 18 {
			isDay = 1
		}
		hours[i] = models.HourForecast{
			TimeEpoch:  mockDateEpoch + int64(i)*3600,
			Time:       fmt.Sprintf("%s %02d:00", mockDate, i),
			TempC:      tempC,
			TempF:      units.CelsiusToFahrenheit(tempC),
			IsDay:      isDay,
			Condition:  partlyCloudy,
			WindKph:    15,
			WindMph:    9.3,
			WindDegree: 180,
			WindDir:    "S",
			PressureMb: 1013,
			PressureIn: 29.91,
			Humidity:   65,
			Cloud:      50,
			FeelsLikeC: 22,
			FeelsLikeF: 71.6,
			VisKm:      10,
			VisMiles:   6,
			UV:         5,
			GustKph:    25,
			GustMph:    15.5,
		}
	}

	return &models.Snapshot{
		Location: models.Location{
			Name:      "New York",
			Region:    "New York",
			Country:   "United States of America",
			Latitude:  40.71,
			Longitude: -74.01,
			Timezone:  "America/New_York",
			LocalTime: "2024-01-15 14:30",
		},
		Current: models.Current{
			TempC:       22,
			TempF:       71.6,
			FeelsLikeC:  24,
			FeelsLikeF:  75.2,
			Condition:   partlyCloudy,
			Humidity:    65,
			WindKph:     15,
			WindMph:     9.3,
			WindDegree:  180,
			WindDir:     "S",
			PressureMb:  1013,
			PressureIn:  29.91,
			UV:          5,
			VisKm:       10,
			VisMiles:    6,
			Cloud:       50,
			IsDay:       1,
			LastUpdated: "2024-01-15 14:30",
		},
		Forecast: models.Forecast{
			Days: []models.ForecastDay{
				{
					Date:      mockDate,
					DateEpoch: mockDateEpoch,
					Day: models.DayForecast{
						MaxTempC:    25,
						MaxTempF:    77,
						MinTempC:    18,
						MinTempF:    64.4,
						AvgTempC:    21.5,
						AvgTempF:    70.7,
						MaxWindKph:  20,
						MaxWindMph:  12.4,
						AvgVisKm:    10,
						AvgVisMiles: 6,
						AvgHumidity: 60,
						Condition:   partlyCloudy,
						UV:          5,
					},
					Astro: models.Astro{
						Sunrise:          "07:15 AM",
						Sunset:           "04:45 PM",
						Moonrise:         "10:30 AM",
						Moonset:          "11:45 PM",
						MoonPhase:        "Waxing Crescent",
						MoonIllumination: "25",
					},
					Hours: hours,
				},
			},
		},
		Alerts: models.AlertList{Alerts: []models.Alert{}},
	}
}

package units

import (
	"fmt"
	"math"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Layouts used by the weather API for local timestamps
const (
	apiDateTimeLayout = "2006-01-02 15:04"
	apiDateLayout     = "2006-01-02"
)

// The formatters below pick one of two precomputed values according to the
// active preference. They never convert.

// FormatTemperature renders e.g. "22°C" or "72°F"
func FormatTemperature(tempC, tempF float64, u models.Units) string {
	if u.Temperature == models.Fahrenheit {
		return fmt.Sprintf("%d°F", round(tempF))
	}
	return fmt.Sprintf("%d°C", round(tempC))
}

// FormatWindSpeed renders e.g. "15 km/h" or "9 mph"
func FormatWindSpeed(kph, mph float64, u models.Units) string {
	if u.Wind == models.Mph {
		return fmt.Sprintf("%d mph", round(mph))
	}
	return fmt.Sprintf("%d km/h", round(kph))
}

// FormatPressure renders e.g. "1013 mb" or "30 in"
func FormatPressure(mb, in float64, u models.Units) string {
	if u.Pressure == models.Inches {
		return fmt.Sprintf("%d in", round(in))
	}
	return fmt.Sprintf("%d mb", round(mb))
}

// FormatVisibility renders e.g. "10 km" or "6 miles"
func FormatVisibility(km, miles float64, u models.Units) string {
	if u.Visibility == models.Miles {
		return fmt.Sprintf("%d miles", round(miles))
	}
	return fmt.Sprintf("%d km", round(km))
}

// FormatTime renders an API local timestamp as "15:04"
func FormatTime(s string) string {
	return reformat(s, "15:04")
}

// FormatDate renders an API date or timestamp as "Mon, Jan 2"
func FormatDate(s string) string {
	return reformat(s, "Mon, Jan 2")
}

// FormatDateTime renders an API local timestamp as "Jan 2, 15:04"
func FormatDateTime(s string) string {
	return reformat(s, "Jan 2, 15:04")
}

// reformat returns s unchanged when it matches none of the known layouts
func reformat(s, layout string) string {
	for _, in := range []string{apiDateTimeLayout, apiDateLayout, time.RFC3339} {
		if t, err := time.Parse(in, s); err == nil {
			return t.Format(layout)
		}
	}
	return s
}

// round is Math.round semantics: halves go toward +Inf
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

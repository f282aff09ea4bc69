// Package insights derives human-oriented metrics and advice from raw weather
// fields: feels-like temperature, clothing and activity suggestions, UV and
// air-quality bands, wind arrows and condition icons.
package insights

import (
	"math"
	"strings"
)

// Level is a classification label paired with the color used to render it
type Level struct {
	Label string
	Color string
}

// band is an inclusive upper bound and the level it maps to
type band struct {
	max   float64
	level Level
}

var uvBands = []band{
	{2, Level{"Low", "#10b981"}},
	{5, Level{"Moderate", "#f59e0b"}},
	{7, Level{"High", "#f97316"}},
	{10, Level{"Very High", "#ef4444"}},
	{math.Inf(1), Level{"Extreme", "#7c3aed"}},
}

var aqiBands = []band{
	{50, Level{"Good", "#10b981"}},
	{100, Level{"Moderate", "#f59e0b"}},
	{150, Level{"Unhealthy for Sensitive Groups", "#f97316"}},
	{200, Level{"Unhealthy", "#ef4444"}},
	{300, Level{"Very Unhealthy", "#7c3aed"}},
	{math.Inf(1), Level{"Hazardous", "#dc2626"}},
}

// classify returns the level of the first band whose upper bound is >= v
func classify(bands []band, v float64) Level {
	for _, b := range bands {
		if v <= b.max {
			return b.level
		}
	}
	return bands[len(bands)-1].level
}

// UVLevel classifies a UV index
func UVLevel(uv float64) Level {
	return classify(uvBands, uv)
}

// AirQualityLevel classifies an air-quality index
func AirQualityLevel(aqi float64) Level {
	return classify(aqiBands, aqi)
}

// FeelsLike returns an adjusted Celsius temperature.
// This is a simplified model: wind lowers cold temperatures by 0.1 per kph and
// humidity raises hot temperatures by 0.01 per percent.
func FeelsLike(tempC, humidity, windKph float64) float64 {
	switch {
	case tempC < 10:
		return tempC - windKph*0.1
	case tempC > 27:
		return tempC + humidity*0.01
	default:
		return tempC
	}
}

// ClothingSuggestion maps a Celsius temperature to what to wear
func ClothingSuggestion(tempC float64) string {
	switch {
	case tempC < 0:
		return "Heavy winter coat, gloves, scarf, and hat"
	case tempC < 10:
		return "Winter coat or heavy jacket"
	case tempC < 20:
		return "Light jacket or sweater"
	case tempC < 25:
		return "T-shirt and light clothing"
	default:
		return "Light summer clothing"
	}
}

// ActivityRecommendation suggests what to do given the temperature and the
// condition text. Storms win over rain, rain over snow; temperature only
// decides when the condition names none of them.
func ActivityRecommendation(tempC float64, condition string) string {
	c := strings.ToLower(condition)

	switch {
	case strings.Contains(c, "thunder"), strings.Contains(c, "storm"):
		return "Stay indoors - avoid outdoor activities"
	case strings.Contains(c, "rain"):
		return "Indoor activities recommended"
	case strings.Contains(c, "snow"):
		return "Great for winter sports if conditions allow"
	}

	switch {
	case tempC < 0:
		return "Indoor activities or winter sports"
	case tempC < 10:
		return "Light outdoor activities with proper clothing"
	case tempC < 25:
		return "Perfect for outdoor activities"
	case tempC < 30:
		return "Good for outdoor activities, stay hydrated"
	default:
		return "Limit outdoor activities, stay in shade"
	}
}

var windArrows = [8]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// WindArrow maps a compass bearing to one of eight arrows
func WindArrow(degree float64) string {
	idx := int(math.Floor(degree/45+0.5)) % 8
	if idx < 0 {
		idx += 8
	}
	return windArrows[idx]
}

// epaIndexAQI is the upper AQI bound of each US EPA index category (1-6)
var epaIndexAQI = []float64{50, 100, 150, 200, 300, 500}

// EPAIndexLevel classifies a US EPA air-quality index category (1 Good .. 6
// Hazardous) on the same bands as AirQualityLevel. ok is false outside 1-6.
func EPAIndexLevel(index int) (Level, bool) {
	if index < 1 || index > len(epaIndexAQI) {
		return Level{}, false
	}
	return AirQualityLevel(epaIndexAQI[index-1]), true
}

package insights

// HumidityDescription describes relative humidity in words
func HumidityDescription(humidity float64) string {
	switch {
	case humidity < 30:
		return "Very dry"
	case humidity < 50:
		return "Comfortable"
	case humidity < 70:
		return "Moderate"
	default:
		return "High humidity"
	}
}

// PressureDescription describes sea-level pressure in millibars
func PressureDescription(mb float64) string {
	switch {
	case mb < 1000:
		return "Low pressure"
	case mb > 1020:
		return "High pressure"
	default:
		return "Normal pressure"
	}
}

// VisibilityDescription describes visibility in kilometers
func VisibilityDescription(km float64) string {
	switch {
	case km < 5:
		return "Poor visibility"
	case km < 10:
		return "Moderate visibility"
	default:
		return "Good visibility"
	}
}

// CloudDescription describes cloud cover percentage
func CloudDescription(cloud float64) string {
	switch {
	case cloud < 25:
		return "Clear skies"
	case cloud < 50:
		return "Partly cloudy"
	case cloud < 75:
		return "Mostly cloudy"
	default:
		return "Overcast"
	}
}

// UVRisk describes the exposure risk for a UV index
func UVRisk(uv float64) string {
	switch {
	case uv <= 2:
		return "Low risk"
	case uv <= 5:
		return "Moderate risk"
	case uv <= 7:
		return "High risk"
	case uv <= 10:
		return "Very high risk"
	default:
		return "Extreme risk"
	}
}

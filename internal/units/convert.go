// Package units converts between metric and imperial representations and
// formats dual-unit values for display.
package units

const (
	kmToMileFactor = 0.621371
	mbToInFactor   = 0.02953
)

// CelsiusToFahrenheit converts a temperature
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts a temperature
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// KphToMph converts a wind speed
func KphToMph(kph float64) float64 {
	return kph * kmToMileFactor
}

// MphToKph converts a wind speed
func MphToKph(mph float64) float64 {
	return mph / kmToMileFactor
}

// MbToIn converts millibars to inches of mercury
func MbToIn(mb float64) float64 {
	return mb * mbToInFactor
}

// InToMb converts inches of mercury to millibars
func InToMb(in float64) float64 {
	return in / mbToInFactor
}

// KmToMiles converts a distance
func KmToMiles(km float64) float64 {
	return km * kmToMileFactor
}

// MilesToKm converts a distance
func MilesToKm(miles float64) float64 {
	return miles / kmToMileFactor
}

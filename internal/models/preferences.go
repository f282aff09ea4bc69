package models

import "slices"

// TemperatureUnit selects how temperatures are displayed
type TemperatureUnit string

// WindUnit selects how wind speeds are displayed
type WindUnit string

// PressureUnit selects how pressure is displayed
type PressureUnit string

// VisibilityUnit selects how visibility is displayed
type VisibilityUnit string

// ThemeMode is the color scheme of the dashboard
type ThemeMode string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"

	Kmh WindUnit = "kmh"
	Mph WindUnit = "mph"

	Millibars PressureUnit = "mb"
	Inches    PressureUnit = "in"

	Kilometers VisibilityUnit = "km"
	Miles      VisibilityUnit = "miles"

	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// PreferencesVersion is the current schema version of the persisted preferences blob
const PreferencesVersion = 1

// Units holds the display unit chosen per dimension
type Units struct {
	Temperature TemperatureUnit `json:"temperature"`
	Wind        WindUnit        `json:"wind"`
	Pressure    PressureUnit    `json:"pressure"`
	Visibility  VisibilityUnit  `json:"visibility"`
}

// UnitsPatch is a partial unit selection; nil fields are left unchanged
type UnitsPatch struct {
	Temperature *TemperatureUnit
	Wind        *WindUnit
	Pressure    *PressureUnit
	Visibility  *VisibilityUnit
}

// Theme wraps the theme mode
type Theme struct {
	Mode ThemeMode `json:"mode"`
}

// Preferences are the persisted user choices, independent of any fetch
type Preferences struct {
	Version   int      `json:"version"`
	Units     Units    `json:"units"`
	Theme     Theme    `json:"theme"`
	Favorites []string `json:"favoriteLocations"`
}

// DefaultUnits returns the startup unit selection
func DefaultUnits() Units {
	return Units{
		Temperature: Celsius,
		Wind:        Kmh,
		Pressure:    Millibars,
		Visibility:  Kilometers,
	}
}

// DefaultPreferences returns the preferences used before anything is restored
func DefaultPreferences() Preferences {
	return Preferences{
		Version:   PreferencesVersion,
		Units:     DefaultUnits(),
		Theme:     Theme{Mode: ThemeLight},
		Favorites: []string{},
	}
}

// Merge applies the non-nil fields of p on top of u
func (u Units) Merge(p UnitsPatch) Units {
	if p.Temperature != nil {
		u.Temperature = *p.Temperature
	}
	if p.Wind != nil {
		u.Wind = *p.Wind
	}
	if p.Pressure != nil {
		u.Pressure = *p.Pressure
	}
	if p.Visibility != nil {
		u.Visibility = *p.Visibility
	}
	return u
}

// Toggle flips light and dark
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// IsFavorite reports whether name is in the favorites list
func (p Preferences) IsFavorite(name string) bool {
	return slices.Contains(p.Favorites, name)
}

// Clone returns a copy that shares no slices with p
func (p Preferences) Clone() Preferences {
	p.Favorites = slices.Clone(p.Favorites)
	if p.Favorites == nil {
		p.Favorites = []string{}
	}
	return p
}

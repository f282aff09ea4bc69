package store

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// decodePreferences parses a stored preferences blob. Fields missing from the
// blob keep their defaults, unknown unit values fall back to the default, and
// blobs written before versioning are upgraded. migrated reports whether the
// result differs from what was stored and should be written back.
func decodePreferences(blob string) (prefs models.Preferences, migrated bool, err error) {
	prefs = models.DefaultPreferences()
	prefs.Version = 0
	if err := json.Unmarshal([]byte(blob), &prefs); err != nil {
		return models.Preferences{}, false, fmt.Errorf("decoding preferences: %w", err)
	}

	if prefs.Version < models.PreferencesVersion {
		prefs.Version = models.PreferencesVersion
		migrated = true
	}

	defaults := models.DefaultUnits()
	u := &prefs.Units
	if u.Temperature != models.Celsius && u.Temperature != models.Fahrenheit {
		u.Temperature, migrated = defaults.Temperature, true
	}
	if u.Wind != models.Kmh && u.Wind != models.Mph {
		u.Wind, migrated = defaults.Wind, true
	}
	if u.Pressure != models.Millibars && u.Pressure != models.Inches {
		u.Pressure, migrated = defaults.Pressure, true
	}
	if u.Visibility != models.Kilometers && u.Visibility != models.Miles {
		u.Visibility, migrated = defaults.Visibility, true
	}
	if prefs.Theme.Mode != models.ThemeLight && prefs.Theme.Mode != models.ThemeDark {
		prefs.Theme.Mode, migrated = models.ThemeLight, true
	}

	favorites := make([]string, 0, len(prefs.Favorites))
	for _, f := range prefs.Favorites {
		if f == "" || slices.Contains(favorites, f) {
			migrated = true
			continue
		}
		favorites = append(favorites, f)
	}
	prefs.Favorites = favorites

	return prefs, migrated, nil
}

func encodePreferences(p models.Preferences) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding preferences: %w", err)
	}
	return string(b), nil
}

package store

import (
	"slices"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// DefaultLocation is the location fetched when nothing was restored
const DefaultLocation = "New York"

// FetchFailedMessage is the only error text the session ever shows
const FetchFailedMessage = "Failed to fetch weather data"

// State is the whole session: fetch status, the displayed snapshot, the
// active location and the user's preferences.
type State struct {
	Location    string             `json:"location"`
	Loading     bool               `json:"loading"`
	Err         string             `json:"error,omitempty"`
	Snapshot    *models.Snapshot   `json:"snapshot,omitempty"`
	Preferences models.Preferences `json:"preferences"`
	UpdatedAt   time.Time          `json:"updatedAt,omitzero"`
	Fallback    bool               `json:"fallback"`

	// seq identifies the most recently started fetch
	seq uint64
}

// InitialState is the state before restore and before any fetch
func InitialState() State {
	return State{
		Location:    DefaultLocation,
		Preferences: models.DefaultPreferences(),
	}
}

// HasError reports whether the coordinate path left an error to show
func (s State) HasError() bool {
	return s.Err != ""
}

// clone copies s so the caller cannot reach the store's slices
func (s State) clone() State {
	s.Preferences = s.Preferences.Clone()
	return s
}

type action interface{ isAction() }

type (
	fetchStarted struct{ seq uint64 }

	// fetchApplied installs a snapshot, real or substituted
	fetchApplied struct {
		seq      uint64
		snapshot *models.Snapshot
		location string
		fallback bool
		at       time.Time
	}

	fetchFailed struct {
		seq     uint64
		message string
	}

	themeToggled    struct{}
	unitsUpdated    struct{ patch models.UnitsPatch }
	favoriteAdded   struct{ name string }
	favoriteRemoved struct{ name string }

	restored struct {
		preferences *models.Preferences
		location    string
	}
)

func (fetchStarted) isAction()    {}
func (fetchApplied) isAction()    {}
func (fetchFailed) isAction()     {}
func (themeToggled) isAction()    {}
func (unitsUpdated) isAction()    {}
func (favoriteAdded) isAction()   {}
func (favoriteRemoved) isAction() {}
func (restored) isAction()        {}

// reduce is the only place state changes. It never performs I/O.
// Completions carrying a seq older than the latest started fetch are ignored.
func reduce(s State, a action) State {
	switch a := a.(type) {
	case fetchStarted:
		s.seq = a.seq
		s.Loading = true
		s.Err = ""
	case fetchApplied:
		if a.seq != s.seq {
			return s
		}
		s.Snapshot = a.snapshot
		s.Location = a.location
		s.Fallback = a.fallback
		s.UpdatedAt = a.at
		s.Err = ""
		s.Loading = false
	case fetchFailed:
		if a.seq != s.seq {
			return s
		}
		s.Err = a.message
		s.Loading = false
	case themeToggled:
		s.Preferences = s.Preferences.Clone()
		s.Preferences.Theme.Mode = s.Preferences.Theme.Mode.Toggle()
	case unitsUpdated:
		s.Preferences = s.Preferences.Clone()
		s.Preferences.Units = s.Preferences.Units.Merge(a.patch)
	case favoriteAdded:
		if s.Preferences.IsFavorite(a.name) {
			return s
		}
		s.Preferences = s.Preferences.Clone()
		s.Preferences.Favorites = append(s.Preferences.Favorites, a.name)
	case favoriteRemoved:
		s.Preferences = s.Preferences.Clone()
		s.Preferences.Favorites = slices.DeleteFunc(s.Preferences.Favorites, func(f string) bool {
			return f == a.name
		})
	case restored:
		if a.preferences != nil {
			s.Preferences = a.preferences.Clone()
		}
		if a.location != "" {
			s.Location = a.location
		}
	}
	return s
}

// Package store owns the dashboard session: the fetched snapshot, the active
// location and the user's preferences. Every change goes through one
// serialized dispatch so observers never see a half-applied transition.
package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/observability"
	"github.com/ngmaloney/weather-terminal/internal/storage"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// Storage keys shared with earlier releases of the dashboard
const (
	PreferencesKey = "weather-preferences"
	LocationKey    = "weather-location"
)

// Fetch paths, used for logging and metrics labels
const (
	PathName        = "name"
	PathCoordinates = "coordinates"
)

// Outcome is the result of one fetch: exactly one of Snapshot and Err is set
type Outcome struct {
	Snapshot *models.Snapshot
	Err      error
}

// Store holds the session state
type Store struct {
	client  weatherapi.Client
	storage storage.Storage
	clock   clockwork.Clock
	metrics *observability.Metrics
	logger  *slog.Logger

	mu    sync.Mutex
	state State

	subMu       sync.Mutex
	subscribers map[int]chan struct{}
	nextSub     int
}

// Option configures a Store
type Option func(*Store)

// WithClock sets the time source
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithMetrics records fetch and persistence metrics
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithDefaultLocation sets the location used until one is restored or fetched
func WithDefaultLocation(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.state.Location = name
		}
	}
}

// New creates a store in its initial state. Call Restore before the first fetch.
func New(client weatherapi.Client, st storage.Storage, opts ...Option) *Store {
	s := &Store{
		client:      client,
		storage:     st,
		clock:       clockwork.NewRealClock(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:       InitialState(),
		subscribers: make(map[int]chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe returns a channel that receives a signal after every state change,
// and a function that stops the subscription. Signals coalesce; read State()
// after each one.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = ch
	s.subMu.Unlock()

	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(ch)
		}
	}
}

// FetchByLocation fetches weather for a place name. A failed fetch is never
// shown as an error: the offline sample snapshot is displayed instead, under
// the requested name.
func (s *Store) FetchByLocation(ctx context.Context, name string) {
	seq := s.begin()
	out := s.fetch(ctx, PathName, func(ctx context.Context) (*models.Snapshot, error) {
		return s.client.FetchByLocation(ctx, name)
	})

	if out.Err != nil {
		s.logger.Warn("using sample data due to API error", "location", name, "error", out.Err)
		s.complete(seq, PathName, "fallback", fetchApplied{
			seq:      seq,
			snapshot: weatherapi.MockSnapshot(),
			location: name,
			fallback: true,
			at:       s.clock.Now(),
		})
		return
	}

	s.complete(seq, PathName, "success", fetchApplied{
		seq:      seq,
		snapshot: out.Snapshot,
		location: name,
		at:       s.clock.Now(),
	})
}

// FetchByCoordinates fetches weather for a lat/lon pair. On failure the error
// is surfaced and the previously displayed snapshot is kept.
func (s *Store) FetchByCoordinates(ctx context.Context, lat, lon float64) {
	seq := s.begin()
	out := s.fetch(ctx, PathCoordinates, func(ctx context.Context) (*models.Snapshot, error) {
		return s.client.FetchByCoordinates(ctx, lat, lon)
	})

	if out.Err != nil {
		s.logger.Error("fetching weather by coordinates", "lat", lat, "lon", lon, "error", out.Err)
		s.complete(seq, PathCoordinates, "error", fetchFailed{seq: seq, message: FetchFailedMessage})
		return
	}

	s.complete(seq, PathCoordinates, "success", fetchApplied{
		seq:      seq,
		snapshot: out.Snapshot,
		location: out.Snapshot.Location.Name,
		at:       s.clock.Now(),
	})
}

// ToggleTheme flips between light and dark
func (s *Store) ToggleTheme() {
	s.dispatch(themeToggled{})
}

// UpdateUnits merges a partial unit selection into the preferences.
// A patch that changes nothing is not written to storage.
func (s *Store) UpdateUnits(patch models.UnitsPatch) {
	s.dispatch(unitsUpdated{patch: patch})
}

// AddFavorite appends name to the favorites unless it is already there
func (s *Store) AddFavorite(name string) {
	s.dispatch(favoriteAdded{name: name})
}

// RemoveFavorite removes every favorite equal to name.
// Removing a name that is not a favorite is not written to storage.
func (s *Store) RemoveFavorite(name string) {
	s.dispatch(favoriteRemoved{name: name})
}

// Restore applies the persisted preferences and location. The two entries are
// read independently; an unreadable or malformed entry leaves its defaults in place.
func (s *Store) Restore() {
	var r restored
	var migrated bool

	blob, ok, err := s.storage.GetItem(PreferencesKey)
	switch {
	case err != nil:
		s.logger.Error("reading stored preferences", "error", err)
	case ok:
		prefs, m, err := decodePreferences(blob)
		if err != nil {
			s.logger.Error("ignoring malformed stored preferences", "error", err)
			break
		}
		r.preferences, migrated = &prefs, m
	}

	location, ok, err := s.storage.GetItem(LocationKey)
	switch {
	case err != nil:
		s.logger.Error("reading stored location", "error", err)
	case ok:
		r.location = location
	}

	s.mu.Lock()
	s.state = reduce(s.state, r)
	s.recordPreferences(s.state.Preferences)
	if migrated {
		s.logger.Info("upgraded stored preferences", "version", s.state.Preferences.Version)
		s.persistPreferences(s.state.Preferences)
	}
	s.mu.Unlock()

	s.notify()
}

// SearchLocations looks up location suggestions. Searches never touch the
// session state; they are routed here so they share the client and metrics.
func (s *Store) SearchLocations(ctx context.Context, query string) ([]models.LocationSummary, error) {
	results, err := s.client.SearchLocations(ctx, query)
	outcome := "success"
	if err != nil {
		outcome = "error"
		s.logger.Warn("location search failed", "query", query, "error", err)
	}
	if s.metrics != nil {
		s.metrics.SearchRequests.WithLabelValues(outcome).Inc()
	}
	return results, err
}

// begin starts a fetch and returns its sequence number
func (s *Store) begin() uint64 {
	s.mu.Lock()
	seq := s.state.seq + 1
	s.state = reduce(s.state, fetchStarted{seq: seq})
	s.mu.Unlock()

	s.notify()
	return seq
}

func (s *Store) fetch(ctx context.Context, path string, call func(context.Context) (*models.Snapshot, error)) Outcome {
	start := s.clock.Now()
	snap, err := call(ctx)
	if s.metrics != nil {
		s.metrics.FetchDuration.WithLabelValues(path).Observe(s.clock.Since(start).Seconds())
	}
	if err == nil && snap == nil {
		err = weatherapi.ErrFetchFailed
	}
	if err != nil {
		if !errors.Is(err, weatherapi.ErrFetchFailed) {
			err = errors.Join(weatherapi.ErrFetchFailed, err)
		}
		return Outcome{Err: err}
	}
	return Outcome{Snapshot: snap}
}

// complete dispatches a fetch completion unless a newer fetch has started
func (s *Store) complete(seq uint64, path, outcome string, a action) {
	next, applied := s.dispatchIf(func(st State) bool { return st.seq == seq }, a)
	if !applied {
		s.logger.Debug("dropping stale fetch result", "path", path, "seq", seq)
		outcome = "stale"
	}
	if s.metrics == nil {
		return
	}
	s.metrics.FetchRequests.WithLabelValues(path, outcome).Inc()
	if applied {
		fallback := 0.0
		if next.Fallback {
			fallback = 1
		}
		s.metrics.FallbackActive.Set(fallback)
	}
}

// dispatch reduces a under the lock, persists what changed and notifies subscribers
func (s *Store) dispatch(a action) State {
	next, _ := s.dispatchIf(nil, a)
	return next
}

func (s *Store) dispatchIf(cond func(State) bool, a action) (State, bool) {
	s.mu.Lock()
	prev := s.state
	if cond != nil && !cond(prev) {
		s.mu.Unlock()
		return prev.clone(), false
	}
	next := reduce(prev, a)
	s.state = next

	// written under the lock so storage sees changes in dispatch order
	if !reflect.DeepEqual(prev.Preferences, next.Preferences) {
		s.persistPreferences(next.Preferences)
	}
	if prev.Location != next.Location {
		s.persistLocation(next.Location)
	}
	s.mu.Unlock()

	s.notify()
	return next.clone(), true
}

// recordPreferences updates the gauges derived from the preferences
func (s *Store) recordPreferences(p models.Preferences) {
	if s.metrics != nil {
		s.metrics.FavoritesStored.Set(float64(len(p.Favorites)))
	}
}

func (s *Store) persistPreferences(p models.Preferences) {
	s.recordPreferences(p)
	blob, err := encodePreferences(p)
	if err == nil {
		err = s.storage.SetItem(PreferencesKey, blob)
	}
	if err != nil {
		s.persistFailed(PreferencesKey, err)
	}
}

func (s *Store) persistLocation(location string) {
	if err := s.storage.SetItem(LocationKey, location); err != nil {
		s.persistFailed(LocationKey, err)
	}
}

func (s *Store) persistFailed(key string, err error) {
	s.logger.Error("writing local storage", "key", key, "error", err)
	if s.metrics != nil {
		s.metrics.PersistErrors.WithLabelValues(key).Inc()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Elapsed reports how long ago the displayed snapshot was applied
func (s *Store) Elapsed() time.Duration {
	s.mu.Lock()
	at := s.state.UpdatedAt
	s.mu.Unlock()
	if at.IsZero() {
		return 0
	}
	return s.clock.Since(at)
}

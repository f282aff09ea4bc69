package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/ngmaloney/weather-terminal/internal/geolocation"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/storage"
	"github.com/ngmaloney/weather-terminal/internal/store"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// mockClient serves a fixed snapshot named after the query, or fails
type mockClient struct {
	err       error
	results   []models.LocationSummary
	searchErr error
	queries   []string
}

func (c *mockClient) FetchByLocation(_ context.Context, q string) (*models.Snapshot, error) {
	if c.err != nil {
		return nil, c.err
	}
	snap := weatherapi.MockSnapshot()
	snap.Location.Name = q
	return snap, nil
}

func (c *mockClient) FetchByCoordinates(context.Context, float64, float64) (*models.Snapshot, error) {
	if c.err != nil {
		return nil, c.err
	}
	snap := weatherapi.MockSnapshot()
	snap.Location.Name = "Located Town"
	return snap, nil
}

func (c *mockClient) SearchLocations(_ context.Context, q string) ([]models.LocationSummary, error) {
	c.queries = append(c.queries, q)
	if c.searchErr != nil {
		return nil, c.searchErr
	}
	return c.results, nil
}

var errOffline = errors.New("offline")

func newTestModel(t *testing.T, client *mockClient, locator geolocation.Locator) (Model, *store.Store) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC))
	s := store.New(client, storage.NewMemory(), store.WithClock(clock))
	m := NewModel(Deps{Session: s, Client: client, Locator: locator, Clock: clock})
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, s
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// run executes cmd synchronously and feeds its message back into the model
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m, _ = update(m, cmd())
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded returns a model already showing a snapshot for name
func loaded(t *testing.T, client *mockClient, name string) (Model, *store.Store) {
	t.Helper()
	m, s := newTestModel(t, client, nil)
	m = run(t, m, fetchByLocation(s, name))
	if m.session.Snapshot == nil {
		t.Fatal("snapshot not loaded")
	}
	return m, s
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel(t, &mockClient{}, nil)

	if m.state != StateDashboard {
		t.Errorf("NewModel() state = %v, want StateDashboard", m.state)
	}
	if m.activePane != PaneHourly {
		t.Errorf("NewModel() activePane = %v, want PaneHourly", m.activePane)
	}
	if m.styles.Mode != models.ThemeLight {
		t.Errorf("NewModel() theme = %v, want light", m.styles.Mode)
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, &mockClient{}, nil)

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.width != 100 || m.height != 30 {
		t.Errorf("After WindowSizeMsg, size = %dx%d, want 100x30", m.width, m.height)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m, _ := newTestModel(t, &mockClient{}, nil)

	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected Ctrl+C to return quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestModel_QuitStopsStoreSubscription(t *testing.T) {
	m, s := loaded(t, &mockClient{}, "Boston")

	_, cmd := update(m, key("q"))
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("Expected tea.QuitMsg")
	}

	s.ToggleTheme()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-m.changes:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("store subscription still open after quit")
		}
	}
}

func TestModel_LoadingViewBeforeFirstSnapshot(t *testing.T) {
	m, _ := newTestModel(t, &mockClient{}, nil)

	view := m.View()
	if !strings.Contains(view, "Loading weather data for New York") {
		t.Errorf("View() = %q, want loading message", view)
	}
}

func TestModel_Startup_GeolocationFailureFetchesByName(t *testing.T) {
	m, _ := newTestModel(t, &mockClient{err: errOffline}, geolocation.NoopLocator{})

	msg := m.startup()()
	if _, ok := msg.(locatedMsg); !ok {
		t.Fatalf("startup produced %T, want locatedMsg", msg)
	}
	m, cmd := update(m, msg)
	m = run(t, m, cmd)

	if m.session.HasError() {
		t.Errorf("name path should not surface an error, got %q", m.session.Err)
	}
	if !m.session.Fallback {
		t.Error("expected sample data after a failed name fetch")
	}
	if m.session.Location != "New York" {
		t.Errorf("Location = %q, want New York", m.session.Location)
	}
	if !strings.Contains(m.View(), "showing sample data") {
		t.Error("dashboard should flag sample data")
	}
}

func TestModel_Startup_LocatedFetchesByCoordinates(t *testing.T) {
	locator, _ := geolocation.NewStaticLocator(51.5, -0.12)
	m, _ := newTestModel(t, &mockClient{}, locator)

	_, cmd := update(m, locatedMsg{position: geolocation.Position{Latitude: 51.5, Longitude: -0.12}})
	m = run(t, m, cmd)

	if m.session.Location != "Located Town" {
		t.Errorf("Location = %q, want Located Town", m.session.Location)
	}
	if !strings.Contains(m.View(), "Current Weather") {
		t.Error("expected dashboard after a coordinate fetch")
	}
}

func TestModel_CoordinateFailureShowsErrorView(t *testing.T) {
	client := &mockClient{err: errOffline}
	m, _ := newTestModel(t, client, geolocation.NoopLocator{})

	_, cmd := update(m, locatedMsg{position: geolocation.Position{Latitude: 1, Longitude: 2}})
	m = run(t, m, cmd)

	view := m.View()
	if !strings.Contains(view, "Failed to fetch weather data") {
		t.Errorf("View() = %q, want error message", view)
	}
	if !strings.Contains(view, "R: Reload") {
		t.Error("error view should offer reload")
	}

	// Dashboard keys are ignored while the error is shown
	m, _ = update(m, key("/"))
	if m.state == StateSearch {
		t.Error("search should not open from the error view")
	}

	// Reload reruns the startup path: locate, then fall back to the name
	client.err = nil
	m, cmd = update(m, key("r"))
	msg := cmd()
	if _, ok := msg.(locatedMsg); !ok {
		t.Fatalf("reload produced %T, want locatedMsg", msg)
	}
	m, cmd = update(m, msg)
	m = run(t, m, cmd)

	if m.session.HasError() {
		t.Errorf("error should clear after reload, got %q", m.session.Err)
	}
	if m.session.Location != "New York" {
		t.Errorf("Location = %q, want New York", m.session.Location)
	}
}

func TestModel_DashboardRendersPanes(t *testing.T) {
	m, _ := loaded(t, &mockClient{}, "Boston")

	view := m.View()
	for _, want := range []string{"Current Weather", "Environmental Data", "Hourly Forecast", "Boston", "22°C", "09:30:00", "Clothing"} {
		if !strings.Contains(view, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
	if strings.Contains(view, "Weather Alerts") {
		t.Error("alerts pane should be hidden when there are no alerts")
	}
}

func TestModel_AlertsPaneShownWhenActive(t *testing.T) {
	m, _ := loaded(t, &mockClient{}, "Boston")
	snap := *m.session.Snapshot
	snap.Alerts.Alerts = []models.Alert{{
		Event:    "Winter Storm Warning",
		Severity: "Severe",
		Urgency:  "Expected",
		Expires:  "2024-01-16T12:00:00Z",
	}, {
		Event:   "Expired Advisory",
		Expires: "2024-01-01T00:00:00Z",
	}}
	m.session.Snapshot = &snap

	view := m.View()
	if !strings.Contains(view, "Winter Storm Warning") {
		t.Error("active alert not rendered")
	}
	if strings.Contains(view, "Expired Advisory") {
		t.Error("expired alert rendered")
	}
	if !strings.Contains(view, "Weather Alerts (1)") {
		t.Error("alert count should only include active alerts")
	}
}

func TestModel_TabSwitchesForecastPane(t *testing.T) {
	m, _ := loaded(t, &mockClient{}, "Boston")

	m, _ = update(m, key("tab"))
	if m.activePane != PaneDaily {
		t.Fatalf("After tab, activePane = %v, want PaneDaily", m.activePane)
	}
	if !strings.Contains(m.View(), "Today") {
		t.Error("daily pane should list Today")
	}

	m, _ = update(m, key("tab"))
	if m.activePane != PaneHourly {
		t.Errorf("After second tab, activePane = %v, want PaneHourly", m.activePane)
	}
}

func TestModel_ThemeToggle(t *testing.T) {
	m, s := loaded(t, &mockClient{}, "Boston")

	m, _ = update(m, key("t"))
	if m.styles.Mode != models.ThemeDark {
		t.Errorf("styles.Mode = %v, want dark", m.styles.Mode)
	}
	if s.State().Preferences.Theme.Mode != models.ThemeDark {
		t.Error("theme change not applied to the store")
	}
}

func TestModel_StarTogglesFavorite(t *testing.T) {
	m, s := loaded(t, &mockClient{}, "Boston")

	m, _ = update(m, key("*"))
	if !s.State().Preferences.IsFavorite("Boston") {
		t.Fatal("Boston should be a favorite")
	}
	if !strings.Contains(m.View(), "*: Unfavorite") {
		t.Error("help should offer to unfavorite")
	}

	_, _ = update(m, key("*"))
	if s.State().Preferences.IsFavorite("Boston") {
		t.Error("Boston should no longer be a favorite")
	}
}

func TestModel_SettingsChangeUnits(t *testing.T) {
	m, s := loaded(t, &mockClient{}, "Boston")

	m, _ = update(m, key(","))
	if m.state != StateSettings {
		t.Fatalf("state = %v, want StateSettings", m.state)
	}

	m, _ = update(m, key("down")) // Temperature
	m, _ = update(m, key("enter"))
	m, _ = update(m, key("3")) // Pressure

	u := s.State().Preferences.Units
	if u.Temperature != models.Fahrenheit {
		t.Errorf("Temperature = %v, want fahrenheit", u.Temperature)
	}
	if u.Pressure != models.Inches {
		t.Errorf("Pressure = %v, want in", u.Pressure)
	}

	m, _ = update(m, key("esc"))
	if m.state != StateDashboard {
		t.Fatalf("state = %v, want StateDashboard", m.state)
	}
	if view := m.View(); !strings.Contains(view, "°F") || strings.Contains(view, "22°C") {
		t.Error("dashboard should render Fahrenheit after the unit change")
	}
}

func TestModel_StateChangedRefreshes(t *testing.T) {
	m, s := loaded(t, &mockClient{}, "Boston")

	s.ToggleTheme()
	m, cmd := update(m, stateChangedMsg{})

	if m.styles.Mode != models.ThemeDark {
		t.Error("store change not picked up")
	}
	if cmd == nil {
		t.Error("expected to keep listening for changes")
	}
}

func TestModel_TickAdvancesClock(t *testing.T) {
	m, _ := newTestModel(t, &mockClient{}, nil)
	next := time.Date(2024, 1, 15, 9, 30, 1, 0, time.UTC)

	m, cmd := update(m, tickMsg(next))

	if !m.now.Equal(next) {
		t.Errorf("now = %v, want %v", m.now, next)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModel_Startup_ExplicitLocationSkipsGeolocation(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := store.New(&mockClient{}, storage.NewMemory(), store.WithClock(clock))
	m := NewModel(Deps{Session: s, Client: &mockClient{}, Locator: geolocation.NoopLocator{}, Clock: clock, Location: " Denver "})

	m = run(t, m, m.startup())

	if m.session.Location != "Denver" {
		t.Errorf("Location = %q, want Denver", m.session.Location)
	}
}

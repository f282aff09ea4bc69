package ui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/ngmaloney/weather-terminal/internal/geolocation"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/store"
)

// AppState represents which screen has focus
type AppState int

const (
	StateDashboard AppState = iota // Weather panes
	StateSearch                    // Location search with suggestions
	StateFavorites                 // Favorite locations list
	StateSettings                  // Theme and unit settings
)

// ActivePane represents which forecast pane is shown
type ActivePane int

const (
	PaneHourly ActivePane = iota
	PaneDaily
)

// minSearchLength is the shortest query that triggers suggestions
const minSearchLength = 2

// Session is the state store the UI reads and drives
type Session interface {
	State() store.State
	Subscribe() (<-chan struct{}, func())
	FetchByLocation(ctx context.Context, name string)
	FetchByCoordinates(ctx context.Context, lat, lon float64)
	ToggleTheme()
	UpdateUnits(patch models.UnitsPatch)
	AddFavorite(name string)
	RemoveFavorite(name string)
}

// Searcher returns location suggestions for a partial query
type Searcher interface {
	SearchLocations(ctx context.Context, query string) ([]models.LocationSummary, error)
}

// Deps are the collaborators the model needs
type Deps struct {
	Session Session
	Client  Searcher            // used for location suggestions
	Locator geolocation.Locator // nil skips straight to the named location
	Clock   clockwork.Clock
	Logger  *slog.Logger

	// Location, when set, replaces the restored location and skips geolocation
	Location string
}

// Model represents the application's state
type Model struct {
	state      AppState
	activePane ActivePane
	width      int
	height     int

	// Session snapshot, refreshed on every store notification
	session store.State
	styles  Styles
	now     time.Time

	store       Session
	client      Searcher
	locator     geolocation.Locator
	clock       clockwork.Clock
	logger      *slog.Logger
	changes     <-chan struct{}
	unsubscribe func()

	startLocation string

	// Search
	searchInput      textinput.Model
	suggestions      []models.LocationSummary
	suggestionCursor int // -1 when the typed text is selected
	searching        bool

	// Favorites
	favoriteList list.Model

	// Settings
	settingsCursor int

	spinner spinner.Model
}

// NewModel creates a new application model
func NewModel(deps Deps) Model {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = "Search city, postcode or coordinates..."
	ti.CharLimit = 100
	ti.Width = 50

	session := deps.Session.State()
	styles := NewStyles(session.Preferences.Theme.Mode)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner()

	changes, unsubscribe := deps.Session.Subscribe()

	return Model{
		state:            StateDashboard,
		activePane:       PaneHourly,
		session:          session,
		styles:           styles,
		now:              deps.Clock.Now(),
		store:            deps.Session,
		client:           deps.Client,
		locator:          deps.Locator,
		clock:            deps.Clock,
		logger:           deps.Logger,
		changes:          changes,
		unsubscribe:      unsubscribe,
		startLocation:    strings.TrimSpace(deps.Location),
		searchInput:      ti,
		suggestionCursor: -1,
		spinner:          s,
	}
}

// Init starts the clock, the store listener and the startup fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForChange(m.changes),
		tick(m.clock),
		m.startup(),
	)
}

// startup locates the user once; the located message picks the fetch path
func (m Model) startup() tea.Cmd {
	if m.startLocation != "" {
		return fetchByLocation(m.store, m.startLocation)
	}
	if m.locator == nil {
		return fetchByLocation(m.store, m.session.Location)
	}
	return locate(m.locator)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateFavorites {
			m.favoriteList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case stateChangedMsg:
		m.refresh()
		return m, waitForChange(m.changes)

	case fetchDoneMsg:
		m.refresh()
		return m, nil

	case locatedMsg:
		if msg.err != nil {
			m.logger.Info("geolocation unavailable, using named location", "location", m.session.Location, "error", msg.err)
			return m, fetchByLocation(m.store, m.session.Location)
		}
		m.logger.Debug("located", "lat", msg.position.Latitude, "lon", msg.position.Longitude)
		return m, fetchByCoordinates(m.store, msg.position)

	case suggestionsMsg:
		if msg.query != strings.TrimSpace(m.searchInput.Value()) {
			return m, nil
		}
		m.searching = false
		m.suggestionCursor = -1
		if msg.err != nil {
			m.logger.Error("searching locations", "query", msg.query, "error", msg.err)
			m.suggestions = nil
			return m, nil
		}
		m.suggestions = msg.results
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick(m.clock)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		if m.session.HasError() {
			return m.handleErrorKeys(msg)
		}
		if m.session.Snapshot == nil || m.session.Loading {
			if msg.String() == "q" {
				return m, m.quit()
			}
			return m, nil
		}

		switch m.state {
		case StateDashboard:
			return m.handleDashboardKeys(msg)
		case StateSearch:
			return m.handleSearchInput(msg)
		case StateFavorites:
			return m.handleFavoriteList(msg)
		case StateSettings:
			return m.handleSettingsKeys(msg)
		}
	}

	if m.state == StateSearch {
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

// quit stops listening to the store and ends the program
func (m Model) quit() tea.Cmd {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return tea.Quit
}

// refresh re-reads the session and rebuilds styles when the theme changed
func (m *Model) refresh() {
	m.session = m.store.State()
	if m.session.Preferences.Theme.Mode != m.styles.Mode {
		m.styles = NewStyles(m.session.Preferences.Theme.Mode)
		m.spinner.Style = m.styles.Spinner()
	}
	if m.state == StateFavorites {
		m.favoriteList = m.newFavoriteList()
	}
}

// handleErrorKeys handles the error view: reload reruns the startup path
func (m Model) handleErrorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, m.quit()
	case "r":
		m.state = StateDashboard
		return m, m.startup()
	}
	return m, nil
}

// handleDashboardKeys handles keyboard input on the weather panes
func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, m.quit()
	case "/", "s":
		m.state = StateSearch
		m.searchInput.SetValue("")
		m.suggestions = nil
		m.suggestionCursor = -1
		m.searching = false
		return m, m.searchInput.Focus()
	case "f":
		m.state = StateFavorites
		m.favoriteList = m.newFavoriteList()
		return m, nil
	case ",", "o":
		m.state = StateSettings
		m.settingsCursor = 0
		return m, nil
	case "t":
		m.store.ToggleTheme()
		m.refresh()
		return m, nil
	case "*":
		m.toggleFavorite(m.session.Location)
		return m, nil
	case "r":
		return m, fetchByLocation(m.store, m.session.Location)
	case "tab":
		if m.activePane == PaneHourly {
			m.activePane = PaneDaily
		} else {
			m.activePane = PaneHourly
		}
		return m, nil
	}
	return m, nil
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateDashboard
		m.searchInput.Blur()
		return m, nil

	case tea.KeyUp:
		if m.suggestionCursor >= 0 {
			m.suggestionCursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.suggestionCursor < len(m.suggestions)-1 {
			m.suggestionCursor++
		}
		return m, nil

	case tea.KeyCtrlS:
		if name := m.selectedSuggestion(); name != "" {
			m.toggleFavorite(name)
		}
		return m, nil

	case tea.KeyEnter:
		name := m.selectedSuggestion()
		if name == "" {
			name = strings.TrimSpace(m.searchInput.Value())
		}
		if name == "" {
			return m, nil
		}
		m.state = StateDashboard
		m.searchInput.Blur()
		m.suggestions = nil
		return m, fetchByLocation(m.store, name)
	}

	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}

	query := strings.TrimSpace(m.searchInput.Value())
	m.suggestionCursor = -1
	if utf8.RuneCountInString(query) < minSearchLength {
		m.suggestions = nil
		m.searching = false
		return m, cmd
	}
	m.searching = true
	return m, tea.Batch(cmd, searchLocations(m.client, query))
}

// selectedSuggestion returns the highlighted suggestion's name, if any
func (m Model) selectedSuggestion() string {
	if m.suggestionCursor < 0 || m.suggestionCursor >= len(m.suggestions) {
		return ""
	}
	return m.suggestions[m.suggestionCursor].Name
}

// toggleFavorite stars or unstars name
func (m *Model) toggleFavorite(name string) {
	if m.session.Preferences.IsFavorite(name) {
		m.store.RemoveFavorite(name)
	} else {
		m.store.AddFavorite(name)
	}
	m.refresh()
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch {
	case m.session.HasError():
		return m.viewError()
	case m.session.Loading || m.session.Snapshot == nil:
		return m.viewLoading()
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateFavorites:
		return m.viewFavorites()
	case StateSettings:
		return m.viewSettings()
	}
	return m.viewDashboard()
}

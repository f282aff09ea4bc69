package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/geolocation"
	"github.com/ngmaloney/weather-terminal/internal/httpapi"
	"github.com/ngmaloney/weather-terminal/internal/observability"
	"github.com/ngmaloney/weather-terminal/internal/storage"
	"github.com/ngmaloney/weather-terminal/internal/store"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	location := flag.String("location", "", "Location to show on startup, skipping geolocation (e.g., \"London\" or \"10001\")")
	lat := flag.Float64("lat", 0, "Latitude to fetch on startup (requires --lon)")
	lon := flag.Float64("lon", 0, "Longitude to fetch on startup (requires --lat)")
	noPersist := flag.Bool("no-persist", false, "Keep preferences in memory only")
	logFile := flag.String("log-file", cfg.LogFile, "Write debug logs to this file")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "Serve /metrics and /api/state on this address (e.g., :9090)")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["lat"] != set["lon"] {
		fmt.Println("Error: --lat and --lon must be given together.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(*logFile)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var st storage.Storage = storage.NewMemory()
	if !*noPersist {
		sqlite, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			logger.Error("opening local storage, preferences will not persist", "path", cfg.DBPath, "error", err)
		} else {
			defer sqlite.Close()
			st = sqlite
		}
	}

	client := weatherapi.NewHTTPClient(cfg.APIKey,
		weatherapi.WithBaseURL(cfg.APIBaseURL),
		weatherapi.WithTimeout(cfg.HTTPTimeout),
	)

	opts := []store.Option{
		store.WithLogger(logger),
		store.WithDefaultLocation(cfg.DefaultLocation),
	}

	var srv *httpapi.Server
	if *metricsAddr != "" {
		opts = append(opts, store.WithMetrics(observability.NewMetrics()))
	}

	session := store.New(client, st, opts...)
	session.Restore()

	if *metricsAddr != "" {
		srv = httpapi.NewServer(*metricsAddr, session, prometheus.DefaultGatherer, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	var locator geolocation.Locator
	switch {
	case set["lat"]:
		static, err := geolocation.NewStaticLocator(*lat, *lon)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		locator = static
	case cfg.Geolocate == config.GeolocateIP:
		locator = geolocation.NewIPLocator(cfg.GeolocateURL, cfg.HTTPTimeout)
	default:
		locator = geolocation.NoopLocator{}
	}

	model := ui.NewModel(ui.Deps{
		Session:  session,
		Client:   session,
		Locator:  locator,
		Logger:   logger,
		Location: *location,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
		cancel()
	}

	if runErr != nil {
		fmt.Printf("Error running application: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger logs to path through bubbletea, or discards when path is empty
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "weather-terminal")
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}

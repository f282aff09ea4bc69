// Package observability defines the Prometheus metrics exported by the dashboard.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds the counters and histograms for fetches and persistence.
type Metrics struct {
	FetchRequests   *prometheus.CounterVec   // labels: path={name,coordinates}, outcome={success,error,fallback,stale}
	FetchDuration   *prometheus.HistogramVec // labels: path={name,coordinates}
	SearchRequests  *prometheus.CounterVec   // labels: outcome={success,error}
	PersistErrors   *prometheus.CounterVec   // labels: key
	FallbackActive  prometheus.Gauge
	FavoritesStored prometheus.Gauge
}

const namespace = "weather_terminal"

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(true)
	prometheus.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.SearchRequests,
		m.PersistErrors,
		m.FallbackActive,
		m.FavoritesStored,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests can
// build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}

func newMetrics(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}
	return &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_requests_total",
			Help:      help("Weather fetches by path and outcome."),
		}, []string{"path", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      help("Weather API fetch duration in seconds."),
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"path"}),
		SearchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      help("Location searches by outcome."),
		}, []string{"outcome"}),
		PersistErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_errors_total",
			Help:      help("Failed writes to local storage by key."),
		}, []string{"key"}),
		FallbackActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fallback_active",
			Help:      help("1 when the displayed snapshot is the offline sample, 0 otherwise."),
		}),
		FavoritesStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "favorites",
			Help:      help("Number of favorite locations."),
		}),
	}
}

// Value reads the current value of a counter or gauge.
func Value(m prometheus.Metric) float64 {
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		return 0
	}
	switch {
	case out.Counter != nil:
		return out.Counter.GetValue()
	case out.Gauge != nil:
		return out.Gauge.GetValue()
	case out.Histogram != nil:
		return float64(out.Histogram.GetSampleCount())
	}
	return 0
}

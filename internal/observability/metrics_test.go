package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsForTesting_Independent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.FetchRequests.WithLabelValues("name", "fallback").Inc()
	a.FallbackActive.Set(1)

	assert.InDelta(t, 1, Value(a.FetchRequests.WithLabelValues("name", "fallback")), 0)
	assert.InDelta(t, 0, Value(b.FetchRequests.WithLabelValues("name", "fallback")), 0)
	assert.InDelta(t, 1, Value(a.FallbackActive), 0)
}

func TestValue_Histogram(t *testing.T) {
	m := NewMetricsForTesting()
	h := m.FetchDuration.WithLabelValues("coordinates")
	h.Observe(0.2)
	h.Observe(0.7)

	assert.InDelta(t, 2, Value(h.(prometheus.Metric)), 0)
}

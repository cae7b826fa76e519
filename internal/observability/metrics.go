package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the intake pipeline.
type Metrics struct {
	IntakeRequests  *prometheus.CounterVec // labels: outcome={completed,invalid,store_failed,notify_failed}
	GeocodeLookups  *prometheus.CounterVec // labels: outcome={resolved,degraded}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss,error}
	NotifyDuration  prometheus.Histogram
	GeocodeDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.IntakeRequests,
		m.GeocodeLookups,
		m.GeocodeCache,
		m.NotifyDuration,
		m.GeocodeDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		IntakeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emergency",
			Name:      "intake_requests_total",
			Help:      "Intake requests by pipeline outcome.",
		}, []string{"outcome"}),
		GeocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emergency",
			Name:      "geocode_lookups_total",
			Help:      "Reverse-geocode lookups by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emergency",
			Name:      "geocode_cache_total",
			Help:      "Geocode cache lookups by result.",
		}, []string{"result"}),
		NotifyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "emergency",
			Name:      "notify_duration_seconds",
			Help:      "Messaging provider request duration.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "emergency",
			Name:      "geocode_duration_seconds",
			Help:      "Geocoding provider request duration.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

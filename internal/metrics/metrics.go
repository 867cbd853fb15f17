package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateMetrics counts resolver activity. All Record helpers are nil-safe so
// wiring metrics stays optional in tests.
type RateMetrics struct {
	ProviderAttemptsTotal *prometheus.CounterVec
	CacheHitsTotal        *prometheus.CounterVec
	ResolutionsTotal      *prometheus.CounterVec
}

func NewRateMetrics() *RateMetrics {
	return &RateMetrics{
		ProviderAttemptsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_provider_attempts_total",
				Help: "Provider fetch attempts by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		CacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_cache_hits_total",
				Help: "Cache hits by kind (fresh or degraded)",
			},
			[]string{"kind"},
		),
		ResolutionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_resolutions_total",
				Help: "Completed resolutions by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *RateMetrics) RecordProviderAttempt(provider, outcome string) {
	if m == nil {
		return
	}
	m.ProviderAttemptsTotal.WithLabelValues(provider, outcome).Inc()
}

func (m *RateMetrics) RecordCacheHit(kind string) {
	if m == nil {
		return
	}
	m.CacheHitsTotal.WithLabelValues(kind).Inc()
}

func (m *RateMetrics) RecordResolution(outcome string) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(outcome).Inc()
}

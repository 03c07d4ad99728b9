package defcomp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics of a Factory. A nil *metrics records
// nothing.
type metrics struct {
	adaptations prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	invalid     *prometheus.CounterVec
	cached      prometheus.Gauge
}

func newMetrics(registry prometheus.Registerer, namespace string) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		adaptations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "defcomp",
			Name:      "adaptations_total",
			Help:      "Total number of definitions adapted into component types",
		}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "defcomp",
			Name:      "cache_hits_total",
			Help:      "Element factory lookups served from the definition cache",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "defcomp",
			Name:      "cache_misses_total",
			Help:      "Element factory lookups that required adaptation",
		}),

		invalid: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "defcomp",
			Name:      "invalid_definitions_total",
			Help:      "Rejected definitions by error code",
		}, []string{"code"}),

		cached: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "defcomp",
			Name:      "cached_definitions",
			Help:      "Number of definitions in the cache",
		}),
	}
}

func (m *metrics) recordLookup(loaded bool, cached int) {
	if m == nil {
		return
	}
	if loaded {
		m.cacheHits.Inc()
		return
	}
	m.cacheMisses.Inc()
	m.adaptations.Inc()
	m.cached.Set(float64(cached))
}

func (m *metrics) recordInvalid(code string) {
	if m == nil {
		return
	}
	m.invalid.WithLabelValues(code).Inc()
}

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PlannerMetricsCollector exposes planning instrumentation as Prometheus
// metrics. It implements planner.SearchObserver.
type PlannerMetricsCollector struct {
	registry       *prometheus.Registry
	solvesTotal    prometheus.Counter
	solveDuration  prometheus.Histogram
	solveScore     prometheus.Histogram
	searchesTotal  prometheus.Counter
	candidatesLast prometheus.Gauge
}

// NewPlannerMetricsCollector creates a collector with its own registry.
func NewPlannerMetricsCollector() *PlannerMetricsCollector {
	registry := prometheus.NewRegistry()

	c := &PlannerMetricsCollector{
		registry: registry,
		solvesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "intopia",
			Subsystem: "planner",
			Name:      "solves_total",
			Help:      "Total number of candidate solves performed",
		}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "intopia",
			Subsystem: "planner",
			Name:      "solve_duration_seconds",
			Help:      "Duration of individual candidate solves",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		solveScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "intopia",
			Subsystem: "planner",
			Name:      "solve_score",
			Help:      "Composite score distribution across candidate solves",
			Buckets:   prometheus.LinearBuckets(-1, 0.25, 13),
		}),
		searchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "intopia",
			Subsystem: "planner",
			Name:      "searches_total",
			Help:      "Total number of completed strategy searches",
		}),
		candidatesLast: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "intopia",
			Subsystem: "planner",
			Name:      "search_candidates_evaluated",
			Help:      "Number of candidates evaluated by the most recent search",
		}),
	}

	registry.MustRegister(
		c.solvesTotal,
		c.solveDuration,
		c.solveScore,
		c.searchesTotal,
		c.candidatesLast,
	)
	return c
}

// ObserveSolve records one candidate solve.
func (c *PlannerMetricsCollector) ObserveSolve(duration time.Duration, score float64) {
	c.solvesTotal.Inc()
	c.solveDuration.Observe(duration.Seconds())
	c.solveScore.Observe(score)
}

// ObserveSearch records one completed search.
func (c *PlannerMetricsCollector) ObserveSearch(evaluated int) {
	c.searchesTotal.Inc()
	c.candidatesLast.Set(float64(evaluated))
}

// Handler returns the HTTP handler serving the collector's registry.
func (c *PlannerMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve starts a metrics HTTP server on addr. It blocks, so callers run it
// in a goroutine.
func (c *PlannerMetricsCollector) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	return http.ListenAndServe(addr, mux)
}

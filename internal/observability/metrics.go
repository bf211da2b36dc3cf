package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Failure stages for RunFailures.
const (
	StageExtract   = "extract"
	StageTransform = "transform"
	StageLoad      = "load"
)

// Metrics holds the Prometheus counters and histograms for one extractor run.
// They live on a private registry: a batch job has no scrape endpoint, so the
// registry is written out with WriteTextfile instead.
type Metrics struct {
	registry *prometheus.Registry

	RowsRead    prometheus.Counter
	RowsWritten prometheus.Counter
	RowsDropped prometheus.Counter
	RunFailures *prometheus.CounterVec // labels: stage={extract,transform,load}
	RunDuration prometheus.Histogram
	LastSuccess prometheus.Gauge
}

// NewMetrics creates and registers all run metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "site_coords",
			Name:      "rows_read_total",
			Help:      "Data rows read from the source sheet.",
		}),
		RowsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "site_coords",
			Name:      "rows_written_total",
			Help:      "Coordinate rows written to the output CSV.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "site_coords",
			Name:      "rows_dropped_total",
			Help:      "Source rows dropped for a missing site, latitude or longitude.",
		}),
		RunFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site_coords",
			Name:      "run_failures_total",
			Help:      "Failed runs by stage.",
		}, []string{"stage"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "site_coords",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete extract-transform-load run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "site_coords",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}),
	}

	m.registry.MustRegister(
		m.RowsRead,
		m.RowsWritten,
		m.RowsDropped,
		m.RunFailures,
		m.RunDuration,
		m.LastSuccess,
	)

	return m
}

// Gatherer exposes the registry, mainly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics to path in Prometheus text format. The
// file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Store size gauges, refreshed by Collector on each tick.
	HostsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sysdb_hosts_total",
			Help: "Total number of hosts currently in the store",
		},
	)

	ServicesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sysdb_services_total",
			Help: "Total number of services currently in the store",
		},
	)

	MetricsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sysdb_metrics_total",
			Help: "Total number of metrics currently in the store",
		},
	)

	AttributesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sysdb_attributes_total",
			Help: "Total number of attributes currently in the store",
		},
	)

	// UpdatesTotal counts update calls that return a result (stored or
	// unchanged) by entity kind and result. Calls refused with an error are
	// not counted.
	UpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysdb_updates_total",
			Help: "Total number of store update calls by entity kind and result",
		},
		[]string{"entity", "result"},
	)

	// UpdateIntervalSeconds observes the update-interval estimate after every
	// write to an existing object that returns stored with a nonzero interval,
	// giving an operator-facing view of fleet update cadence.
	UpdateIntervalSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sysdb_update_interval_seconds",
			Help:    "Observed update_interval of a store object after an accepted write",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SerializeDurationSeconds times store_tojson renders.
	SerializeDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sysdb_serialize_duration_seconds",
			Help:    "Time taken to render a store_tojson projection in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// IterateDurationSeconds times full-store Iterate walks.
	IterateDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sysdb_iterate_duration_seconds",
			Help:    "Time taken for a full Iterate walk over the host set in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(HostsTotal)
	prometheus.MustRegister(ServicesTotal)
	prometheus.MustRegister(MetricsTotal)
	prometheus.MustRegister(AttributesTotal)
	prometheus.MustRegister(UpdatesTotal)
	prometheus.MustRegister(UpdateIntervalSeconds)
	prometheus.MustRegister(SerializeDurationSeconds)
	prometheus.MustRegister(IterateDurationSeconds)
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

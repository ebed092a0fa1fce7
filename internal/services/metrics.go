package services

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts editing activity. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	cellEdits       prometheus.Counter
	rowsCreated     prometheus.Counter
	rowsDeleted     prometheus.Counter
	linkNavigations *prometheus.CounterVec
	archiveLoad     prometheus.Histogram
}

// NewMetrics registers the paramdex collectors on a private registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cellEdits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "paramdex",
			Subsystem: "editor",
			Name:      "cell_edits_total",
			Help:      "Cell values changed through edit, toggle or reset.",
		}),
		rowsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "paramdex",
			Subsystem: "editor",
			Name:      "rows_created_total",
			Help:      "Rows created or duplicated.",
		}),
		rowsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "paramdex",
			Subsystem: "editor",
			Name:      "rows_deleted_total",
			Help:      "Rows deleted.",
		}),
		linkNavigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paramdex",
			Subsystem: "links",
			Name:      "navigations_total",
			Help:      "Link follow attempts by resolution status.",
		}, []string{"status"}),
		archiveLoad: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "paramdex",
			Subsystem: "archive",
			Name:      "load_seconds",
			Help:      "Time spent loading an archive.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
	m.registry.MustRegister(m.cellEdits, m.rowsCreated, m.rowsDeleted, m.linkNavigations, m.archiveLoad)
	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) CellEdited() {
	if m != nil {
		m.cellEdits.Inc()
	}
}

func (m *Metrics) RowCreated() {
	if m != nil {
		m.rowsCreated.Inc()
	}
}

func (m *Metrics) RowDeleted() {
	if m != nil {
		m.rowsDeleted.Inc()
	}
}

// LinkFollowed counts a follow attempt with its status ("valid", "invalid", "none")
func (m *Metrics) LinkFollowed(status string) {
	if m != nil {
		m.linkNavigations.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) ObserveArchiveLoad(d time.Duration) {
	if m != nil {
		m.archiveLoad.Observe(d.Seconds())
	}
}

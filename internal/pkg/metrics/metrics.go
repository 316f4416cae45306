// Package metrics exposes Prometheus collectors for the HTTP layer and the
// encounter economy.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gm_api"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	EncounterRecalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "encounter",
			Name:      "recalculations_total",
			Help:      "Encounter recalculations by kind and difficulty",
		},
		[]string{"kind", "difficulty"},
	)

	UnresolvedReferences = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "encounter",
			Name:      "unresolved_references_total",
			Help:      "Library ids that had no record and counted as zero",
		},
		[]string{"type"},
	)

	TxConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "redis",
			Name:      "tx_conflicts_total",
			Help:      "Optimistic Redis transactions retried after a watched key changed",
		},
		[]string{"op"},
	)

	LibraryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "library",
			Name:      "cache_lookups_total",
			Help:      "Library cache lookups by result",
		},
		[]string{"result"},
	)
)

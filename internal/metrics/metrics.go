// Package metrics defines the prometheus instruments shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mongo operation metrics
var (
	// MongoOpsTotal tracks Mongo operations by collection, operation and status
	MongoOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_operations_total",
			Help: "Total Mongo operations by collection, operation and status",
		},
		[]string{"collection", "operation", "status"},
	)

	// MongoOpDuration tracks Mongo operation latency in seconds
	MongoOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_operation_duration_seconds",
			Help:    "Mongo operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"collection", "operation"},
	)
)

// Import metrics
var (
	// ImportRowsTotal tracks imported CSV rows by outcome (imported/failed)
	ImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_total",
			Help: "Total CSV rows processed by outcome",
		},
		[]string{"outcome"},
	)

	// ImportsTotal tracks import requests by status (ok/rejected)
	ImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imports_total",
			Help: "Total CSV import requests by status",
		},
		[]string{"status"},
	)
)

// Quiz metrics
var (
	// AnswersTotal tracks graded answers by mode (practice/simulado) and result
	AnswersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "answers_total",
			Help: "Total graded answers by mode and result",
		},
		[]string{"mode", "result"},
	)

	// SessionsStartedTotal tracks started sessions by mode. A counter rather
	// than an open-sessions gauge: sessions also end by Redis TTL expiry,
	// which no code path observes, so a gauge could never be kept accurate.
	SessionsStartedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sessions_started_total",
			Help: "Total practice/simulado sessions started",
		},
		[]string{"mode"},
	)
)

// HTTP metrics
var (
	// HTTPRequestDuration tracks request latency by method, path and status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path", "status"},
	)
)

// RecordAnswer increments AnswersTotal with a readable result label.
func RecordAnswer(mode string, correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	AnswersTotal.WithLabelValues(mode, result).Inc()
}

// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "erp"

// HTTPRequests counts handled requests by route template, method and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by route, method and status.",
}, []string{"route", "method", "status"})

// HTTPLatency tracks request latency by route template.
var HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method"})

// Dispatches counts notification attempts by record kind and outcome
// (sent, failed, already_sent, conflict).
var Dispatches = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "dispatch",
	Name:      "attempts_total",
	Help:      "Total notification dispatch attempts by kind and outcome.",
}, []string{"kind", "outcome"})

// GatewayLatency tracks how long the messaging provider took to answer.
var GatewayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "dispatch",
	Name:      "gateway_duration_seconds",
	Help:      "Messaging gateway round-trip time in seconds.",
	Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
}, []string{"kind"})

// ImportedRows counts CSV rows by import kind and outcome (inserted, skipped).
var ImportedRows = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "import",
	Name:      "rows_total",
	Help:      "Total CSV rows processed by kind and outcome.",
}, []string{"kind", "outcome"})

// ScheduledJobRuns counts scheduler job executions by job name and outcome.
var ScheduledJobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "scheduler",
	Name:      "job_runs_total",
	Help:      "Total scheduled job runs by job and outcome.",
}, []string{"job", "outcome"})

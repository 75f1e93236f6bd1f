package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accounting_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "accounting_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// LedgerAPIRequestDuration tracks calls to the remote ledger API by operation and outcome.
	LedgerAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "accounting_ledger_api_request_duration_seconds",
			Help:    "Latency of ledger API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	// PostingAttemptsTotal counts journal entry submissions by outcome
	// (accepted, duplicate_reference, rejected, error).
	PostingAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accounting_posting_attempts_total",
			Help: "Journal entry submissions by outcome",
		},
		[]string{"outcome"},
	)

	ReferenceRegenerationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "accounting_reference_regenerations_total",
			Help: "Reference numbers replaced after a duplicate reference rejection",
		},
	)

	// AgingSourceTotal counts which source served the aging panel (remote, local, none).
	AgingSourceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accounting_aging_source_total",
			Help: "Aging results by source",
		},
		[]string{"source"},
	)
)

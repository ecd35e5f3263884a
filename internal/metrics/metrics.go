package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bridge_monitor"

var (
	// RPCRequestsTotal counts JSON-RPC requests by chain, method and outcome
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Total number of JSON-RPC requests",
		},
		[]string{"chain", "method", "status"},
	)

	// RPCRetriesTotal counts retried JSON-RPC attempts
	RPCRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_retries_total",
			Help:      "Total number of retried JSON-RPC attempts",
		},
		[]string{"chain", "method"},
	)

	// RPCRequestDuration tracks JSON-RPC latency including retries
	RPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_request_duration_seconds",
			Help:      "JSON-RPC request duration in seconds, retries included",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"chain", "method"},
	)

	// LogBatchesTotal counts eth_getLogs sub-range queries
	LogBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_batches_total",
			Help:      "Total number of log batches queried",
		},
		[]string{"chain"},
	)

	// EventsFetched counts decoded bridge events
	EventsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_fetched_total",
			Help:      "Total number of bridge events fetched",
		},
		[]string{"chain", "event"},
	)

	// Transfers tracks the reconciled transfers of the last pass
	Transfers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "transfers",
			Help:      "Reconciled transfers of the last pass by direction and status",
		},
		[]string{"direction", "status"},
	)

	// DuplicateCompletionsTotal counts transaction ids executed more than once in a window
	DuplicateCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_completions_total",
			Help:      "Total number of duplicate completion events",
		},
		[]string{"direction"},
	)

	// CompletionsOutOfRangeTotal counts processed transfers whose completion lies outside the window
	CompletionsOutOfRangeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completions_out_of_range_total",
			Help:      "Total number of processed transfers without an in-window completion",
		},
		[]string{"direction"},
	)

	// PassDuration tracks reconciliation pass time
	PassDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pass_duration_seconds",
			Help:      "Reconciliation pass duration in seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"direction"},
	)

	// LastScannedBlock tracks the upper bound of the last scanned window
	LastScannedBlock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_scanned_block",
			Help:      "Last scanned block number by chain",
		},
		[]string{"chain"},
	)

	// MonitorPassesTotal counts monitor loop iterations by result
	MonitorPassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "monitor_passes_total",
			Help:      "Total number of monitor passes",
		},
		[]string{"result"},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

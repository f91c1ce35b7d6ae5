// Package metrics defines prometheus metric types and convenience methods
// to instrument the request pipeline (package transport), mirroring how
// github.com/m-lab/etl/metrics instruments the ETL pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCount counts outbound RPCs by operation and outcome ("ok",
	// "api_error", "status_error", "transport_error", or "error" for any
	// other failure).
	// Provides metrics:
	//    tablestore_request_count
	RequestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tablestore_request_count",
		Help: "The number of RPCs sent, broken down by operation and outcome.",
	}, []string{"operation", "outcome"})

	// RequestLatency measures round-trip latency per operation, in seconds.
	// Provides metrics:
	//    tablestore_request_latency_seconds
	RequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tablestore_request_latency_seconds",
		Help:    "RPC round-trip latency in seconds, by operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// RetryCount counts retry attempts issued by the RetryPolicy, by
	// operation and server error code.
	// Provides metrics:
	//    tablestore_retry_count
	RetryCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tablestore_retry_count",
		Help: "The number of retry attempts issued, by operation and server error code.",
	}, []string{"operation", "code"})
)

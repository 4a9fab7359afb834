package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BackendRequestsTotal counts REST calls to the recruitment backend by
	// resource prefix and outcome (success, api_error, transport_error, timeout).
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recruitdesk_backend_requests_total",
			Help: "Total number of requests issued to the recruitment backend",
		},
		[]string{"resource", "outcome"},
	)

	// BackendRequestDuration tracks backend request latency in seconds.
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recruitdesk_backend_request_duration_seconds",
			Help:    "Latency of requests to the recruitment backend",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~20s
		},
		[]string{"resource"},
	)

	// StoreRefreshDuration tracks how long a collection refresh takes,
	// including the backend round trip and the full-replace swap.
	StoreRefreshDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recruitdesk_store_refresh_duration_seconds",
			Help:    "Duration of state store collection refreshes",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"store", "resource"},
	)

	// StoreCollectionSize reports the current size of each store collection.
	StoreCollectionSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recruitdesk_store_collection_size",
			Help: "Number of records currently held per store collection",
		},
		[]string{"store", "resource"},
	)
)

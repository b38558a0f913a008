package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Số request theo method, route và status
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bds_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bds_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	// Số lần nạp lại dữ liệu, result là "ok" hoặc "partial"
	StoreRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bds_store_refresh_total",
			Help: "Total number of data snapshot refreshes",
		},
		[]string{"result"},
	)
	ContactRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bds_contact_requests_total",
			Help: "Contact requests by dispatch result (sent, skipped, failed)",
		},
		[]string{"result"},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests handled by the API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method", "status"})

	SalesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_sales_total",
		Help: "Sale requests by final result.",
	}, []string{"result"})

	GatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_gateway_requests_total",
		Help: "Gateway round trips by operation and transport result.",
	}, []string{"operation", "result"})

	IdempotentReplaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payment_idempotent_replays_total",
		Help: "Sale responses served from the idempotency store.",
	})
)

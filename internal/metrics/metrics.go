package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ZoneOperations counts calls against the DNS zone by outcome
	ZoneOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "azdns_zone_operations_total",
		Help: "Total number of Azure DNS zone operations",
	}, []string{"operation", "status"})

	// ZoneOperationDuration tracks zone operation latency
	ZoneOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "azdns_zone_operation_duration_seconds",
		Help:    "Histogram of Azure DNS zone operation duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// HTTPRequests counts API requests by route and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "azdns_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "path", "status"})
)

// ObserveZoneOp starts timing one zone operation. The returned func records
// the duration and the ok/error outcome.
func ObserveZoneOp(operation string) func(error) {
	start := time.Now()
	return func(err error) {
		status := "ok"
		if err != nil {
			status = "error"
		}
		ZoneOperations.WithLabelValues(operation, status).Inc()
		ZoneOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

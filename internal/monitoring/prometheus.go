package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors groups the Prometheus metrics of the ordering service.
type Collectors struct {
	CartOperations   *prometheus.CounterVec
	OrdersSubmitted  prometheus.Counter
	OrdersFailed     *prometheus.CounterVec
	BookingsCreated  prometheus.Counter
	RequestDurations *prometheus.HistogramVec
}

// NewCollectors registers the service collectors on the default
// registry.
func NewCollectors() *Collectors {
	return &Collectors{
		CartOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cape_cart_operations_total",
			Help: "Cart mutations by operation (add, remove, update, clear).",
		}, []string{"operation"}),
		OrdersSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cape_orders_submitted_total",
			Help: "Orders accepted by the simulated backend.",
		}),
		OrdersFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cape_orders_failed_total",
			Help: "Order submissions that ended in an error, by code.",
		}, []string{"code"}),
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cape_bookings_created_total",
			Help: "Table booking requests received.",
		}),
		RequestDurations: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cape_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

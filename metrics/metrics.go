package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts traffic between this service and the booking backend.
type Metrics struct {
	BackendRequests *prometheus.CounterVec
	BackendErrors   prometheus.Counter
	BackendDuration *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		BackendRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "venue_webapp_backend_requests_total",
			Help: "Total number of requests sent to the booking backend",
		}, []string{"endpoint"}),

		BackendErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "venue_webapp_backend_errors_total",
			Help: "Total number of failed backend requests",
		}),

		BackendDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "venue_webapp_backend_request_duration_seconds",
			Help:    "Duration of backend requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

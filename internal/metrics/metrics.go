package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marina",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	reservationCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marina",
			Name:      "reservation_created_total",
			Help:      "Count of reservations created.",
		},
	)

	reservationUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marina",
			Name:      "reservation_updated_total",
			Help:      "Count of reservations updated.",
		},
	)

	reservationCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marina",
			Name:      "reservation_cancelled_total",
			Help:      "Count of reservations cancelled.",
		},
	)

	conflictDetected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marina",
			Name:      "conflict_detected_total",
			Help:      "Count of booking attempts rejected by dock conflict.",
		},
		[]string{"dock"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, reservationCreated, reservationUpdated, reservationCancelled, conflictDetected)
	})
}

func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncReservationCreated() {
	reservationCreated.Inc()
}

func IncReservationUpdated() {
	reservationUpdated.Inc()
}

func IncReservationCancelled() {
	reservationCancelled.Inc()
}

func IncConflictDetected(dock string) {
	conflictDetected.WithLabelValues(dock).Inc()
}

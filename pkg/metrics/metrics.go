package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ReservationsCreated   prometheus.Counter
	ReservationsMoved     prometheus.Counter
	ReservationsCancelled prometheus.Counter
	SlotConflictsTotal    prometheus.Counter
}

// New registers and returns the service metrics. serviceName is attached
// as a constant label to every collector.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ReservationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of reservations created",
			ConstLabels: constLabels,
		}),

		ReservationsMoved: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_rescheduled_total",
			Help:        "Total number of reservations rescheduled",
			ConstLabels: constLabels,
		}),

		ReservationsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_cancelled_total",
			Help:        "Total number of reservations cancelled",
			ConstLabels: constLabels,
		}),

		SlotConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_conflicts_total",
			Help:        "Total number of booking attempts rejected due to an occupied slot",
			ConstLabels: constLabels,
		}),
	}
}

// IncReservationCreated counts a successfully booked slot.
func (m *Metrics) IncReservationCreated() { m.ReservationsCreated.Inc() }

// IncReservationMoved counts a successful reschedule.
func (m *Metrics) IncReservationMoved() { m.ReservationsMoved.Inc() }

// IncReservationCancelled counts a successful cancellation.
func (m *Metrics) IncReservationCancelled() { m.ReservationsCancelled.Inc() }

// IncSlotConflict counts a booking attempt rejected because the slot was taken.
func (m *Metrics) IncSlotConflict() { m.SlotConflictsTotal.Inc() }

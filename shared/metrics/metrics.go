package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "petcare"

// Outcome labels shared by admission and slot mutation counters.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		},
		[]string{"route", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	bookingAdmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_admissions_total",
			Help:      "Booking admission attempts by outcome and failure kind.",
		},
		[]string{"outcome", "kind"},
	)

	timeslotMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timeslot_mutations_total",
			Help:      "Timeslot set replacements by outcome.",
		},
		[]string{"outcome"},
	)

	timeslotConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timeslot_conflicting_slots_total",
			Help:      "Slots reported as conflicting by the conflict detector.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, bookingAdmissions, timeslotMutations, timeslotConflicts)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	Register()

	return promhttp.Handler()
}

func ObserveHTTP(route, method, code string, seconds float64) {
	httpRequests.WithLabelValues(route, method, code).Inc()
	httpDuration.WithLabelValues(route, method).Observe(seconds)
}

func IncBookingAdmission(outcome, kind string) {
	bookingAdmissions.WithLabelValues(outcome, kind).Inc()
}

func IncTimeslotMutation(outcome string) {
	timeslotMutations.WithLabelValues(outcome).Inc()
}

func AddTimeslotConflicts(slots int) {
	timeslotConflicts.Add(float64(slots))
}

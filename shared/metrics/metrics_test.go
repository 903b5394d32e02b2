package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petcare/shared/metrics"

	"github.com/stretchr/testify/assert"
)

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.Register()
		metrics.Register()
	})
}

func TestHandler_ExposesCounters(t *testing.T) {
	metrics.IncBookingAdmission(metrics.OutcomeAccepted, "")
	metrics.IncBookingAdmission(metrics.OutcomeRejected, "SlotAlreadyBooked")
	metrics.IncTimeslotMutation(metrics.OutcomeConflict)
	metrics.AddTimeslotConflicts(2)
	metrics.ObserveHTTP("/v1/bookings", http.MethodPost, "201", 0.01)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(body, `petcare_booking_admissions_total{kind="SlotAlreadyBooked",outcome="rejected"}`))
	assert.True(t, strings.Contains(body, `petcare_timeslot_mutations_total{outcome="conflict"}`))
	assert.True(t, strings.Contains(body, "petcare_timeslot_conflicting_slots_total"))
	assert.True(t, strings.Contains(body, `petcare_http_requests_total{code="201",method="POST",route="/v1/bookings"}`))
}

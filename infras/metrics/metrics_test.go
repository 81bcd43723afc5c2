package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linka/infras/metrics"

	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestObserveTransition(t *testing.T) {
	m := metrics.New()

	m.ObserveTransition("ride", "pending", "confirmed")
	m.ObserveTransition("ride", "pending", "confirmed")
	m.ObserveCapacityRejection("ride", "approve")

	body := scrape(t, m)

	assert.Contains(t, body, `linka_booking_transitions_total{from="pending",target="ride",to="confirmed"} 2`)
	assert.Contains(t, body, `linka_booking_capacity_rejections_total{stage="approve",target="ride"} 1`)
}

func TestObserveRequest(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest("/api/rides/search", http.MethodGet, http.StatusOK, 20*time.Millisecond)

	body := scrape(t, m)

	assert.Contains(t, body, `linka_http_requests_total{code="200",method="GET",route="/api/rides/search"} 1`)
	assert.Contains(t, body, `linka_http_request_duration_seconds_count{method="GET",route="/api/rides/search"} 1`)
}

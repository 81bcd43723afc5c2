package metrics

import (
	"net/http"
	"strconv"
	"time"

	"linka/shared/constant"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can create as many as they need.
type Metrics struct {
	registry           *prometheus.Registry
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	bookingTransitions *prometheus.CounterVec
	capacityRejections *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constant.ServiceName,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: constant.ServiceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		bookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constant.ServiceName,
			Name:      "booking_transitions_total",
			Help:      "Booking status transitions by target type.",
		}, []string{"target", "from", "to"}),
		capacityRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constant.ServiceName,
			Name:      "booking_capacity_rejections_total",
			Help:      "Booking requests or approvals refused for lack of capacity.",
		}, []string{"target", "stage"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.bookingTransitions,
		m.capacityRejections,
	)

	return m
}

func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveTransition(target, from, to string) {
	m.bookingTransitions.WithLabelValues(target, from, to).Inc()
}

// ObserveCapacityRejection counts refusals; stage is "create" or "approve".
func (m *Metrics) ObserveCapacityRejection(target, stage string) {
	m.capacityRejections.WithLabelValues(target, stage).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

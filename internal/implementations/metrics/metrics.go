// Package metrics exposes Prometheus instrumentation for access decisions
// and HTTP traffic.
package metrics

import (
	"net/http"
	"petminder/internal/core/domain/access"
	e "petminder/internal/core/domain/errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Guard counts access decisions by operation, outcome and reason.
type Guard struct {
	inner     access.Guard
	decisions *prometheus.CounterVec
}

func NewGuard(inner access.Guard, registerer prometheus.Registerer) *Guard {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	if registerer == nil {
		panic(e.NewNilArgumentError("registerer"))
	}
	decisions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_decisions_total",
			Help: "Total number of access decisions.",
		},
		[]string{"operation", "outcome", "reason"},
	)
	registerer.MustRegister(decisions)
	return &Guard{inner: inner, decisions: decisions}
}

func (g *Guard) Authorize(principal access.Principal, resource access.Resource, operation access.Operation) access.Decision {
	decision := g.inner.Authorize(principal, resource, operation)
	g.decisions.WithLabelValues(operation.String(), decision.Outcome.String(), decision.Reason.String()).Inc()
	return decision
}

// HTTP records request counts and latencies by route pattern.
type HTTP struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTP(registerer prometheus.Registerer) *HTTP {
	if registerer == nil {
		panic(e.NewNilArgumentError("registerer"))
	}
	m := &HTTP{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
	registerer.MustRegister(m.inFlight, m.requests, m.duration)
	return m
}

// Middleware instruments next. route maps a request to a low cardinality
// label, usually the matched router pattern, and is called after next.
func (m *HTTP) Middleware(route func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.inFlight.Inc()
			defer m.inFlight.Dec()
			start := time.Now()

			sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
			next.ServeHTTP(sw, r)

			status := strconv.Itoa(sw.code)
			label := route(r)
			m.duration.WithLabelValues(r.Method, label, status).Observe(time.Since(start).Seconds())
			m.requests.WithLabelValues(r.Method, label, status).Inc()
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// Package metrics defines the Prometheus collectors exported by the relay
// and the HTTP middleware that feeds them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Call outcomes recorded by CallOutcomes.
const (
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metric definitions:
//   - relay_http_requests_total: requests by route, method and status
//   - relay_http_request_duration_seconds: request latency by route and method
//   - relay_calls_total: create-call requests by outcome
//   - relay_provider_request_duration_seconds: latency of Retell create-call requests
var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "relay_http_requests_total", Help: "HTTP requests by route, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "relay_http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	CallOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "relay_calls_total", Help: "Create-call requests by outcome."},
		[]string{"outcome"},
	)
	ProviderLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "relay_provider_request_duration_seconds", Help: "Retell create-call latency in seconds.", Buckets: prometheus.DefBuckets},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, CallOutcomes, ProviderLatency)
}

// Middleware records request count and latency for every request.
// Requests are labelled with the chi route pattern to keep cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPLatency.WithLabelValues(path, r.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, r.Method, strconv.Itoa(status)).Inc()
	})
}

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

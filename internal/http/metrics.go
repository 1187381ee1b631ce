package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

type httpMetrics struct {
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// newHTTPMetrics регистрирует коллекторы; при повторной регистрации (например, в тестах)
// переиспользует уже существующие.
func newHTTPMetrics() *httpMetrics {
	m := &httpMetrics{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crowdfund",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crowdfund",
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
	}

	if err := prometheus.Register(m.requestTotal); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			m.requestTotal = are.ExistingCollector.(*prometheus.CounterVec)
		}
	}
	if err := prometheus.Register(m.requestLatency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			m.requestLatency = are.ExistingCollector.(*prometheus.HistogramVec)
		}
	}
	return m
}

// instrument пишет счётчик и латентность по шаблону маршрута chi.
func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(status),
		}
		h.metrics.requestTotal.With(labels).Inc()
		h.metrics.requestLatency.With(labels).Observe(time.Since(start).Seconds())
	})
}

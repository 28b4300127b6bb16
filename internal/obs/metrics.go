package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_operations_total",
			Help: "Total number of service operations by result.",
		},
		[]string{"service", "operation", "result"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_operation_duration_seconds",
			Help:    "Service operation latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	notifyFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portal_notify_failures_total",
		Help: "Notification publishes that failed and were dropped.",
	})

	auditFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portal_audit_failures_total",
		Help: "Audit log writes that failed and were dropped.",
	})

	rollbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_assignment_rollbacks_total",
			Help: "Compensating rollbacks of assignment writes by outcome.",
		},
		[]string{"outcome"},
	)
)

// Init registers all metrics in the default registry.
// Call once at startup, before serving.
func Init() {
	prometheus.MustRegister(
		httpInFlight,
		httpRequestsTotal,
		httpRequestDuration,
		operationsTotal,
		operationDuration,
		notifyFailuresTotal,
		auditFailuresTotal,
		rollbacksTotal,
	)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveOperation records one service operation outcome.
// result is "ok" or "error".
func ObserveOperation(service, operation string, err error, started time.Time) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	operationsTotal.WithLabelValues(service, operation, result).Inc()
	operationDuration.WithLabelValues(service, operation).Observe(time.Since(started).Seconds())
}

// NotifyFailure counts a dropped notification publish.
func NotifyFailure() { notifyFailuresTotal.Inc() }

// AuditFailure counts a dropped audit write.
func AuditFailure() { auditFailuresTotal.Inc() }

// RollbackOutcome records a compensating rollback attempt.
// outcome is "complete" or "failed".
func RollbackOutcome(outcome string) { rollbacksTotal.WithLabelValues(outcome).Inc() }

// Instrument wraps an HTTP handler with RPS, latency and in-flight metrics.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(sw.code)

		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(duration)
		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpInFlight.Dec()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics of the dashboard server.
type Metrics struct {
	// Backend client
	BackendRequests *prometheus.CounterVec
	BackendLatency  *prometheus.HistogramVec
	BreakerState    *prometheus.GaugeVec

	// Auth
	Logins  *prometheus.CounterVec
	Logouts prometheus.Counter

	// Schemes
	SchemeWrites *prometheus.CounterVec

	// Dashboard
	DashboardBuildLatency prometheus.Histogram
}

// New creates the metrics and registers them with reg.
// A nil reg falls back to the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		BackendRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payzee_backend_requests_total",
			Help: "Backend API calls by resource, method, and outcome",
		}, []string{"resource", "method", "outcome"}),
		BackendLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "payzee_backend_request_duration_seconds",
			Help:    "Latency of backend API calls in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource", "method"}),
		BreakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "payzee_backend_breaker_open",
			Help: "1 when the backend circuit breaker is open, 0 otherwise",
		}, []string{"breaker"}),
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payzee_logins_total",
			Help: "Login attempts by result and user type",
		}, []string{"result", "user_type"}),
		Logouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "payzee_logouts_total",
			Help: "Total number of logouts",
		}),
		SchemeWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payzee_scheme_writes_total",
			Help: "Scheme create/update/status/delete calls by result",
		}, []string{"operation", "result"}),
		DashboardBuildLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "payzee_dashboard_build_seconds",
			Help:    "Time to fetch and aggregate the dashboard",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveBackendCall records one backend round trip.
func (m *Metrics) ObserveBackendCall(resource, method, outcome string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.BackendRequests.WithLabelValues(resource, method, outcome).Inc()
	m.BackendLatency.WithLabelValues(resource, method).Observe(durationSeconds)
}

// SetBreakerOpen flips the breaker gauge.
func (m *Metrics) SetBreakerOpen(name string, open bool) {
	if m == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	m.BreakerState.WithLabelValues(name).Set(v)
}

func (m *Metrics) IncLogin(result, userType string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(result, userType).Inc()
}

func (m *Metrics) IncLogout() {
	if m == nil {
		return
	}
	m.Logouts.Inc()
}

func (m *Metrics) IncSchemeWrite(operation, result string) {
	if m == nil {
		return
	}
	m.SchemeWrites.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveDashboardBuild(durationSeconds float64) {
	if m == nil {
		return
	}
	m.DashboardBuildLatency.Observe(durationSeconds)
}

// Handler exposes the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed by the HTTP server.
// Each Metrics instance carries its own registry so servers can be created
// and torn down independently (important for tests).
type Metrics struct {
	requestsTotal       *prometheus.CounterVec
	activeRequests      prometheus.Gauge
	convolutionDuration *prometheus.HistogramVec
	handler             http.Handler
}

// NewMetrics creates and registers the server metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "convcalc_requests_total",
			Help: "Total number of HTTP requests handled, by path and method.",
		}, []string{"path", "method"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "convcalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		convolutionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "convcalc_convolution_duration_seconds",
			Help:    "Convolution execution time in seconds, by algorithm.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"algorithm"}),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		m.requestsTotal,
		m.activeRequests,
		m.convolutionDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return m
}

// RecordRequest counts one handled request.
func (m *Metrics) RecordRequest(path, method string) {
	m.requestsTotal.WithLabelValues(path, method).Inc()
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveConvolutionDuration records one convolution run time.
func (m *Metrics) ObserveConvolutionDuration(algorithm string, d time.Duration) {
	m.convolutionDuration.WithLabelValues(algorithm).Observe(d.Seconds())
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

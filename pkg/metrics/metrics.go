// Package metrics provides the Prometheus collectors the proxy records into
// and the fiber app that exposes them.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LLMBuckets defines histogram buckets suited for LLM inference latencies,
// ranging from 100ms to 120s.
var LLMBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

// StatusTransportError labels provider calls that never produced a response.
const StatusTransportError = "error"

// Metrics holds one registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal         *prometheus.CounterVec
	providerRequestsTotal *prometheus.CounterVec
	providerLatency       *prometheus.HistogramVec
}

// New creates a fresh registry with the chatproxy collectors plus the
// standard Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatproxy_requests_total",
				Help: "Inbound requests by method and response status",
			},
			[]string{"method", "status"},
		),

		providerRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatproxy_provider_requests_total",
				Help: "Outbound provider calls by provider and upstream status",
			},
			[]string{"provider", "status"},
		),

		providerLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chatproxy_provider_latency_seconds",
				Help:    "Outbound provider call latency",
				Buckets: LLMBuckets,
			},
			[]string{"provider"},
		),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.providerRequestsTotal,
		m.providerLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRequest records one inbound request outcome.
func (m *Metrics) ObserveRequest(method string, status int) {
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// ObserveProvider records one outbound call. A status of 0 means the call
// failed before any response arrived.
func (m *Metrics) ObserveProvider(provider string, status int, elapsed time.Duration) {
	label := StatusTransportError
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.providerRequestsTotal.WithLabelValues(provider, label).Inc()
	m.providerLatency.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// NewApp returns a fiber app serving the registry at GET /metrics.
func (m *Metrics) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})))

	return app
}

// Package metrics exposes Prometheus collectors for the Cendre service: domain
// counters for the secret lifecycle plus standard HTTP handler instrumentation.
// Collectors live in a private registry so tests and multiple instances never
// collide on the default one.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles all collectors for one service instance.
type Metrics struct {
	registry *prometheus.Registry

	SecretsCreated  prometheus.Counter
	SecretsConsumed prometheus.Counter
	SecretsMissed   prometheus.Counter
	RequestsLimited prometheus.Counter

	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New constructs and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SecretsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cendre_secrets_created_total",
			Help: "Number of secrets stored.",
		}),
		SecretsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cendre_secrets_consumed_total",
			Help: "Number of secrets read exactly once and destroyed.",
		}),
		SecretsMissed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cendre_secrets_missed_total",
			Help: "Number of lookups that found no retrievable secret.",
		}),
		RequestsLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cendre_requests_rate_limited_total",
			Help: "Number of requests denied by the rate limiter.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cendre_in_flight_requests",
			Help: "Requests currently being served.",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cendre_api_requests_total",
				Help: "Requests to the API, partitioned by status code and method.",
			},
			[]string{"code", "method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cendre_request_duration_seconds",
				Help:    "Request latencies.",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method"},
		),
	}
	m.registry.MustRegister(
		m.SecretsCreated,
		m.SecretsConsumed,
		m.SecretsMissed,
		m.RequestsLimited,
		m.inFlight,
		m.requests,
		m.duration,
	)
	return m
}

// Handler serves the /metrics scrape endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Instrument wraps next with in-flight, count, and duration instrumentation.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerInFlight(m.inFlight,
		promhttp.InstrumentHandlerDuration(m.duration,
			promhttp.InstrumentHandlerCounter(m.requests, next),
		),
	)
}

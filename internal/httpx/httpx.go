// Package httpx contains the HTTP delivery layer (net/http handlers) for the
// Cendre service. It maps HTTP requests to the application service while
// enforcing rate limits, security headers, and error translation. Handlers are
// split across files (create.go, consume.go, health.go, errors.go).
package httpx

import (
	"context"
	"net/http"

	"github.com/dejisec/cendre/internal/app"
	"github.com/dejisec/cendre/internal/domain"
	"github.com/dejisec/cendre/internal/metrics"
)

// ServicePort abstracts the subset of app.Service used by the HTTP layer.
// It is satisfied by *app.Service in production and mocked in tests.
type ServicePort interface {
	CreateSecret(ctx context.Context, ciphertext, iv string, ttlSecs uint32) (domain.Secret, error)
	ConsumeSecret(ctx context.Context, id string) (domain.Secret, error)
	Ping(ctx context.Context) error
}

// Handler wires HTTP endpoints to the application service.
// It is safe for concurrent use. Zero-value is not valid; construct via New.
type Handler struct {
	Service ServicePort
	Limiter app.RateLimiter  // optional per-client request limiter
	Metrics *metrics.Metrics // optional instrumentation; nil disables /metrics
	MaxBody int64            // maximum allowed request body size (0 disables extra check)
}

// New returns a configured Handler.
// svc: application service port implementation.
// limiter: per-client limiter (nil => unlimited).
// m: metrics registry (nil => no /metrics endpoint, no counters).
func New(svc ServicePort, limiter app.RateLimiter, m *metrics.Metrics) *Handler {
	return &Handler{Service: svc, Limiter: limiter, Metrics: m, MaxBody: defaultMaxBody}
}

// defaultMaxBody bounds create payloads; ciphertext and IV arrive base64
// encoded so this comfortably covers typical browser-encrypted secrets.
const defaultMaxBody int64 = 1 << 20

// Router constructs and returns an http.Handler with all routes mounted and
// the middleware chain (security headers, correlation IDs, rate limiting,
// instrumentation) applied.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/secrets", h.handleCreateSecret)
	mux.HandleFunc("/api/secret/", h.handleConsumeSecret) // expect /api/secret/{id}
	mux.HandleFunc("/health", h.handleHealth)

	var inner http.Handler = mux
	if h.Limiter != nil {
		inner = h.rateLimit(inner)
	}
	if h.Metrics != nil {
		inner = h.Metrics.Instrument(inner)
	}

	root := http.NewServeMux()
	if h.Metrics != nil {
		root.Handle("/metrics", h.Metrics.Handler())
	}
	root.Handle("/", inner)
	return h.secureHeaders(CorrelationIDMiddleware(root))
}

// secureHeaders middleware adds standard security & cache control headers to
// every response, including rate-limited and error responses.
func (h *Handler) secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		// Secrets are single-read; nothing in this API is cacheable.
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

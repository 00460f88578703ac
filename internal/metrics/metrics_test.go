package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	m := New()
	m.SecretsCreated.Inc()
	m.SecretsCreated.Inc()
	m.SecretsConsumed.Inc()
	m.RequestsLimited.Inc()

	if got := testutil.ToFloat64(m.SecretsCreated); got != 2 {
		t.Fatalf("secrets_created: got %v", got)
	}
	if got := testutil.ToFloat64(m.SecretsConsumed); got != 1 {
		t.Fatalf("secrets_consumed: got %v", got)
	}
	if got := testutil.ToFloat64(m.SecretsMissed); got != 0 {
		t.Fatalf("secrets_missed: got %v", got)
	}
	if got := testutil.ToFloat64(m.RequestsLimited); got != 1 {
		t.Fatalf("requests_rate_limited: got %v", got)
	}
}

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	m := New()
	m.SecretsCreated.Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "cendre_secrets_created_total 1") {
		t.Fatalf("scrape output missing counter:\n%s", rr.Body.String())
	}
}

func TestInstrumentCountsRequests(t *testing.T) {
	m := New()
	h := m.Instrument(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("status: %d", rr.Code)
		}
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("200", "get")); got != 3 {
		t.Fatalf("api_requests_total{200,get}: got %v", got)
	}
}

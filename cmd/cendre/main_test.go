package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/dejisec/cendre/internal/app"
	"github.com/dejisec/cendre/internal/config"
	"github.com/dejisec/cendre/internal/store/memory"
	"github.com/dejisec/cendre/internal/store/redis"
)

// TestBuildStoreMemory verifies the default backend when no Redis URL is set.
func TestBuildStoreMemory(t *testing.T) {
	cfg := &config.Config{}
	st := buildStore(context.Background(), cfg, app.RealClock{})
	if _, ok := st.(*memory.Store); !ok {
		t.Fatalf("expected memory store, got %T", st)
	}
}

// TestBuildStoreRedis verifies the Redis backend is selected when reachable.
func TestBuildStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{RedisURL: "redis://" + mr.Addr(), RedisKeyPrefix: "secret:"}
	st := buildStore(context.Background(), cfg, app.RealClock{})
	if _, ok := st.(*redis.Store); !ok {
		t.Fatalf("expected redis store, got %T", st)
	}
}

// TestBuildStoreRedisFallback verifies degradation to memory when Redis is down.
func TestBuildStoreRedisFallback(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	cfg := &config.Config{RedisURL: "redis://" + addr, RedisKeyPrefix: "secret:"}
	st := buildStore(context.Background(), cfg, app.RealClock{})
	if _, ok := st.(*memory.Store); !ok {
		t.Fatalf("expected fallback to memory store, got %T", st)
	}
}

// TestBuildService validates service field propagation.
func TestBuildService(t *testing.T) {
	st := memory.New(app.RealClock{})
	cfg := &config.Config{MaxTTLSecs: 3600}
	svc := buildService(st, cfg)
	if svc.Store != st {
		t.Fatalf("store not propagated")
	}
	if svc.MaxTTLSecs != 3600 {
		t.Fatalf("ttl cap not propagated: %d", svc.MaxTTLSecs)
	}
}

// TestNewServer validates timeout configuration.
func TestNewServer(t *testing.T) {
	cfg := &config.Config{Addr: ":0"}
	srv := newServer(cfg, http.NewServeMux())
	if srv.ReadTimeout != 5*time.Second || srv.WriteTimeout != 10*time.Second || srv.IdleTimeout != 120*time.Second {
		t.Fatalf("unexpected timeouts: %+v", srv)
	}
}

// TestBuildHandlerServes wires the full stack against the memory backend and
// exercises a health probe through it.
func TestBuildHandlerServes(t *testing.T) {
	cfg := config.DefaultAppConfig
	st := memory.New(app.RealClock{})
	handler := buildHandler(buildService(st, &cfg), &cfg, app.RealClock{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", rr.Code)
	}
}

// Package main provides the cendre binary entry point that starts the HTTP
// server for one-time encrypted secret sharing. It loads configuration from
// environment variables, validates it, picks a storage backend, and then
// starts the HTTP server.
//
// The application flow:
//  1. Load defaults and apply environment variables.
//  2. Validate configuration.
//  3. Connect the Redis backend if configured, falling back to memory.
//  4. Wire the service, rate limiter, and metrics into the HTTP handler.
//  5. Configure and start the HTTP server.
//
// It blocks until the server exits with an error (other than http.ErrServerClosed).
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dejisec/cendre/internal/app"
	"github.com/dejisec/cendre/internal/config"
	"github.com/dejisec/cendre/internal/httpx"
	"github.com/dejisec/cendre/internal/metrics"
	"github.com/dejisec/cendre/internal/ratelimit"
	"github.com/dejisec/cendre/internal/store/memory"
	"github.com/dejisec/cendre/internal/store/redis"
)

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "err", err)
		os.Exit(2)
	}
	return cfg
}

// buildStore connects the configured backend. When the Redis URL is set but
// the server is unreachable the process degrades to the in-memory backend
// rather than refusing to start; secrets then do not survive restarts.
func buildStore(ctx context.Context, cfg *config.Config, clock app.Clock) app.SecretStore {
	if cfg.RedisURL == "" {
		slog.Info("using in-memory secret store")
		return memory.New(clock)
	}
	st, err := redis.Open(ctx, cfg.RedisURL, cfg.RedisKeyPrefix, clock)
	if err != nil {
		slog.Warn("redis unavailable, falling back to in-memory store", "err", err)
		return memory.New(clock)
	}
	slog.Info("using redis secret store", "key_prefix", cfg.RedisKeyPrefix)
	return st
}

func buildService(st app.SecretStore, cfg *config.Config) *app.Service {
	return &app.Service{Store: st, MaxTTLSecs: cfg.MaxTTLSecs}
}

func buildHandler(svc *app.Service, cfg *config.Config, clock app.Clock) http.Handler {
	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow, clock)
	h := httpx.New(svc, limiter, metrics.New())
	return h.Router()
}

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{Addr: cfg.Addr, Handler: handler, ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second, IdleTimeout: 120 * time.Second}
}

func run() error {
	cfg := loadConfig()
	clock := app.RealClock{}
	st := buildStore(context.Background(), cfg, clock)
	svc := buildService(st, cfg)
	srv := newServer(cfg, buildHandler(svc, cfg, clock))
	slog.Info("starting server", "addr", cfg.Addr, "pid", os.Getpid())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

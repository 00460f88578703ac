// Package app defines the application layer "ports" (interfaces) that the core
// use-cases of Cendre depend upon. It follows a hexagonal (ports & adapters)
// design: this package declares what the core needs, while adapter packages
// (the in-memory and Redis stores, the HTTP layer) provide concrete
// implementations. No I/O, logging, or network concerns belong here.
package app

import (
	"context"
	"time"

	"github.com/dejisec/cendre/internal/domain"
)

// Clock abstracts time to enable deterministic testing of TTL / expiry logic.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
}

// RealClock implements Clock using the system wall clock in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

// SecretStore is the storage port for secrets. Implementations must provide
// one-time-read semantics: once a secret has been returned by
// GetAndDeleteSecret, no caller may ever retrieve it again, even under
// arbitrary concurrent interleaving.
type SecretStore interface {
	// StoreSecret persists a new secret with a freshly generated ID and the
	// current creation time, and returns the full record. It either fully
	// persists or returns an error with nothing stored.
	StoreSecret(ctx context.Context, ciphertext, iv string, ttlSecs uint32) (domain.Secret, error)

	// GetAndDeleteSecret atomically looks up id, removes it from storage, and
	// returns the record with ReadAt stamped if it exists and is not expired.
	// The boolean is false when the secret is absent; never-existed,
	// already-read, and expired are deliberately indistinguishable. Absence is
	// not an error.
	GetAndDeleteSecret(ctx context.Context, id string) (domain.Secret, bool, error)

	// Ping is a lightweight liveness check with no side effects on stored data.
	Ping(ctx context.Context) error
}

// RateLimiter is the admission-control port consumed by the HTTP layer.
type RateLimiter interface {
	// Allow reports whether the identity may proceed, consuming one slot from
	// its current window when permitted.
	Allow(identity string) bool
}

// Package memory provides the in-process implementation of the app.SecretStore
// port. It keeps all secrets in a single lock-guarded map and enforces TTL
// lazily at read time, so that swapping it for the Redis backend never changes
// observable behavior.
package memory

import (
	"context"
	"sync"

	"github.com/dejisec/cendre/internal/app"
	"github.com/dejisec/cendre/internal/domain"
)

var _ app.SecretStore = (*Store)(nil)

// Store is an in-process secret store. The zero value is not usable; construct
// via New.
type Store struct {
	clock app.Clock

	mu      sync.RWMutex
	secrets map[string]domain.Secret
}

// New returns an empty in-process store using the provided clock.
func New(clock app.Clock) *Store {
	return &Store{
		clock:   clock,
		secrets: make(map[string]domain.Secret),
	}
}

// StoreSecret constructs the record and inserts it under one exclusive lock.
func (s *Store) StoreSecret(_ context.Context, ciphertext, iv string, ttlSecs uint32) (domain.Secret, error) {
	sec, err := domain.NewSecret(ciphertext, iv, ttlSecs, s.clock.Now())
	if err != nil {
		return domain.Secret{}, err
	}
	s.mu.Lock()
	s.secrets[sec.ID] = sec
	s.mu.Unlock()
	return sec, nil
}

// GetAndDeleteSecret removes the entry unconditionally under the exclusive
// lock, then inspects it. Expired entries are treated as absent and are not
// reinserted, which is the only expiry enforcement this backend performs;
// entries that are never looked up persist until process end.
func (s *Store) GetAndDeleteSecret(_ context.Context, id string) (domain.Secret, bool, error) {
	s.mu.Lock()
	sec, ok := s.secrets[id]
	if ok {
		delete(s.secrets, id)
	}
	s.mu.Unlock()
	if !ok {
		return domain.Secret{}, false, nil
	}
	now := s.clock.Now()
	if sec.IsExpiredAt(now) {
		return domain.Secret{}, false, nil
	}
	sec.MarkRead(now)
	return sec, true, nil
}

// Ping reports liveness; the in-process store has nothing to verify beyond
// being constructed.
func (s *Store) Ping(_ context.Context) error { return nil }

// Len reports the number of live entries. Used by tests and the readiness probe.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.secrets)
}

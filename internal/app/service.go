// Package app contains the application orchestration layer for Cendre. It wires
// domain validation with the storage port without performing any I/O itself.
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dejisec/cendre/internal/domain"
)

// ErrNotFound indicates the secret was not found, already consumed, or expired.
// The storage port reports absence as a boolean; the service folds it into this
// sentinel so the HTTP layer has a single error to map. The three causes are
// deliberately indistinguishable.
var ErrNotFound = errors.New("secret not found")

// Service orchestrates secret creation and one-time consumption using the
// injected store.
type Service struct {
	Store SecretStore
	// MaxTTLSecs optionally lowers the accepted TTL ceiling below the domain
	// maximum. Zero means the domain maximum applies unchanged.
	MaxTTLSecs uint32
}

// CreateSecret validates inputs and delegates persistence to the store, which
// assigns the ID and creation time. Returns the full stored record.
func (s *Service) CreateSecret(ctx context.Context, ciphertext, iv string, ttlSecs uint32) (domain.Secret, error) {
	if strings.TrimSpace(ciphertext) == "" || strings.TrimSpace(iv) == "" {
		return domain.Secret{}, domain.ErrEmptyPayload
	}
	if err := domain.ValidateTTLSecs(ttlSecs); err != nil {
		return domain.Secret{}, err
	}
	if s.MaxTTLSecs > 0 && ttlSecs > s.MaxTTLSecs {
		return domain.Secret{}, domain.ErrTTLInvalid
	}
	return s.Store.StoreSecret(ctx, ciphertext, iv, ttlSecs)
}

// ConsumeSecret retrieves and destroys the secret identified by id. IDs that
// cannot have been issued short-circuit to ErrNotFound without touching the
// store; the response is indistinguishable from a miss.
func (s *Service) ConsumeSecret(ctx context.Context, id string) (domain.Secret, error) {
	if !domain.SecretID(id).Valid() {
		return domain.Secret{}, ErrNotFound
	}
	sec, found, err := s.Store.GetAndDeleteSecret(ctx, id)
	if err != nil {
		return domain.Secret{}, err
	}
	if !found {
		return domain.Secret{}, ErrNotFound
	}
	return sec, nil
}

// Ping reports backend liveness.
func (s *Service) Ping(ctx context.Context) error {
	return s.Store.Ping(ctx)
}

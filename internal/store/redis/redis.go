// Package redis provides the Redis-backed implementation of the
// app.SecretStore port. Secrets are stored as JSON documents under a
// namespaced key with expiry delegated to Redis's native per-key TTL, so no
// local expiry check is needed on the read path.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dejisec/cendre/internal/app"
	"github.com/dejisec/cendre/internal/domain"
	"github.com/dejisec/cendre/internal/store"
)

// DefaultKeyPrefix namespaces secret keys in a shared Redis instance.
const DefaultKeyPrefix = "secret:"

var _ app.SecretStore = (*Store)(nil)

// Store is a Redis-backed secret store. Construct via New or Open.
type Store struct {
	client *goredis.Client
	prefix string
	clock  app.Clock

	// mu serializes the read-then-delete pair so that concurrent consumers of
	// the same id within this process observe exactly one winner. StoreSecret
	// and Ping are single round trips and need no serialization; the client
	// itself is safe for concurrent use.
	mu sync.Mutex
}

// New wraps an existing client. An empty prefix falls back to DefaultKeyPrefix.
func New(client *goredis.Client, prefix string, clock app.Clock) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix, clock: clock}
}

// Open connects to the Redis instance at url (redis://...) and verifies the
// connection with a PING before returning the store.
func Open(ctx context.Context, url, prefix string, clock app.Clock) (*Store, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, store.NewBackendError("parse redis url", err)
	}
	client := goredis.NewClient(opts)
	s := New(client, prefix, clock)
	if err := s.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying client connections.
func (s *Store) Close() error { return s.client.Close() }

func (s *Store) key(id string) string { return s.prefix + id }

// StoreSecret serializes the record and writes it with an absolute expiry of
// ttlSecs seconds enforced by Redis.
func (s *Store) StoreSecret(ctx context.Context, ciphertext, iv string, ttlSecs uint32) (domain.Secret, error) {
	sec, err := domain.NewSecret(ciphertext, iv, ttlSecs, s.clock.Now())
	if err != nil {
		return domain.Secret{}, err
	}
	doc, err := json.Marshal(sec)
	if err != nil {
		return domain.Secret{}, store.NewBackendError("marshal secret", err)
	}
	ttl := time.Duration(ttlSecs) * time.Second
	if err := s.client.Set(ctx, s.key(sec.ID), doc, ttl).Err(); err != nil {
		return domain.Secret{}, store.NewBackendError("redis set", err)
	}
	return sec, nil
}

// GetAndDeleteSecret reads the key, stamps ReadAt locally, deletes the key,
// and returns the record. Redis enforces expiry authoritatively, so a key that
// outlived its TTL is simply gone. If the delete after a successful read
// fails, the record is still returned but may linger in Redis until its TTL
// removes it; that is logged rather than hidden.
func (s *Store) GetAndDeleteSecret(ctx context.Context, id string) (domain.Secret, bool, error) {
	key := s.key(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return domain.Secret{}, false, nil
	}
	if err != nil {
		return domain.Secret{}, false, store.NewBackendError("redis get", err)
	}
	var sec domain.Secret
	if err := json.Unmarshal([]byte(doc), &sec); err != nil {
		return domain.Secret{}, false, store.NewBackendError("unmarshal secret", err)
	}
	sec.MarkRead(s.clock.Now())
	if err := s.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("delete after read failed; key lingers until ttl expiry", "err", err)
	}
	return sec, true, nil
}

// Ping issues a Redis PING.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return store.NewBackendError("redis ping", err)
	}
	return nil
}

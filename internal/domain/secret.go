// Package domain secret.go defines the Secret entity and its lifecycle rules.
package domain

import "time"

// Secret is the stored record for one encrypted payload. The server never sees
// plaintext; Ciphertext and IV are opaque client-produced values. All fields
// except ReadAt are immutable after creation, and ReadAt is set at most once.
type Secret struct {
	ID         string     `json:"id"`
	Ciphertext string     `json:"ciphertext"`
	IV         string     `json:"iv"`
	CreatedAt  time.Time  `json:"created_at"`
	TTLSecs    uint32     `json:"ttl_secs"`
	ReadAt     *time.Time `json:"read_at"`
}

// NewSecret constructs a Secret with a freshly generated ID and the provided
// creation instant. The TTL must already be validated by the caller.
func NewSecret(ciphertext, iv string, ttlSecs uint32, now time.Time) (Secret, error) {
	id, err := NewID()
	if err != nil {
		return Secret{}, err
	}
	return Secret{
		ID:         id.String(),
		Ciphertext: ciphertext,
		IV:         iv,
		CreatedAt:  now,
		TTLSecs:    ttlSecs,
	}, nil
}

// ExpiresAt returns the instant at which the secret becomes unretrievable.
func (s *Secret) ExpiresAt() time.Time {
	return s.CreatedAt.Add(time.Duration(s.TTLSecs) * time.Second)
}

// IsExpiredAt reports whether the secret is expired at the given instant.
// Expiry is inclusive: a secret is gone exactly at CreatedAt+TTL.
func (s *Secret) IsExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt())
}

// MarkRead stamps the secret as read at the provided instant.
func (s *Secret) MarkRead(when time.Time) {
	t := when
	s.ReadAt = &t
}

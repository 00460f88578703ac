package domain

import (
	"testing"
	"time"
)

func TestNewSecretSetsExpectedFields(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	s, err := NewSecret("ciphertext", "iv-val", 120, now)
	if err != nil {
		t.Fatalf("NewSecret error: %v", err)
	}
	if !SecretID(s.ID).Valid() {
		t.Fatalf("id not valid: %q", s.ID)
	}
	if s.Ciphertext != "ciphertext" || s.IV != "iv-val" {
		t.Fatalf("payload mismatch: %+v", s)
	}
	if s.TTLSecs != 120 {
		t.Fatalf("ttl mismatch: %d", s.TTLSecs)
	}
	if !s.CreatedAt.Equal(now) {
		t.Fatalf("created_at mismatch: %v", s.CreatedAt)
	}
	if s.ReadAt != nil {
		t.Fatalf("new secrets should not be marked as read")
	}
}

func TestExpiresAtIsCreatedAtPlusTTL(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	s, err := NewSecret("c", "i", 60, now)
	if err != nil {
		t.Fatalf("NewSecret error: %v", err)
	}
	if got := s.ExpiresAt().Sub(s.CreatedAt); got != 60*time.Second {
		t.Fatalf("expiry delta mismatch: %v", got)
	}
}

func TestIsExpiredAtBoundary(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	s, err := NewSecret("c", "i", 30, now)
	if err != nil {
		t.Fatalf("NewSecret error: %v", err)
	}
	if s.IsExpiredAt(now.Add(29 * time.Second)) {
		t.Fatalf("should not be expired before ttl elapses")
	}
	if !s.IsExpiredAt(now.Add(30 * time.Second)) {
		t.Fatalf("should be expired exactly at ttl boundary")
	}
	if !s.IsExpiredAt(now.Add(31 * time.Second)) {
		t.Fatalf("should be expired after ttl boundary")
	}
}

func TestMarkReadSetsReadAt(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	s, err := NewSecret("c", "i", 10, now)
	if err != nil {
		t.Fatalf("NewSecret error: %v", err)
	}
	when := now.Add(42 * time.Second)
	s.MarkRead(when)
	if s.ReadAt == nil || !s.ReadAt.Equal(when) {
		t.Fatalf("read_at mismatch: %v", s.ReadAt)
	}
}

func TestValidateTTLSecs(t *testing.T) {
	cases := []struct {
		ttl   uint32
		valid bool
	}{
		{0, false},
		{1, true},
		{60, true},
		{86400, true},
		{86401, false},
	}
	for _, tc := range cases {
		err := ValidateTTLSecs(tc.ttl)
		if tc.valid && err != nil {
			t.Errorf("ttl %d: unexpected error %v", tc.ttl, err)
		}
		if !tc.valid && err != ErrTTLInvalid {
			t.Errorf("ttl %d: expected ErrTTLInvalid, got %v", tc.ttl, err)
		}
		if IsTTLValid(tc.ttl) != tc.valid {
			t.Errorf("ttl %d: IsTTLValid mismatch", tc.ttl)
		}
	}
}

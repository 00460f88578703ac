// Package ratelimit implements fixed-window admission control keyed by a
// client-derived identity. It is a first line of defence against abuse, not a
// bulletproof guarantee: the hard window reset means a client can burst up to
// twice the limit across a window boundary.
package ratelimit

import (
	"sync"
	"time"

	"github.com/dejisec/cendre/internal/app"
)

var _ app.RateLimiter = (*Limiter)(nil)

// bucket tracks one identity's current window.
type bucket struct {
	windowStart time.Time
	count       int
}

// Limiter is a fixed-window counter per identity. All bucket reads and writes
// are serialized through one mutex; the critical section is O(1) and performs
// no I/O. Buckets are created lazily and never removed, bounded by the number
// of distinct identities seen.
type Limiter struct {
	max    int
	window time.Duration
	clock  app.Clock

	mu      sync.Mutex
	buckets map[string]*bucket
}

// New returns a Limiter allowing max requests per window per identity.
func New(max int, window time.Duration, clock app.Clock) *Limiter {
	return &Limiter{
		max:     max,
		window:  window,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether identity may proceed, consuming one slot when
// permitted. A denied check does not increment the count.
func (l *Limiter) Allow(identity string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[identity]
	if !ok {
		b = &bucket{windowStart: now}
		l.buckets[identity] = b
	}
	if now.Sub(b.windowStart) > l.window {
		b.windowStart = now
		b.count = 0
	}
	if b.count >= l.max {
		return false
	}
	b.count++
	return true
}

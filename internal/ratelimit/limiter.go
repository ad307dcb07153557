// Package ratelimit throttles repeated API calls per logical operation. Each
// operation identifier gets its own cooldown window so that, say, refreshing
// the friends list does not block fetching a page of avatars.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Window is the cooldown applied between two sends of the same identifier.
// It is fixed for every operation; callers vary the identifier, not the window.
const Window = 60 * time.Second

// Limiter tracks one token bucket per operation identifier. A bucket holds a
// single token refilled once per Window, which makes CanSend an atomic
// check-and-set: the first call consumes the token, later calls within the
// window are refused.
//
// Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	now     func() time.Time
}

// New returns a limiter running on the wall clock.
func New() *Limiter {
	return NewWithClock(time.Now)
}

// NewWithClock returns a limiter that reads time through now. Tests use this
// to step through the cooldown without sleeping.
func NewWithClock(now func() time.Time) *Limiter {
	return &Limiter{
		buckets: make(map[string]*rate.Limiter),
		now:     now,
	}
}

// CanSend reports whether a request for ident may be sent now, and if so
// records the send. Calling it twice in a row for the same identifier returns
// true then false.
func (l *Limiter) CanSend(ident string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ident]
	if !ok {
		b = rate.NewLimiter(rate.Every(Window), 1)
		l.buckets[ident] = b
	}
	return b.AllowN(l.now(), 1)
}

// WhenNextAllowed renders how long until ident may be sent again: "now" when a
// send would be permitted, otherwise the remaining cooldown as whole seconds,
// e.g. "42 seconds". It never consumes the send slot.
func (l *Limiter) WhenNextAllowed(ident string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ident]
	if !ok {
		return "now"
	}
	tokens := b.TokensAt(l.now())
	if tokens >= 1 {
		return "now"
	}
	remaining := time.Duration((1 - tokens) * float64(Window))
	secs := int(remaining.Round(time.Second) / time.Second)
	if secs <= 0 {
		return "now"
	}
	return fmt.Sprintf("%d seconds", secs)
}

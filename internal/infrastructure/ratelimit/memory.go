// Package ratelimit provides an in-process fixed-window rate limiter, used
// when no Redis instance is configured.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/dishdash/dish-service/internal/core/ports"
)

type entry struct {
	windowStart time.Time
	count       int
}

// MemoryLimiter is a mutex-guarded fixed-window counter keyed by source.
// Entries are created lazily on first request and overwritten when their
// window elapses; the map is bounded by process lifetime.
type MemoryLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	entries  map[string]entry

	// now is swappable for tests.
	now func() time.Time
}

func NewMemoryLimiter(capacity int, window time.Duration) *MemoryLimiter {
	if capacity < 1 {
		capacity = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryLimiter{
		capacity: capacity,
		window:   window,
		entries:  make(map[string]entry),
		now:      time.Now,
	}
}

// Allow performs an atomic increment-and-check for key. The window is
// aligned to the first request that created the entry, not to a rolling
// average, so callers near a window edge may burst up to twice the capacity.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (ports.Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStart) >= l.window {
		l.entries[key] = entry{windowStart: now, count: 1}
		return ports.Decision{Allowed: true, Remaining: l.capacity - 1}, nil
	}

	if e.count >= l.capacity {
		retry := l.window - now.Sub(e.windowStart)
		if retry < 0 {
			retry = 0
		}
		return ports.Decision{Allowed: false, Remaining: 0, RetryAfter: retry}, nil
	}

	e.count++
	l.entries[key] = e
	return ports.Decision{Allowed: true, Remaining: l.capacity - e.count}, nil
}

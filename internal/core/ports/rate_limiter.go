package ports

import (
	"context"
	"time"
)

// Decision is the outcome of a single rate-limit check.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter caps operations per source key within fixed, non-overlapping
// windows. The window starts at the first request carrying a given key and
// resets once the configured duration elapses.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

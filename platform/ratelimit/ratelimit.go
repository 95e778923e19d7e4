// Package ratelimit provides fixed window request counters used to admit or reject requests per client.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of a single admission check
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// Reset is how long until the current window ends
	Reset time.Duration
}

// Limiter decides whether the request identified by key fits in the current window
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

func decide(limit int, count int64, reset time.Duration) Decision {
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		Reset:     reset,
	}
}

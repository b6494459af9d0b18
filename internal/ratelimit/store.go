package ratelimit

import (
	"context"
	"time"
)

// Store counts hits per key inside fixed windows. Hit records one request and
// returns the count in the current window and when the window resets.
type Store interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
}

package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"contacts-api/internal/utils"
)

type KeyFunc func(r *http.Request) string

type Options struct {
	Store              Store
	Limit              int
	Window             time.Duration
	KeyFn              KeyFunc
	KeyHeader          string
	TrustXForwardedFor bool
	// OnLimited writes the rejection. Headers are already set.
	OnLimited http.HandlerFunc
}

func DefaultKeyFunc(keyHeader string, trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if keyHeader != "" {
			if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
				return v
			}
		}

		if trustXFF {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		return strings.TrimSpace(r.RemoteAddr)
	}
}

func defaultOnLimited(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func secondsUntil(t time.Time) int {
	s := int(math.Ceil(time.Until(t).Seconds()))
	if s < 0 {
		return 0
	}
	return s
}

func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.Store == nil || opts.Limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
	}
	if opts.OnLimited == nil {
		opts.OnLimited = defaultOnLimited
	}
	policy := strconv.Itoa(opts.Limit) + ";w=" + strconv.Itoa(int(opts.Window.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)
			count, resetAt, err := opts.Store.Hit(r.Context(), key, opts.Window)
			if err != nil {
				utils.LogError("Rate limit store failed for %s: %v", key, err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := opts.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			reset := secondsUntil(resetAt)

			h := w.Header()
			h.Set("RateLimit-Policy", policy)
			h.Set("RateLimit-Limit", strconv.Itoa(opts.Limit))
			h.Set("RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("RateLimit-Reset", strconv.Itoa(reset))

			if count > opts.Limit {
				h.Set("Retry-After", strconv.Itoa(reset))
				opts.OnLimited(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package httpx

import (
	"context"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientdesk/pkg/slogx"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// Name identifies the profile. Shared backends namespace their counters by it.
	Name string
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

// Common rate limit profiles. Override with RATELIMIT_{NAME}_REQUESTS,
// RATELIMIT_{NAME}_WINDOW_SEC and RATELIMIT_{NAME}_BURST.
var (
	// StrictLimit for session bootstrap and dev token minting.
	StrictLimit = RateLimitConfig{Name: "strict", RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	// ModerateLimit for writes.
	ModerateLimit = RateLimitConfig{Name: "moderate", RequestsPerWindow: 60, Window: time.Minute, Burst: 60}

	// LenientLimit for authenticated reads.
	LenientLimit = RateLimitConfig{Name: "lenient", RequestsPerWindow: 300, Window: time.Minute, Burst: 300}

	// PublicLimit for probes and docs.
	PublicLimit = RateLimitConfig{Name: "public", RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv reads rate limit configuration from environment variables.
// Environment variables follow the pattern: RATELIMIT_{prefix}_{field}
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if val := os.Getenv("RATELIMIT_" + prefix + "_REQUESTS"); val != "" {
		if requests, err := strconv.Atoi(val); err == nil && requests > 0 {
			config.RequestsPerWindow = requests
		}
	}

	if val := os.Getenv("RATELIMIT_" + prefix + "_WINDOW_SEC"); val != "" {
		if windowSec, err := strconv.Atoi(val); err == nil && windowSec > 0 {
			config.Window = time.Duration(windowSec) * time.Second
		}
	}

	if val := os.Getenv("RATELIMIT_" + prefix + "_BURST"); val != "" {
		if burst, err := strconv.Atoi(val); err == nil && burst > 0 {
			config.Burst = burst
		}
	}

	return config
}

// KeyExtractor is a function that extracts a unique key from the request
// for rate limiting purposes (e.g., IP address, user ID)
type KeyExtractor func(*http.Request) string

// IPKeyExtractor extracts the client IP address from the request.
// It handles X-Forwarded-For and X-Real-IP headers for proxied requests.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor extracts the user ID from the request context.
// Returns empty string if no user ID is found.
func UserIDKeyExtractor(r *http.Request) string {
	id, _ := UserIDFromContext(r.Context())
	return id
}

// CompositeKeyExtractor combines multiple key extractors with a separator.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, extractor := range extractors {
			if key := extractor(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// Limiter decides whether a request identified by key may proceed. When
// denied, retryAfter says how long until the next request would be allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// LimiterFactory builds a Limiter for a profile.
type LimiterFactory func(RateLimitConfig) Limiter

// RateLimiter builds rate limiting middleware on top of a backend.
// The zero value uses in-process token buckets.
type RateLimiter struct {
	New LimiterFactory
}

func (rl *RateLimiter) limiter(config RateLimitConfig) Limiter {
	if rl == nil || rl.New == nil {
		return NewLocalLimiter(config)
	}
	return rl.New(config)
}

// ByIP limits by client IP address.
func (rl *RateLimiter) ByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(rl.limiter(config), config, IPKeyExtractor)
}

// ByUser limits by authenticated subject, plus IP.
func (rl *RateLimiter) ByUser(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(rl.limiter(config), config, CompositeKeyExtractor(":",
		UserIDKeyExtractor,
		IPKeyExtractor,
	))
}

// RateLimitByIP limits by IP using in-process buckets.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return (*RateLimiter)(nil).ByIP(config)
}

// RateLimitByUser limits by user using in-process buckets.
func RateLimitByUser(config RateLimitConfig) Middleware {
	return (*RateLimiter)(nil).ByUser(config)
}

// RateLimitMiddleware rejects requests the limiter denies with 429. Backend
// errors are logged and the request is allowed through.
func RateLimitMiddleware(limiter Limiter, config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			key := keyExtractor(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			allowed, delay, err := limiter.Allow(ctx, key)
			if err != nil {
				log.Error("rate limit backend failed, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				retryAfter := max(int(delay.Seconds()), 1)

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", config.Window.String())

				log.Warn("rate limit exceeded",
					"key", key,
					"endpoint", r.URL.Path,
					"retry_after", retryAfter,
				)

				WriteError(w, http.StatusTooManyRequests,
					"rate_limit_exceeded", "Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package httpx

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LocalLimiter keeps one token bucket per key in process memory.
type LocalLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

// NewLocalLimiter creates token buckets refilling at
// RequestsPerWindow/Window with the configured burst.
func NewLocalLimiter(config RateLimitConfig) *LocalLimiter {
	return &LocalLimiter{
		rate:        rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}
}

// Allow consumes a token for key.
func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	limiter := l.get(key)
	if limiter.Allow() {
		return true, 0, nil
	}

	// Peek at when the next token lands without consuming it.
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()
	return false, delay, nil
}

func (l *LocalLimiter) get(key string) *rate.Limiter {
	if limiter, ok := l.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	actual, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.rate, l.burst))
	l.maybeCleanup()
	return actual.(*rate.Limiter)
}

// maybeCleanup drops idle buckets (full of tokens) at most every 5 minutes.
func (l *LocalLimiter) maybeCleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastCleanup) < 5*time.Minute {
		return
	}
	l.lastCleanup = time.Now()

	l.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}

package tray

import (
	"golang.org/x/time/rate"
)

// rateLimiter decides whether a "Show calendar" click may render.
type rateLimiter interface {
	Allow() bool
}

// limiterAdapter adapts a token bucket to rateLimiter. A nil adapter
// allows every click.
type limiterAdapter struct {
	limiter *rate.Limiter
}

// newTokenBucketLimiter allows ratePerSecond clicks with bursts of burst
// rapid clicks. Non-positive values fall back to one.
func newTokenBucketLimiter(ratePerSecond float64, burst int) rateLimiter {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return &limiterAdapter{
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
	}
}

func (l *limiterAdapter) Allow() bool {
	if l == nil || l.limiter == nil {
		return true
	}
	return l.limiter.Allow()
}

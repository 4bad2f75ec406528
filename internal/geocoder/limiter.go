package geocoder

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter gates outbound provider calls. *rate.Limiter satisfies it.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NewLimiter allows one call per minDelay with no burst. A non-positive
// minDelay disables limiting.
func NewLimiter(minDelay time.Duration) *rate.Limiter {
	if minDelay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(minDelay), 1)
}

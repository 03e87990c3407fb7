package util

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles how fast modules enter the analysis worker pool. It
// narrows x/time's token bucket to the one blocking call the dispatch loop
// makes; there is exactly one limiter per App, configured from
// analysis.module_rate and analysis.burst.
type Limiter struct {
	bucket *rate.Limiter
}

// NewLimiter admits perSecond modules with the given burst headroom.
func NewLimiter(perSecond float64, burst int) *Limiter {
	return &Limiter{bucket: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until n dispatch tokens are available or ctx is done.
func (l *Limiter) Wait(ctx context.Context, n int) error {
	return l.bucket.WaitN(ctx, n)
}

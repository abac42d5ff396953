package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Gate is a process-wide admission gate. It owns one token bucket per
// configured Api and serializes all bookkeeping internally; callers may
// invoke Wait from any number of goroutines.
type Gate struct {
	mu      sync.Mutex
	buckets map[Api]*bucket
	now     func() time.Time
}

type bucket struct {
	limit      Limit
	tokens     float64
	lastRefill time.Time
}

// NewGate creates a gate from the given per-bucket limits. The gate lives
// for the life of the owning client and is never torn down.
func NewGate(cfg Config) *Gate {
	g := &Gate{
		buckets: make(map[Api]*bucket, len(cfg)),
		now:     time.Now,
	}
	for api, limit := range cfg {
		g.SetLimit(api, limit)
	}
	return g
}

// SetLimit installs or replaces the limit for one bucket. The bucket starts
// full, so a burst up to Requests is admitted immediately.
func (g *Gate) SetLimit(api Api, limit Limit) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if limit.Requests <= 0 || limit.Per <= 0 {
		delete(g.buckets, api)
		return
	}
	g.buckets[api] = &bucket{
		limit:      limit,
		tokens:     float64(limit.Requests),
		lastRefill: g.now(),
	}
}

// Wait suspends the caller until every listed bucket can admit one request,
// then consumes one token from each and returns. It fails only when ctx is
// done; in that case no tokens have been consumed.
func (g *Gate) Wait(ctx context.Context, apis ...Api) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait, ok := g.tryAcquire(apis)
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tryAcquire consumes one token from every listed bucket if all of them
// have one available. Otherwise it consumes nothing and reports how long
// until the most depleted bucket refills.
func (g *Gate) tryAcquire(apis []Api) (time.Duration, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	var wait time.Duration
	for _, api := range apis {
		b, limited := g.buckets[api]
		if !limited {
			continue
		}
		b.refill(now)
		if b.tokens >= 1 {
			continue
		}
		needed := 1 - b.tokens
		w := time.Duration(needed / b.limit.rate() * float64(time.Second))
		if w > wait {
			wait = w
		}
	}
	if wait > 0 {
		return wait, false
	}

	for _, api := range apis {
		if b, limited := g.buckets[api]; limited {
			b.tokens--
		}
	}
	return 0, true
}

// Tokens reports the tokens currently available in one bucket. Unlimited
// buckets report -1.
func (g *Gate) Tokens(api Api) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	b, limited := g.buckets[api]
	if !limited {
		return -1
	}
	b.refill(g.now())
	return b.tokens
}

// refill adds tokens for the time elapsed since the last refill, capped at
// the bucket's burst size.
func (b *bucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.lastRefill = now

	b.tokens += elapsed * b.limit.rate()
	if b.tokens > float64(b.limit.Requests) {
		b.tokens = float64(b.limit.Requests)
	}
}

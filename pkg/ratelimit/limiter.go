package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	// RetryAt is when the next token is available. Zero when allowed.
	RetryAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
func (r *Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed || r.RetryAt.Before(now) {
		return 0
	}
	return r.RetryAt.Sub(now)
}

// Limiter decides whether the request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
	Reset(ctx context.Context, key string) error
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// TokenBucket is an in-memory Limiter with one rate.Limiter per key.
type TokenBucket struct {
	cfg Config
	now func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// Option configures a TokenBucket.
type Option func(*TokenBucket)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(tb *TokenBucket) { tb.now = now }
}

// New creates a TokenBucket. It returns ErrInvalidLimit for non-positive limits.
func New(cfg Config, opts ...Option) (*TokenBucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tb := &TokenBucket{cfg: cfg, now: time.Now, buckets: make(map[string]*bucket)}
	for _, opt := range opts {
		opt(tb)
	}
	return tb, nil
}

func (tb *TokenBucket) Allow(_ context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}
	now := tb.now()

	tb.mu.Lock()
	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Limit(tb.cfg.RPS), tb.cfg.Burst)}
		tb.buckets[key] = b
	}
	b.lastSeen = now
	allowed := b.lim.AllowN(now, 1)
	tokens := b.lim.TokensAt(now)
	tb.mu.Unlock()

	res := &Result{
		Allowed:   allowed,
		Limit:     tb.cfg.Burst,
		Remaining: max(0, int(math.Floor(tokens))),
	}
	if !allowed {
		wait := time.Duration((1 - tokens) / tb.cfg.RPS * float64(time.Second))
		res.RetryAt = now.Add(wait)
	}
	return res, nil
}

func (tb *TokenBucket) Reset(_ context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	tb.mu.Lock()
	delete(tb.buckets, key)
	tb.mu.Unlock()
	return nil
}

// Cleanup evicts buckets idle for longer than the configured TTL and
// returns how many were removed.
func (tb *TokenBucket) Cleanup() int {
	cutoff := tb.now().Add(-tb.cfg.IdleTTL)
	tb.mu.Lock()
	defer tb.mu.Unlock()

	removed := 0
	for key, b := range tb.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(tb.buckets, key)
			removed++
		}
	}
	return removed
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (tb *TokenBucket) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tb.Cleanup()
		}
	}
}

// Package ratelimit throttles provider API calls. The limit is enforced
// through Redis so every worker process shares one budget; when Redis is
// unreachable each process falls back to a local token bucket.
package ratelimit

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/wavemetrics/chartsync/internal/adapter"
	"github.com/wavemetrics/chartsync/internal/logger"
)

// Limiter gates outbound provider calls
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Wait blocks until a request slot is available or the context ends
	Wait(ctx context.Context, key string) error
}

// Config holds the request budget of one provider
type Config struct {
	// RequestsPerSecond is the shared request budget
	RequestsPerSecond int
	// Burst is the number of requests allowed above the steady rate
	Burst int
}

type limiter struct {
	cfg            Config
	redis          adapter.RedisRateLimiter
	local          *rate.Limiter
	clock          adapter.Clock
	redisAvailable atomic.Bool
}

// New creates a limiter backed by Redis with a local fallback. A nil Redis
// limiter runs local-only, which is how tests and single-process deployments
// use it.
func New(cfg Config, redisLimiter adapter.RedisRateLimiter, clock adapter.Clock) Limiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}

	l := &limiter{
		cfg:   cfg,
		redis: redisLimiter,
		local: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		clock: clock,
	}
	l.redisAvailable.Store(redisLimiter != nil)
	return l
}

// Wait blocks until a request slot is available or the context ends
func (l *limiter) Wait(ctx context.Context, key string) error {
	if !l.redisAvailable.Load() {
		return l.local.Wait(ctx)
	}

	for {
		res, err := l.redis.Allow(ctx, key, redis_rate.Limit{
			Rate:   l.cfg.RequestsPerSecond,
			Burst:  l.cfg.Burst,
			Period: time.Second,
		})
		if err != nil {
			// Degrade to the local bucket rather than blocking all fetches
			logger.WarnCtx(ctx, "redis rate limiter unavailable, using local fallback", zap.Error(err))
			l.redisAvailable.Store(false)
			return l.local.Wait(ctx)
		}

		if res.Allowed > 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("rate limit wait cancelled: %w", ctx.Err())
		case <-l.clock.After(res.RetryAfter):
		}
	}
}

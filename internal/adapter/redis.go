package adapter

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the slice of go-redis the pipeline needs: liveness checks
// and the connection handle the distributed rate limiter runs on.
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient,RedisRateLimiter=MockRedisRateLimiter
type RedisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	NewRateLimiter() RedisRateLimiter
	Close() error
}

// RedisRateLimiter wraps redis_rate's GCRA limiter so provider call
// budgets can be enforced across worker replicas.
type RedisRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RealRedisClient wraps a live go-redis client.
type RealRedisClient struct {
	client *redis.Client
}

// NewRedisClient connects to the given Redis instance
func NewRedisClient(addr, password string, db int) RedisClient {
	return &RealRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *RealRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	return r.client.Ping(ctx)
}

func (r *RealRedisClient) NewRateLimiter() RedisRateLimiter {
	return NewRateLimiter(redis_rate.NewLimiter(r.client))
}

func (r *RealRedisClient) Close() error {
	return r.client.Close()
}

// RealRateLimiter wraps the redis_rate.Limiter.
type RealRateLimiter struct {
	limiter *redis_rate.Limiter
}

// NewRateLimiter wraps an existing redis_rate.Limiter
func NewRateLimiter(limiter *redis_rate.Limiter) RedisRateLimiter {
	return &RealRateLimiter{limiter: limiter}
}

func (r *RealRateLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return r.limiter.Allow(ctx, key, limit)
}

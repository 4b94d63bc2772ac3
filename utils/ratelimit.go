package utils

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

// RateLimiter limits requests per client IP. The counter lives in memory, or
// in Redis when a URL is given so several instances share it.
type RateLimiter struct {
	middleware *stdlib.Middleware
	redis      *redis.Client
}

// NewRateLimiter parses a rate such as "30-M" (thirty per minute).
func NewRateLimiter(ctx context.Context, formatted, redisURL string, logger *zap.Logger) (*RateLimiter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	rl := &RateLimiter{}
	var store limiter.Store
	if redisURL == "" {
		store = memory.NewStore()
	} else {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		rl.redis = redis.NewClient(opts)
		if err := rl.redis.Ping(ctx).Err(); err != nil {
			_ = rl.redis.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		store, err = sredis.NewStoreWithOptions(rl.redis, limiter.StoreOptions{Prefix: "ayush_limiter"})
		if err != nil {
			_ = rl.redis.Close()
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
		logger.Info("rate limiter using redis store")
	}

	rl.middleware = stdlib.NewMiddleware(limiter.New(store, rate),
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			RespondJSON(w, http.StatusTooManyRequests, map[string]string{"error": "Too many requests, please slow down"})
		}),
		stdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("rate limiter store failure", zap.Error(err))
			RespondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}),
	)
	return rl, nil
}

// Handler wraps next with the limit.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return rl.middleware.Handler(next)
}

func (rl *RateLimiter) Close() error {
	if rl.redis != nil {
		return rl.redis.Close()
	}
	return nil
}

package grpc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	refreshTimeout  = 15 * time.Second
	cacheSetTimeout = 5 * time.Second
)

// jitterTTL spreads expirations by up to ±30s so cached responses for the
// same window token don't all expire together.
func jitterTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	return ttl + time.Duration(rand.Intn(30)-15)*time.Second
}

// FindAndCache is read-through caching with singleflight: a hit serves the
// cached value and refreshes it behind the response; a miss computes once
// per key regardless of concurrent callers and caches the result.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	if logger == nil {
		logger = zap.NewNop()
	}

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		logger.Debug("cache hit", zap.String("key", key))
		refreshBehind(c, sf, key, ttl, logger, fn)
		return cached, nil
	case errors.Is(err, redis.Nil):
		logger.Debug("cache miss", zap.String("key", key))
	default:
		logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	v, err, shared := sf.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			logger.Error("fetch failed", zap.String("key", key), zap.Error(err))
			return nil, err
		}
		storeAsync(c, key, value, ttl, logger)
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}
	if shared {
		logger.Debug("singleflight shared result", zap.String("key", key))
	}
	return value, nil
}

// refreshBehind recomputes the value off the request path and rewrites the
// cache entry. At most one refresh per key runs at a time.
func refreshBehind[T any](
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) {
	go func() {
		// Stagger refreshes from concurrent hits on the same key.
		time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)

		_, _, _ = sf.Do(key+":refresh", func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			defer cancel()

			value, err := fn(ctx)
			if err != nil {
				logger.Warn("background refresh failed", zap.String("key", key), zap.Error(err))
				return nil, err
			}
			storeAsync(c, key, value, ttl, logger)
			return value, nil
		})
	}()
}

func storeAsync(c Cacher, key string, value any, ttl time.Duration, logger *zap.Logger) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cacheSetTimeout)
		defer cancel()

		if err := c.Set(ctx, key, value, jitterTTL(ttl)); err != nil {
			logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		} else {
			logger.Debug("cache updated", zap.String("key", key))
		}
	}()
}

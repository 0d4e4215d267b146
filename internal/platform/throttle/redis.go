package throttle

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

type redisLimiter struct {
	log    *logger.Logger
	rdb    *goredis.Client
	limit  int
	period time.Duration
	prefix string
}

// NewRedis shares attempt counters between instances through Redis.
func NewRedis(log *logger.Logger, addr string, limit int, period time.Duration) (Limiter, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	if limit <= 0 {
		limit = 5
	}
	if period <= 0 {
		period = 5 * time.Minute
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newRedisLimiter(log, rdb, limit, period), nil
}

func newRedisLimiter(log *logger.Logger, rdb *goredis.Client, limit int, period time.Duration) *redisLimiter {
	return &redisLimiter{
		log:    log.With("service", "RedisLimiter"),
		rdb:    rdb,
		limit:  limit,
		period: period,
		prefix: "companyinfo:throttle:",
	}
}

func (r *redisLimiter) Hit(ctx context.Context, key string) (bool, error) {
	k := r.prefix + key
	n, err := r.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("throttle hit: %w", err)
	}
	if n == 1 {
		// first hit opens the window
		if err := r.rdb.Expire(ctx, k, r.period).Err(); err != nil {
			r.log.Warn("Could not set throttle window", "key", key, "error", err)
		}
	}
	return n <= int64(r.limit), nil
}

func (r *redisLimiter) Reset(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

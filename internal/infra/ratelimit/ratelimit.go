// Package ratelimit provides fixed-window request limiters.
package ratelimit

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"buyhive/config"
	"buyhive/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "buyhive:ratelimit:"

// Params holds dependencies for the limiter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds a limiter from configuration: redis when an address is set,
// otherwise an in-process window. A disabled limiter allows everything.
func New(params Params) (service.RateLimiter, error) {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return allowAll{}, nil
	}
	if cfg.Limit <= 0 || cfg.Window <= 0 {
		return nil, errors.Errorf("invalid rate limit: limit=%d window=%s", cfg.Limit, cfg.Window)
	}

	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Info("Using in-memory rate limiter",
			slog.Int("limit", cfg.Limit),
			slog.Duration("window", cfg.Window),
		)

		return NewMemoryLimiter(cfg.Limit, cfg.Window), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Using redis rate limiter", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLimiter(client, cfg.Limit, cfg.Window), nil
}

type allowAll struct{}

func (allowAll) Allow(context.Context, string) (bool, error) {
	return true, nil
}

// RedisLimiter counts requests in redis with INCR on a key per window.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter creates a RedisLimiter
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow implements service.RateLimiter
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := keyPrefix + key + ":" + strconv.FormatInt(windowStart(l.now(), l.window), 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, windowKey)
		pipe.Expire(ctx, windowKey, l.window)

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to increment rate limit counter")
	}

	return incr.Val() <= int64(l.limit), nil
}

func windowStart(now time.Time, window time.Duration) int64 {
	return now.UnixNano() / int64(window)
}

// Module provides the rate limiter
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)

// Package cache implements the public menu cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodmarket/config"
	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/lifecycle"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix      = "foodmarket:menus:"
	defaultMenuTTL = 5 * time.Minute
)

// Params defines the parameters required for the Redis client
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the Redis client, or returns nil when no redis section is configured.
func NewRedisClient(params Params) *redis.Client {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Redis is not configured, menu cache disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         params.Config.Redis.Addr,
		Password:     params.Config.Redis.Password,
		DB:           params.Config.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional; an unreachable Redis only degrades reads.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

// redisMenuCache implements service.MenuCache with JSON values.
type redisMenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache returns a Redis backed cache, or a no-op cache when client is nil.
func NewMenuCache(client *redis.Client, cfg *config.Config) service.MenuCache {
	if client == nil {
		return noopMenuCache{}
	}

	ttl := defaultMenuTTL
	if cfg != nil && cfg.Cache != nil && cfg.Cache.MenuTTL > 0 {
		ttl = cfg.Cache.MenuTTL
	}

	return &redisMenuCache{client: client, ttl: ttl}
}

func (c *redisMenuCache) GetMenus(ctx context.Context, scope string) ([]*entity.Menu, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+scope).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read menu cache")
	}

	var menus []*entity.Menu
	if err := json.Unmarshal(raw, &menus); err != nil {
		// A corrupt entry counts as a miss and is overwritten on the next fill.
		return nil, false, nil
	}

	return menus, true, nil
}

func (c *redisMenuCache) SetMenus(ctx context.Context, scope string, menus []*entity.Menu) error {
	if menus == nil {
		menus = []*entity.Menu{}
	}

	raw, err := json.Marshal(menus)
	if err != nil {
		return errors.Wrap(err, "failed to encode menus")
	}

	if err := c.client.Set(ctx, keyPrefix+scope, raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write menu cache")
	}

	return nil
}

func (c *redisMenuCache) Invalidate(ctx context.Context, scopes ...string) error {
	if len(scopes) == 0 {
		return nil
	}

	keys := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		keys = append(keys, keyPrefix+scope)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate menu cache")
	}

	return nil
}

type noopMenuCache struct{}

func (noopMenuCache) GetMenus(context.Context, string) ([]*entity.Menu, bool, error) {
	return nil, false, nil
}

func (noopMenuCache) SetMenus(context.Context, string, []*entity.Menu) error {
	return nil
}

func (noopMenuCache) Invalidate(context.Context, ...string) error {
	return nil
}

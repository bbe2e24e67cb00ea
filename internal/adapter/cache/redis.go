package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/ports"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCategoryCache shares the category listing between API replicas.
// Redis failures degrade to cache misses.
type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.CategoryCache = (*RedisCategoryCache)(nil)

func NewRedisCategoryCache(ctx context.Context, conf RedisConfig) (*RedisCategoryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCategoryCache{client: client, ttl: conf.TTL}, nil
}

func (c *RedisCategoryCache) GetList(ctx context.Context) ([]domain.Category, bool) {
	payload, err := c.client.Get(ctx, categoriesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		zap.L().Warn("category cache read failed", zap.Error(err))
		return nil, false
	}

	var categories []domain.Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		zap.L().Warn("category cache entry is corrupt", zap.Error(err))
		return nil, false
	}

	return categories, true
}

func (c *RedisCategoryCache) SetList(ctx context.Context, categories []domain.Category) {
	payload, err := json.Marshal(categories)
	if err != nil {
		zap.L().Warn("category cache encode failed", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, categoriesKey, payload, c.ttl).Err(); err != nil {
		zap.L().Warn("category cache write failed", zap.Error(err))
	}
}

func (c *RedisCategoryCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, categoriesKey).Err(); err != nil {
		zap.L().Warn("category cache invalidation failed", zap.Error(err))
	}
}

func (c *RedisCategoryCache) Close() error {
	return c.client.Close()
}

func (c *RedisCategoryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

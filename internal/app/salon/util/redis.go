package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"atakuafor/internal/app/salon/entity"
	"atakuafor/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	servicesCacheKey = "catalog:services"
	productsCacheKey = "catalog:products"

	metricsService = "salon-api"
)

// RedisCache is the Redis-backed catalog cache. The public listings
// change rarely and are read on every page view, so one key per listing
// with a TTL is enough.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) SetServices(ctx context.Context, services []entity.Service, ttl time.Duration) error {
	return r.set(ctx, servicesCacheKey, services, ttl)
}

// GetServices returns the cached services listing, or (nil, nil) on a
// cache miss.
func (r *RedisCache) GetServices(ctx context.Context) ([]entity.Service, error) {
	var services []entity.Service
	ok, err := r.get(ctx, servicesCacheKey, &services)
	if err != nil || !ok {
		return nil, err
	}
	return services, nil
}

func (r *RedisCache) DeleteServices(ctx context.Context) error {
	return r.delete(ctx, servicesCacheKey)
}

func (r *RedisCache) SetProducts(ctx context.Context, products []entity.ProductWithStats, ttl time.Duration) error {
	return r.set(ctx, productsCacheKey, products, ttl)
}

// GetProducts returns the cached products listing (aggregates included),
// or (nil, nil) on a cache miss.
func (r *RedisCache) GetProducts(ctx context.Context) ([]entity.ProductWithStats, error) {
	var products []entity.ProductWithStats
	ok, err := r.get(ctx, productsCacheKey, &products)
	if err != nil || !ok {
		return nil, err
	}
	return products, nil
}

func (r *RedisCache) DeleteProducts(ctx context.Context) error {
	return r.delete(ctx, productsCacheKey)
}

func (r *RedisCache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		metrics.RecordRedisError(metricsService, "set")
		return fmt.Errorf("failed to cache %s: %w", key, err)
	}

	return nil
}

func (r *RedisCache) get(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheMiss(metricsService, key)
			return false, nil
		}
		metrics.RecordRedisError(metricsService, "get")
		return false, fmt.Errorf("failed to read %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	metrics.RecordCacheHit(metricsService, key)
	return true, nil
}

func (r *RedisCache) delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		metrics.RecordRedisError(metricsService, "del")
		return fmt.Errorf("failed to invalidate %s: %w", key, err)
	}
	return nil
}

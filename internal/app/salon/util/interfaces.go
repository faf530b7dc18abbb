package util

import (
	"context"
	"time"

	"atakuafor/internal/app/salon/entity"
)

// CatalogCache caches the public services and products listings.
// Used for dependency injection and to keep tests free of Redis.
type CatalogCache interface {
	SetServices(ctx context.Context, services []entity.Service, ttl time.Duration) error
	GetServices(ctx context.Context) ([]entity.Service, error)
	DeleteServices(ctx context.Context) error

	SetProducts(ctx context.Context, products []entity.ProductWithStats, ttl time.Duration) error
	GetProducts(ctx context.Context) ([]entity.ProductWithStats, error)
	DeleteProducts(ctx context.Context) error
}

// MessagePublisher publishes domain events to the message broker.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}

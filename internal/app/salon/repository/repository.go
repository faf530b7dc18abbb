package repository

import (
	"context"
	"errors"
	"time"

	"atakuafor/internal/app/salon/entity"

	"github.com/google/uuid"
)

var (
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrServiceNotFound        = errors.New("service not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrReviewNotFound         = errors.New("review not found")
	ErrAdminNotFound          = errors.New("admin user not found")
	ErrSessionNotFound        = errors.New("refresh token not found")
)

// ContactMessageRepository stores contact form submissions in PostgreSQL.
// Messages are immutable: there is no update operation.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	GetAll(ctx context.Context) ([]entity.ContactMessage, error) // newest first
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceRepository stores salon services in PostgreSQL.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error)
	GetAll(ctx context.Context) ([]entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository stores retail products in PostgreSQL.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetAll(ctx context.Context) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewRepository stores customer reviews in MongoDB and computes the
// product rating aggregates. Reviews are immutable in the public
// surface: create, read and delete only.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	GetAll(ctx context.Context) ([]entity.Review, error) // newest first
	Delete(ctx context.Context, id string) error

	// GetProductStats aggregates rating and review count per product id.
	GetProductStats(ctx context.Context) (map[string]entity.RatingStats, error)
	// GetStatsByProductID aggregates rating and review count for one product.
	// A product with no reviews yields zero stats, not an error.
	GetStatsByProductID(ctx context.Context, productID string) (entity.RatingStats, error)
}

// AdminRepository stores back-office accounts in PostgreSQL.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.AdminUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
}

// SessionRepository stores admin refresh tokens and the access token
// blacklist in Redis. Expiry is handled by Redis TTLs.
type SessionRepository interface {
	SaveRefreshToken(ctx context.Context, adminID uuid.UUID, token string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, token string) (uuid.UUID, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteAdminRefreshTokens(ctx context.Context, adminID uuid.UUID) error
	AddToBlacklist(ctx context.Context, token string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

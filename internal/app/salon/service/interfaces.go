package service

import (
	"context"

	"atakuafor/internal/app/salon/entity"
	"atakuafor/internal/app/salon/util"

	"github.com/google/uuid"
)

// CatalogServiceInterface is the catalog surface the handlers and the
// cache warmer depend on.
type CatalogServiceInterface interface {
	CreateService(ctx context.Context, req *entity.CreateServiceRequest) (*entity.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	GetAllServices(ctx context.Context) ([]entity.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *entity.UpdateServiceRequest) (*entity.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.ProductWithStats, error)
	GetAllProducts(ctx context.Context) ([]entity.ProductWithStats, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *entity.UpdateProductRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type ContactServiceInterface interface {
	CreateMessage(ctx context.Context, req *entity.CreateContactMessageRequest) (*entity.ContactMessage, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	GetAllMessages(ctx context.Context) ([]entity.ContactMessage, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, req *entity.CreateReviewRequest) (*entity.Review, error)
	GetReview(ctx context.Context, id string) (*entity.ReviewWithTarget, error)
	GetAllReviews(ctx context.Context) ([]entity.ReviewWithTarget, error)
	DeleteReview(ctx context.Context, id string) error
}

type AuthServiceInterface interface {
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
	Logout(ctx context.Context, accessToken string, claims *util.JWTClaims) error
	GetAdmin(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
}

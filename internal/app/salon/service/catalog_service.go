package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atakuafor/internal/app/salon/entity"
	"atakuafor/internal/app/salon/repository"
	"atakuafor/internal/app/salon/util"
	"atakuafor/pkg/logger"

	"github.com/google/uuid"
)

// CatalogService handles the public catalog: salon services and retail
// products. Listings are cached in Redis; product responses carry the
// review aggregates computed by the review repository.
type CatalogService struct {
	serviceRepo repository.ServiceRepository
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	cache       util.CatalogCache
	cacheTTL    time.Duration
}

func NewCatalogService(
	serviceRepo repository.ServiceRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	cache util.CatalogCache,
	cacheTTL time.Duration,
) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// === SERVICES ===

func (s *CatalogService) CreateService(ctx context.Context, req *entity.CreateServiceRequest) (*entity.Service, error) {
	service := &entity.Service{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidateServices(ctx)

	return service, nil
}

func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return service, nil
}

// GetAllServices returns the public services listing, served from the
// Redis cache when possible.
func (s *CatalogService) GetAllServices(ctx context.Context) ([]entity.Service, error) {
	services, err := s.cache.GetServices(ctx)
	if err == nil && services != nil {
		return services, nil
	}

	services, err = s.serviceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	if err := s.cache.SetServices(ctx, services, s.cacheTTL); err != nil {
		// data came from the store, a cold cache is not a failure
		logger.Warn().Err(err).Msg("Failed to cache services listing")
	}

	return services, nil
}

// UpdateService applies the supplied fields to the stored service.
// Fields omitted from the request keep their prior values.
func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, req *entity.UpdateServiceRequest) (*entity.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.ImageURL != nil {
		service.ImageURL = req.ImageURL
	}
	service.UpdatedAt = time.Now()

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidateServices(ctx)

	return service, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}

	// reviews referencing this service stay; they list with a null target
	s.invalidateServices(ctx)

	return nil
}

// === PRODUCTS ===

func (s *CatalogService) CreateProduct(ctx context.Context, req *entity.CreateProductRequest) (*entity.Product, error) {
	product := &entity.Product{
		ID:        uuid.New(),
		Title:     req.Title,
		Price:     req.Price,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidateProducts(ctx)

	return product, nil
}

// GetProduct returns a product with its review aggregates.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.ProductWithStats, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	stats, err := s.reviewRepo.GetStatsByProductID(ctx, product.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get product stats: %w", err)
	}

	return &entity.ProductWithStats{
		Product:     *product,
		Rating:      stats.Rating,
		ReviewCount: stats.Count,
	}, nil
}

// GetAllProducts returns the public products listing with review
// aggregates, served from the Redis cache when possible.
func (s *CatalogService) GetAllProducts(ctx context.Context) ([]entity.ProductWithStats, error) {
	cached, err := s.cache.GetProducts(ctx)
	if err == nil && cached != nil {
		return cached, nil
	}

	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	stats, err := s.reviewRepo.GetProductStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get product stats: %w", err)
	}

	withStats := make([]entity.ProductWithStats, 0, len(products))
	for _, p := range products {
		st := stats[p.ID.String()]
		withStats = append(withStats, entity.ProductWithStats{
			Product:     p,
			Rating:      st.Rating,
			ReviewCount: st.Count,
		})
	}

	if err := s.cache.SetProducts(ctx, withStats, s.cacheTTL); err != nil {
		logger.Warn().Err(err).Msg("Failed to cache products listing")
	}

	return withStats, nil
}

// UpdateProduct applies the supplied fields to the stored product.
// Fields omitted from the request keep their prior values.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *entity.UpdateProductRequest) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Price != nil {
		product.Price = req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidateProducts(ctx)

	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	// reviews referencing this product stay; they list with a null target
	s.invalidateProducts(ctx)

	return nil
}

func (s *CatalogService) invalidateServices(ctx context.Context) {
	if err := s.cache.DeleteServices(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate services cache")
	}
}

func (s *CatalogService) invalidateProducts(ctx context.Context) {
	if err := s.cache.DeleteProducts(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate products cache")
	}
}

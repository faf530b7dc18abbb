package repository

import (
	"context"
	"errors"

	"atakuafor/internal/app/salon/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates the PostgreSQL-backed service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	result := r.db.WithContext(ctx).Create(service)
	return result.Error
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var service entity.Service
	result := r.db.WithContext(ctx).First(&service, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, result.Error
	}

	return &service, nil
}

// GetByIDs returns the services matching the given ids. Missing ids are
// skipped silently; callers use this for display joins only.
func (r *serviceRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var services []entity.Service
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services)

	if result.Error != nil {
		return nil, result.Error
	}

	return services, nil
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]entity.Service, error) {
	// non-nil so an empty table encodes as [] in responses and the cache
	services := make([]entity.Service, 0)
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&services)

	if result.Error != nil {
		return nil, result.Error
	}

	return services, nil
}

// Update writes the full mutable field set of the service. Callers load
// the current row first and apply partial changes to it.
func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	result := r.db.WithContext(ctx).Model(service).Where("id = ?", service.ID).Updates(map[string]interface{}{
		"name":        service.Name,
		"description": service.Description,
		"price":       service.Price,
		"image_url":   service.ImageURL,
	})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entity.Service{}, "id = ?", id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

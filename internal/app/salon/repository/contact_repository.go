package repository

import (
	"context"
	"errors"

	"atakuafor/internal/app/salon/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository creates the PostgreSQL-backed contact
// message repository.
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	result := r.db.WithContext(ctx).Create(msg)
	return result.Error
}

func (r *contactMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	var msg entity.ContactMessage
	result := r.db.WithContext(ctx).First(&msg, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrContactMessageNotFound
		}
		return nil, result.Error
	}

	return &msg, nil
}

// GetAll returns all contact messages ordered newest first.
func (r *contactMessageRepository) GetAll(ctx context.Context) ([]entity.ContactMessage, error) {
	// non-nil so an empty inbox encodes as [] in responses
	messages := make([]entity.ContactMessage, 0)
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages)

	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}

func (r *contactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entity.ContactMessage{}, "id = ?", id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrContactMessageNotFound
	}

	return nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"atakuafor/internal/app/salon/entity"
	"atakuafor/internal/app/salon/repository"
	"atakuafor/internal/app/salon/util"
	"atakuafor/pkg/logger"
	"atakuafor/pkg/metrics"

	"github.com/google/uuid"
)

// ContactService handles the public contact form and the admin inbox.
type ContactService struct {
	contactRepo repository.ContactMessageRepository
	producer    util.MessagePublisher
}

func NewContactService(
	contactRepo repository.ContactMessageRepository,
	producer util.MessagePublisher,
) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		producer:    producer,
	}
}

// CreateMessage persists a contact form submission and publishes a
// CONTACT_MESSAGE_CREATED event for the notification pipeline.
func (s *ContactService) CreateMessage(ctx context.Context, req *entity.CreateContactMessageRequest) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	metrics.ContactMessagesCreated.Inc()

	event := entity.ContactMessageEvent{
		EventType: "CONTACT_MESSAGE_CREATED",
		MessageID: msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Timestamp: time.Now(),
	}
	if err := s.publishEvent(ctx, msg.ID.String(), event); err != nil {
		// the message is stored; a lost notification is not worth a 500
		logger.Warn().Err(err).Msg("Failed to publish contact message event")
	}

	return msg, nil
}

func (s *ContactService) GetMessage(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	msg, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContactMessageNotFound) {
			return nil, ErrContactMessageNotFound
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}

	return msg, nil
}

// GetAllMessages returns the inbox ordered newest first.
func (s *ContactService) GetAllMessages(ctx context.Context) ([]entity.ContactMessage, error) {
	messages, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact messages: %w", err)
	}

	return messages, nil
}

func (s *ContactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContactMessageNotFound) {
			return ErrContactMessageNotFound
		}
		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	return nil
}

func (s *ContactService) publishEvent(ctx context.Context, key string, event entity.ContactMessageEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal contact message event: %w", err)
	}

	if err := s.producer.PublishMessage(ctx, key, data); err != nil {
		return fmt.Errorf("failed to publish to kafka: %w", err)
	}

	return nil
}

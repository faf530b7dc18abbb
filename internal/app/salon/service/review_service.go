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

// ReviewService handles customer reviews. A review references exactly
// one product or service; listings are joined with the referenced
// record here, never in the handlers.
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	cache       util.CatalogCache
	producer    util.MessagePublisher
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	cache util.CatalogCache,
	producer util.MessagePublisher,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		cache:       cache,
		producer:    producer,
	}
}

// CreateReview validates the exactly-one target rule, checks that the
// referenced record exists, stores the review and publishes a
// REVIEW_CREATED event. Product reviews also invalidate the cached
// products listing since the aggregates change.
func (s *ReviewService) CreateReview(ctx context.Context, req *entity.CreateReviewRequest) (*entity.Review, error) {
	if (req.ProductID == nil) == (req.ServiceID == nil) {
		return nil, ErrReviewTarget
	}

	// target ids are stored in canonical lowercase form so joins and the
	// rating aggregation match regardless of the casing the client sent
	var targetProductID, targetServiceID *string

	if req.ProductID != nil {
		productID, err := uuid.Parse(*req.ProductID)
		if err != nil {
			return nil, ErrReviewTarget
		}
		if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, ErrReviewTarget
			}
			return nil, fmt.Errorf("failed to verify product: %w", err)
		}
		canonical := productID.String()
		targetProductID = &canonical
	} else {
		serviceID, err := uuid.Parse(*req.ServiceID)
		if err != nil {
			return nil, ErrReviewTarget
		}
		if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return nil, ErrReviewTarget
			}
			return nil, fmt.Errorf("failed to verify service: %w", err)
		}
		canonical := serviceID.String()
		targetServiceID = &canonical
	}

	review := &entity.Review{
		Name:      req.Name,
		Comment:   req.Comment,
		Rating:    req.Rating,
		ProductID: targetProductID,
		ServiceID: targetServiceID,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	metrics.ReviewsCreated.Inc()
	metrics.ReviewsRating.Observe(float64(review.Rating))

	if review.ProductID != nil {
		s.invalidateProducts(ctx)
	}

	event := entity.ReviewEvent{
		EventType: "REVIEW_CREATED",
		ReviewID:  review.ID.Hex(),
		ProductID: review.ProductID,
		ServiceID: review.ServiceID,
		Rating:    review.Rating,
		Timestamp: time.Now(),
	}
	if err := s.publishEvent(ctx, review.ID.Hex(), event); err != nil {
		// the review is stored; a lost event is not worth a 500
		logger.Warn().Err(err).Msg("Failed to publish review event")
	}

	return review, nil
}

// GetReview returns one review joined with its target.
func (s *ReviewService) GetReview(ctx context.Context, id string) (*entity.ReviewWithTarget, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	joined, err := s.joinTargets(ctx, []entity.Review{*review})
	if err != nil {
		return nil, err
	}

	return &joined[0], nil
}

// GetAllReviews returns all reviews, newest first, each joined with the
// product or service it refers to. Reviews whose target was deleted are
// kept with a null target.
func (s *ReviewService) GetAllReviews(ctx context.Context) ([]entity.ReviewWithTarget, error) {
	reviews, err := s.reviewRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return s.joinTargets(ctx, reviews)
}

// DeleteReview removes a review. Product reviews also invalidate the
// cached products listing since the aggregates change.
func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to get review: %w", err)
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if review.ProductID != nil {
		s.invalidateProducts(ctx)
	}

	return nil
}

// joinTargets bulk-loads the referenced products and services and
// attaches their summaries to the reviews.
func (s *ReviewService) joinTargets(ctx context.Context, reviews []entity.Review) ([]entity.ReviewWithTarget, error) {
	var productIDs, serviceIDs []uuid.UUID
	for _, review := range reviews {
		if review.ProductID != nil {
			if id, err := uuid.Parse(*review.ProductID); err == nil {
				productIDs = append(productIDs, id)
			}
		}
		if review.ServiceID != nil {
			if id, err := uuid.Parse(*review.ServiceID); err == nil {
				serviceIDs = append(serviceIDs, id)
			}
		}
	}

	products := make(map[string]entity.ProductSummary)
	if len(productIDs) > 0 {
		rows, err := s.productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load review products: %w", err)
		}
		for _, p := range rows {
			products[p.ID.String()] = entity.ProductSummary{
				ID:       p.ID,
				Title:    p.Title,
				ImageURL: p.ImageURL,
			}
		}
	}

	services := make(map[string]entity.ServiceSummary)
	if len(serviceIDs) > 0 {
		rows, err := s.serviceRepo.GetByIDs(ctx, serviceIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load review services: %w", err)
		}
		for _, sv := range rows {
			services[sv.ID.String()] = entity.ServiceSummary{
				ID:       sv.ID,
				Name:     sv.Name,
				ImageURL: sv.ImageURL,
			}
		}
	}

	joined := make([]entity.ReviewWithTarget, 0, len(reviews))
	for _, review := range reviews {
		item := entity.ReviewWithTarget{Review: review}
		if review.ProductID != nil {
			if summary, ok := products[*review.ProductID]; ok {
				item.Product = &summary
			}
		}
		if review.ServiceID != nil {
			if summary, ok := services[*review.ServiceID]; ok {
				item.Service = &summary
			}
		}
		joined = append(joined, item)
	}

	return joined, nil
}

func (s *ReviewService) invalidateProducts(ctx context.Context) {
	if err := s.cache.DeleteProducts(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate products cache")
	}
}

func (s *ReviewService) publishEvent(ctx context.Context, key string, event entity.ReviewEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal review event: %w", err)
	}

	if err := s.producer.PublishMessage(ctx, key, data); err != nil {
		return fmt.Errorf("failed to publish to kafka: %w", err)
	}

	return nil
}

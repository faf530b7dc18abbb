package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"atakuafor/internal/app/salon/entity"
	"atakuafor/internal/app/salon/repository"
	"atakuafor/internal/app/salon/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newReviewService(
	reviewRepo *mocks.MockReviewRepository,
	productRepo *mocks.MockProductRepository,
	serviceRepo *mocks.MockServiceRepository,
	cache *mocks.MockCatalogCache,
	producer *mocks.MockMessagePublisher,
) *ReviewService {
	return NewReviewService(reviewRepo, productRepo, serviceRepo, cache, producer)
}

func TestReviewService_CreateReview_ProductTarget(t *testing.T) {
	// Arrange
	ctx := context.Background()
	reviewRepo := new(mocks.MockReviewRepository)
	productRepo := new(mocks.MockProductRepository)
	serviceRepo := new(mocks.MockServiceRepository)
	cache := new(mocks.MockCatalogCache)
	producer := new(mocks.MockMessagePublisher)

	product := newTestProduct()
	productID := product.ID.String()

	productRepo.On("GetByID", ctx, product.ID).Return(product, nil)
	reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(args mock.Arguments) {
			review := args.Get(1).(*entity.Review)
			review.ID = primitive.NewObjectID()
			review.CreatedAt = time.Now()
		}).
		Return(nil)
	cache.On("DeleteProducts", ctx).Return(nil)
	producer.On("PublishMessage", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil)

	service := newReviewService(reviewRepo, productRepo, serviceRepo, cache, producer)

	req := &entity.CreateReviewRequest{
		Name:      "Ayşe Yılmaz",
		Comment:   "Harika bir ürün",
		Rating:    5,
		ProductID: &productID,
	}

	// Act
	review, err := service.CreateReview(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, review)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, &productID, review.ProductID)
	assert.Nil(t, review.ServiceID)

	reviewRepo.AssertExpectations(t)
	cache.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestReviewService_CreateReview_CanonicalizesTargetID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	reviewRepo := new(mocks.MockReviewRepository)
	productRepo := new(mocks.MockProductRepository)
	serviceRepo := new(mocks.MockServiceRepository)
	cache := new(mocks.MockCatalogCache)
	producer := new(mocks.MockMessagePublisher)

	product := newTestProduct()
	uppercaseID := strings.ToUpper(product.ID.String())

	productRepo.On("GetByID", ctx, product.ID).Return(product, nil)
	reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	cache.On("DeleteProducts", ctx).Return(nil)
	producer.On("PublishMessage", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil)

	service := newReviewService(reviewRepo, productRepo, serviceRepo, cache, producer)

	req := &entity.CreateReviewRequest{
		Name:      "Ayşe Yılmaz",
		Comment:   "Harika bir ürün",
		Rating:    5,
		ProductID: &uppercaseID,
	}

	// Act
	review, err := service.CreateReview(ctx, req)

	// Assert - the stored id is the lowercase form the joins and the
	// rating aggregation compare against
	require.NoError(t, err)
	require.NotNil(t, review.ProductID)
	assert.Equal(t, product.ID.String(), *review.ProductID)
}

func TestReviewService_CreateReview_ServiceTargetSkipsProductCacheInvalidation(t *testing.T) {
	// Arrange
	ctx := context.Background()
	reviewRepo := new(mocks.MockReviewRepository)
	productRepo := new(mocks.MockProductRepository)
	serviceRepo := new(mocks.MockServiceRepository)
	cache := new(mocks.MockCatalogCache)
	producer := new(mocks.MockMessagePublisher)

	svc := newTestService()
	serviceID := svc.ID.String()

	serviceRepo.On("GetByID", ctx, svc.ID).Return(svc, nil)
	reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	producer.On("PublishMessage", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8")).Return(nil)

	service := newReviewService(reviewRepo, productRepo, serviceRepo, cache, producer)

	req := &entity.CreateReviewRequest{
		Name:      "Ayşe Yılmaz",
		Comment:   "Çok memnun kaldım",
		Rating:    5,
		ServiceID: &serviceID,
	}

	// Act
	review, err := service.CreateReview(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, review)
	cache.AssertNotCalled(t, "DeleteProducts")
}

func TestReviewService_CreateReview_BothTargetsRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := newReviewService(
		new(mocks.MockReviewRepository),
		new(mocks.MockProductRepository),
		new(mocks.MockServiceRepository),
		new(mocks.MockCatalogCache),
		new(mocks.MockMessagePublisher),
	)

	productID := uuid.New().String()
	serviceID := uuid.New().String()
	req := &entity.CreateReviewRequest{
		Name:      "Ayşe Yılmaz",
		Comment:   "Test",
		Rating:    4,
		ProductID: &productID,
		ServiceID: &serviceID,
	}

	// Act
	review, err := service.CreateReview(ctx, req)

	// Assert
	assert.Nil(t, review)
	assert.ErrorIs(t, err, ErrReviewTarget)
}

func TestReviewService_CreateReview_NoTargetRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := newReviewService(
		new(mocks.MockReviewRepository),
		new(mocks.MockProductRepository),
		new(mocks.MockServiceRepository),
		new(mocks.MockCatalogCache),
		new(mocks.MockMessagePublisher),
	)

	// Act
	review, err := service.CreateReview(ctx, &entity.CreateReviewRequest{
		Name:    "Ayşe Yılmaz",
		Comment: "Test",
		Rating:  4,
	})

	// Assert
	assert.Nil(t, review)
	assert.ErrorIs(t, err, ErrReviewTarget)
}

func TestReviewService_CreateReview_UnknownProductRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	reviewRepo := new(mocks.MockReviewRepository)
	productRepo := new(mocks.MockProductRepository)

	missingID := uuid.New()
	missingIDStr := missingID.String()
	productRepo.On("GetByID", ctx, missingID).Return(nil, repository.ErrProductNotFound)

	service := newReviewService(
		reviewRepo,
		productRepo,
		new(mocks.MockServiceRepository),
		new(mocks.MockCatalogCache),
		new(mocks.MockMessagePublisher),
	)

	// Act
	review, err := service.CreateReview(ctx, &entity.CreateReviewRequest{
		Name:      "Ayşe Yılmaz",
		Comment:   "Test",
		Rating:    4,
		ProductID: &missingIDStr,
	})

	// Assert
	assert.Nil(t, review)
	assert.ErrorIs(t, err, ErrReviewTarget)
	reviewRepo.AssertNotCalled(t, "Create")
}

func TestReviewService_GetAllReviews_JoinsTargets(t *testing.T) {
	// Arrange
	ctx := context.Background()
	reviewRepo := new(mocks.MockReviewRepository)
	productRepo := new(mocks.MockProductRepository)
	serviceRepo := new(mocks.MockServiceRepository)

	product := newTestProduct()
	productID := product.ID.String()
	orphanID := uuid.New().String()

	reviews := []entity.Review{
		{ID: primitive.NewObjectID(), Name: "Ayşe", Comment: "Harika", Rating: 5, ProductID: &productID, CreatedAt: time.Now()},
		{ID: primitive.NewObjectID(), Name: "Fatma", Comment: "İyi", Rating: 4, ProductID: &orphanID, CreatedAt: time.Now().Add(-time.Hour)},
	}

	reviewRepo.On("GetAll", ctx).Return(reviews, nil)
	productRepo.On("GetByIDs", ctx, mock.AnythingOfType("[]uuid.UUID")).Return([]entity.Product{*product}, nil)

	service := newReviewService(
		reviewRepo,
		productRepo,
		serviceRepo,
		new(mocks.MockCatalogCache),
		new(mocks.MockMessagePublisher),
	)

	// Act
	got, err := service.GetAllReviews(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Product)
	assert.Equal(t, product.Title, got[0].Product.Title)

	// target was deleted since the review was written
	assert.Nil(t, got[1].Product)
	assert.Nil(t, got[1].Service)

	serviceRepo.AssertNotCalled(t, "GetByIDs")
}

func TestReviewService_GetReview_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	reviewRepo := new(mocks.MockReviewRepository)

	reviewRepo.On("GetByID", ctx, "missing-id").Return(nil, repository.ErrReviewNotFound)

	service := newReviewService(
		reviewRepo,
		new(mocks.MockProductRepository),
		new(mocks.MockServiceRepository),
		new(mocks.MockCatalogCache),
		new(mocks.MockMessagePublisher),
	)

	// Act
	review, err := service.GetReview(ctx, "missing-id")

	// Assert
	assert.Nil(t, review)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewService_DeleteReview_ProductReviewInvalidatesCache(t *testing.T) {
	// Arrange
	ctx := context.Background()
	reviewRepo := new(mocks.MockReviewRepository)
	cache := new(mocks.MockCatalogCache)

	productID := uuid.New().String()
	reviewID := primitive.NewObjectID()
	review := &entity.Review{ID: reviewID, Name: "Ayşe", Rating: 5, ProductID: &productID}

	reviewRepo.On("GetByID", ctx, reviewID.Hex()).Return(review, nil)
	reviewRepo.On("Delete", ctx, reviewID.Hex()).Return(nil)
	cache.On("DeleteProducts", ctx).Return(nil)

	service := newReviewService(
		reviewRepo,
		new(mocks.MockProductRepository),
		new(mocks.MockServiceRepository),
		cache,
		new(mocks.MockMessagePublisher),
	)

	// Act
	err := service.DeleteReview(ctx, reviewID.Hex())

	// Assert
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	reviewRepo := new(mocks.MockReviewRepository)

	reviewRepo.On("GetByID", ctx, "missing-id").Return(nil, repository.ErrReviewNotFound)

	service := newReviewService(
		reviewRepo,
		new(mocks.MockProductRepository),
		new(mocks.MockServiceRepository),
		new(mocks.MockCatalogCache),
		new(mocks.MockMessagePublisher),
	)

	// Act
	err := service.DeleteReview(ctx, "missing-id")

	// Assert
	assert.ErrorIs(t, err, ErrReviewNotFound)
	reviewRepo.AssertNotCalled(t, "Delete")
}

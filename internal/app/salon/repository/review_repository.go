package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"atakuafor/internal/app/salon/entity"

	"atakuafor/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates the MongoDB-backed review repository and
// ensures the lookup indexes exist.
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	collection := db.Collection("reviews")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, idx := range []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "product_id", Value: 1}},
			Options: options.Index().SetName("product_id_idx"),
		},
		{
			Keys:    bson.D{{Key: "service_id", Value: 1}},
			Options: options.Index().SetName("service_id_idx"),
		},
	} {
		if _, err := collection.Indexes().CreateOne(ctx, idx); err != nil {
			// the index may already exist; queries still work without it
			logger.Warn().Err(err).Msg("Failed to create review index")
		}
	}

	return &reviewRepository{collection: collection}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	review.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}

	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrReviewNotFound
	}

	var review entity.Review
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &review, nil
}

// GetAll returns all reviews ordered newest first.
func (r *reviewRepository) GetAll(ctx context.Context) ([]entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []entity.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrReviewNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// productStatsRow is the shape produced by the stats aggregation.
type productStatsRow struct {
	ProductID string  `bson:"_id"`
	Rating    float64 `bson:"rating"`
	Count     int     `bson:"count"`
}

// GetProductStats groups reviews by product id and computes the average
// rating and review count per product. Service reviews are excluded.
func (r *reviewRepository) GetProductStats(ctx context.Context) (map[string]entity.RatingStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"product_id": bson.M{"$ne": nil}}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$product_id",
			"rating": bson.M{"$avg": "$rating"},
			"count":  bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate product stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []productStatsRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode product stats: %w", err)
	}

	stats := make(map[string]entity.RatingStats, len(rows))
	for _, row := range rows {
		stats[row.ProductID] = entity.RatingStats{
			Rating: row.Rating,
			Count:  row.Count,
		}
	}

	return stats, nil
}

// GetStatsByProductID computes the aggregates for a single product.
// No reviews means zero stats, not an error.
func (r *reviewRepository) GetStatsByProductID(ctx context.Context, productID string) (entity.RatingStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"product_id": productID}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$product_id",
			"rating": bson.M{"$avg": "$rating"},
			"count":  bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return entity.RatingStats{}, fmt.Errorf("failed to aggregate product stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []productStatsRow
	if err := cursor.All(ctx, &rows); err != nil {
		return entity.RatingStats{}, fmt.Errorf("failed to decode product stats: %w", err)
	}

	if len(rows) == 0 {
		return entity.RatingStats{}, nil
	}

	return entity.RatingStats{Rating: rows[0].Rating, Count: rows[0].Count}, nil
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JSON field names are camelCase: that is the contract the website
// frontend was built against.

// ContactMessage is a message submitted through the public contact form.
// Messages are immutable once created; the admin panel only lists and
// deletes them.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service is a salon service (haircut, coloring, ...) shown on the
// public page and managed from the admin panel.
type Service struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description *string   `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	ImageURL    *string   `json:"imageUrl" gorm:"column:image_url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Product is a retail product (shampoo, care products, ...).
// Rating and review count are never stored on the row; they are
// aggregated from reviews at read time (see ProductWithStats).
type Product struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Price     *float64  `json:"price"`
	ImageURL  string    `json:"imageUrl" gorm:"column:image_url;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductWithStats is the read model returned by the product endpoints:
// the product row merged with its review aggregates.
type ProductWithStats struct {
	Product
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// RatingStats holds the review aggregates for a single product.
type RatingStats struct {
	Rating float64 `bson:"rating"`
	Count  int     `bson:"count"`
}

// AdminUser is a back-office account. The password hash is never
// serialized.
type AdminUser struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Review is a customer review stored in MongoDB. Exactly one of
// ProductID / ServiceID is set; the reference is a plain UUID string
// pointing into PostgreSQL and is never cascaded.
type Review struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Comment   string             `json:"comment" bson:"comment"`
	Rating    int                `json:"rating" bson:"rating"` // 1-5
	ProductID *string            `json:"productId" bson:"product_id"`
	ServiceID *string            `json:"serviceId" bson:"service_id"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}

// ProductSummary is the slice of a product shown next to its reviews.
type ProductSummary struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	ImageURL string    `json:"imageUrl"`
}

// ServiceSummary is the slice of a service shown next to its reviews.
type ServiceSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL *string   `json:"imageUrl"`
}

// ReviewWithTarget is the read model for review listings: the review
// joined with the product or service it refers to. Both targets are nil
// when the referenced record has been deleted since.
type ReviewWithTarget struct {
	Review
	Product *ProductSummary `json:"product,omitempty"`
	Service *ServiceSummary `json:"service,omitempty"`
}

// ContactMessageEvent is published to Kafka when a contact message arrives.
type ContactMessageEvent struct {
	EventType string    `json:"event_type"` // CONTACT_MESSAGE_CREATED
	MessageID uuid.UUID `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// ReviewEvent is published to Kafka when a review is created.
type ReviewEvent struct {
	EventType string    `json:"event_type"` // REVIEW_CREATED
	ReviewID  string    `json:"review_id"`
	ProductID *string   `json:"product_id,omitempty"`
	ServiceID *string   `json:"service_id,omitempty"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

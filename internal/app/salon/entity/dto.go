package entity

// CreateContactMessageRequest - public contact form payload.
// All three content fields are required.
type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=2,max=2000"`
}

// CreateServiceRequest - admin request to add a salon service.
type CreateServiceRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=500"`
}

// UpdateServiceRequest - admin request to change a service.
// Fields left out of the payload keep their stored value.
type UpdateServiceRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=500"`
}

// CreateProductRequest - admin request to add a product.
type CreateProductRequest struct {
	Title    string   `json:"title" validate:"required,min=2,max=200"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageURL string   `json:"imageUrl" validate:"required,max=500"`
}

// UpdateProductRequest - admin request to change a product.
// Fields left out of the payload keep their stored value.
type UpdateProductRequest struct {
	Title    *string  `json:"title" validate:"omitempty,min=2,max=200"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageURL *string  `json:"imageUrl" validate:"omitempty,max=500"`
}

// CreateReviewRequest - public review submission. Exactly one of
// ProductID / ServiceID must be set; this is enforced in the service
// layer since it is a cross-field rule.
type CreateReviewRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=100"`
	Comment   string  `json:"comment" validate:"required,min=2,max=1000"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	ProductID *string `json:"productId" validate:"omitempty,uuid"`
	ServiceID *string `json:"serviceId" validate:"omitempty,uuid"`
}

// LoginRequest - admin login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest - token refresh payload.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenPair contains the issued access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // access token lifetime in seconds
}

// LoginResponse - admin login result.
type LoginResponse struct {
	Admin  AdminUser `json:"admin"`
	Tokens TokenPair `json:"tokens"`
}

// ErrorResponse - standard error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse - standard success body for operations without a record.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

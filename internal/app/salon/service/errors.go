package service

import "errors"

var (
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrServiceNotFound        = errors.New("service not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrReviewNotFound         = errors.New("review not found")

	// ErrReviewTarget: a review must reference exactly one of a product
	// or a service, and the referenced record must exist.
	ErrReviewTarget = errors.New("review must reference exactly one existing product or service")

	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

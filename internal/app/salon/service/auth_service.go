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
	"atakuafor/pkg/metrics"

	"github.com/google/uuid"
)

// AuthService implements admin authentication: short-lived JWT access
// tokens plus opaque refresh tokens stored in Redis, with an access
// token blacklist for logout.
type AuthService struct {
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	jwtManager  *util.JWTManager
}

func NewAuthService(
	adminRepo repository.AdminRepository,
	sessionRepo repository.SessionRepository,
	jwtManager *util.JWTManager,
) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		jwtManager:  jwtManager,
	}
}

// Login verifies the credentials and issues a token pair. Unknown
// usernames and wrong passwords both map to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			metrics.AdminLogins.WithLabelValues("failed").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if !util.CheckPassword(req.Password, admin.PasswordHash) {
		metrics.AdminLogins.WithLabelValues("failed").Inc()
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, admin)
	if err != nil {
		return nil, err
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()
	logger.Info().Str("username", admin.Username).Msg("Admin logged in")

	return &entity.LoginResponse{Admin: *admin, Tokens: *tokens}, nil
}

// Refresh rotates a refresh token: the presented token is consumed and
// a fresh pair is issued. An unknown token maps to ErrInvalidRefreshToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	adminID, err := s.sessionRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if err := s.sessionRepo.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return s.issueTokens(ctx, admin)
}

// Logout blacklists the presented access token until its natural expiry
// and revokes all of the admin's refresh tokens.
func (s *AuthService) Logout(ctx context.Context, accessToken string, claims *util.JWTClaims) error {
	if err := s.sessionRepo.AddToBlacklist(ctx, accessToken, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("failed to blacklist access token: %w", err)
	}

	if err := s.sessionRepo.DeleteAdminRefreshTokens(ctx, claims.AdminID); err != nil {
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}

	logger.Info().Str("username", claims.Username).Msg("Admin logged out")
	return nil
}

// GetAdmin returns the admin record for an authenticated request.
func (s *AuthService) GetAdmin(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

// EnsureAdmin creates the bootstrap admin account on first start. An
// existing account with the same username is left untouched.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return fmt.Errorf("failed to check admin: %w", err)
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &entity.AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	logger.Info().Str("username", username).Msg("Bootstrap admin created")
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, admin *entity.AdminUser) (*entity.TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(s.jwtManager.GetRefreshTokenDuration())
	if err := s.sessionRepo.SaveRefreshToken(ctx, admin.ID, refreshToken, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessTokenDuration().Seconds()),
	}, nil
}

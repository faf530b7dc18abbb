package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates the Redis-backed admin session store.
// Keys carry TTLs, so expired tokens disappear without any cleanup job.
func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func refreshTokenKey(token string) string {
	return fmt.Sprintf("refresh_token:%s", token)
}

func adminTokensKey(adminID uuid.UUID) string {
	return fmt.Sprintf("admin_tokens:%s", adminID.String())
}

func blacklistKey(token string) string {
	return fmt.Sprintf("blacklist:%s", token)
}

// SaveRefreshToken stores the token with a TTL and tracks it in the
// admin's token set so logout can revoke all of them.
func (r *sessionRepository) SaveRefreshToken(ctx context.Context, adminID uuid.UUID, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return fmt.Errorf("refresh token already expired")
	}

	if err := r.client.Set(ctx, refreshTokenKey(token), adminID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	setKey := adminTokensKey(adminID)
	if err := r.client.SAdd(ctx, setKey, token).Err(); err != nil {
		return fmt.Errorf("failed to track refresh token: %w", err)
	}
	r.client.Expire(ctx, setKey, ttl)

	return nil
}

func (r *sessionRepository) GetRefreshToken(ctx context.Context, token string) (uuid.UUID, error) {
	adminIDStr, err := r.client.Get(ctx, refreshTokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrSessionNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid admin id stored for refresh token: %w", err)
	}

	return adminID, nil
}

func (r *sessionRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	key := refreshTokenKey(token)

	adminIDStr, err := r.client.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}

	if adminIDStr != "" {
		if adminID, parseErr := uuid.Parse(adminIDStr); parseErr == nil {
			r.client.SRem(ctx, adminTokensKey(adminID), token)
		}
	}

	return nil
}

func (r *sessionRepository) DeleteAdminRefreshTokens(ctx context.Context, adminID uuid.UUID) error {
	setKey := adminTokensKey(adminID)

	tokens, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list admin refresh tokens: %w", err)
	}

	for _, token := range tokens {
		r.client.Del(ctx, refreshTokenKey(token))
	}

	if err := r.client.Del(ctx, setKey).Err(); err != nil {
		return fmt.Errorf("failed to delete admin token set: %w", err)
	}

	return nil
}

// AddToBlacklist revokes an access token until its natural expiry.
func (r *sessionRepository) AddToBlacklist(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// already expired, nothing to revoke
		return nil
	}

	if err := r.client.Set(ctx, blacklistKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

func (r *sessionRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	exists, err := r.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return exists > 0, nil
}

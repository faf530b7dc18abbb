package util

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAccessToken_Success(t *testing.T) {
	// Arrange
	jwtManager := NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	adminID := uuid.New()
	username := "admin"

	// Act
	token, err := jwtManager.GenerateAccessToken(adminID, username)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, username, claims.Username)
	assert.Equal(t, adminID.String(), claims.Subject)
}

func TestJWTManager_GenerateRefreshToken_Unique(t *testing.T) {
	// Arrange
	jwtManager := NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)

	// Act
	token1, err1 := jwtManager.GenerateRefreshToken()
	token2, err2 := jwtManager.GenerateRefreshToken()

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEmpty(t, token1)
	assert.NotEmpty(t, token2)
	assert.NotEqual(t, token1, token2)
}

func TestJWTManager_ValidateToken_InvalidToken(t *testing.T) {
	// Arrange
	jwtManager := NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)

	// Act
	claims, err := jwtManager.ValidateToken("invalid-token")

	// Assert
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_ValidateToken_WrongSecret(t *testing.T) {
	// Arrange
	jwtManager := NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	otherManager := NewJWTManager("other-secret-key", 15*time.Minute, 7*24*time.Hour)

	token, err := jwtManager.GenerateAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	// Act
	claims, err := otherManager.ValidateToken(token)

	// Assert
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_ValidateToken_Expired(t *testing.T) {
	// Arrange
	jwtManager := NewJWTManager("test-secret-key", -1*time.Minute, 7*24*time.Hour)

	token, err := jwtManager.GenerateAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	// Act
	claims, err := jwtManager.ValidateToken(token)

	// Assert
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTManager_Durations(t *testing.T) {
	jwtManager := NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)

	assert.Equal(t, 15*time.Minute, jwtManager.GetAccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, jwtManager.GetRefreshTokenDuration())
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atakuafor/internal/app/salon/repository/mocks"
	"atakuafor/internal/app/salon/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthMiddleware() (*AuthMiddleware, *mocks.MockSessionRepository, *util.JWTManager) {
	sessionRepo := new(mocks.MockSessionRepository)
	jwtManager := util.NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)
	return NewAuthMiddleware(jwtManager, sessionRepo), sessionRepo, jwtManager
}

func runMiddleware(mw *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, bool) {
	w := httptest.NewRecorder()
	router := gin.New()

	handlerCalled := false
	router.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		handlerCalled = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)

	return w, handlerCalled
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	mw, _, _ := setupAuthMiddleware()

	w, called := runMiddleware(mw, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mw, _, _ := setupAuthMiddleware()

	w, called := runMiddleware(mw, "NotBearer token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mw, _, _ := setupAuthMiddleware()

	w, called := runMiddleware(mw, "Bearer not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	mw, _, _ := setupAuthMiddleware()

	expiredManager := util.NewJWTManager("test-secret-key", -time.Minute, 7*24*time.Hour)
	token, err := expiredManager.GenerateAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	w, called := runMiddleware(mw, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_BlacklistedToken(t *testing.T) {
	mw, sessionRepo, jwtManager := setupAuthMiddleware()

	token, err := jwtManager.GenerateAccessToken(uuid.New(), "admin")
	require.NoError(t, err)

	sessionRepo.On("IsBlacklisted", mock.Anything, token).Return(true, nil)

	w, called := runMiddleware(mw, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mw, sessionRepo, jwtManager := setupAuthMiddleware()

	adminID := uuid.New()
	token, err := jwtManager.GenerateAccessToken(adminID, "admin")
	require.NoError(t, err)

	sessionRepo.On("IsBlacklisted", mock.Anything, token).Return(false, nil)

	w := httptest.NewRecorder()
	router := gin.New()
	router.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		gotID, _ := c.Get("admin_id")
		assert.Equal(t, adminID, gotID)
		assert.Equal(t, "admin", c.GetString("username"))
		assert.Equal(t, token, c.GetString("access_token"))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

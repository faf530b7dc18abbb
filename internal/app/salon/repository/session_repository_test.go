package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    *redis.Client
	repo      SessionRepository
}

func TestSessionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}

func (s *SessionRepositoryTestSuite) SetupSuite() {
	var err error
	s.miniRedis, err = miniredis.Run()
	require.NoError(s.T(), err)

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	s.repo = NewSessionRepository(s.client)
}

func (s *SessionRepositoryTestSuite) SetupTest() {
	s.miniRedis.FlushAll()
}

func (s *SessionRepositoryTestSuite) TearDownSuite() {
	s.client.Close()
	s.miniRedis.Close()
}

func (s *SessionRepositoryTestSuite) TestSaveAndGetRefreshToken() {
	ctx := context.Background()
	adminID := uuid.New()

	err := s.repo.SaveRefreshToken(ctx, adminID, "token-1", time.Now().Add(time.Hour))
	s.Require().NoError(err)

	got, err := s.repo.GetRefreshToken(ctx, "token-1")
	s.NoError(err)
	s.Equal(adminID, got)
}

func (s *SessionRepositoryTestSuite) TestSaveRefreshToken_AlreadyExpired() {
	ctx := context.Background()

	err := s.repo.SaveRefreshToken(ctx, uuid.New(), "token-1", time.Now().Add(-time.Minute))
	s.Error(err)
}

func (s *SessionRepositoryTestSuite) TestGetRefreshToken_Unknown() {
	ctx := context.Background()

	got, err := s.repo.GetRefreshToken(ctx, "no-such-token")
	s.ErrorIs(err, ErrSessionNotFound)
	s.Equal(uuid.Nil, got)
}

func (s *SessionRepositoryTestSuite) TestGetRefreshToken_ExpiredByTTL() {
	ctx := context.Background()
	adminID := uuid.New()

	err := s.repo.SaveRefreshToken(ctx, adminID, "token-1", time.Now().Add(time.Minute))
	s.Require().NoError(err)

	s.miniRedis.FastForward(2 * time.Minute)

	_, err = s.repo.GetRefreshToken(ctx, "token-1")
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionRepositoryTestSuite) TestDeleteRefreshToken() {
	ctx := context.Background()
	adminID := uuid.New()

	err := s.repo.SaveRefreshToken(ctx, adminID, "token-1", time.Now().Add(time.Hour))
	s.Require().NoError(err)

	err = s.repo.DeleteRefreshToken(ctx, "token-1")
	s.NoError(err)

	_, err = s.repo.GetRefreshToken(ctx, "token-1")
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionRepositoryTestSuite) TestDeleteAdminRefreshTokens_RevokesAll() {
	ctx := context.Background()
	adminID := uuid.New()

	s.Require().NoError(s.repo.SaveRefreshToken(ctx, adminID, "token-1", time.Now().Add(time.Hour)))
	s.Require().NoError(s.repo.SaveRefreshToken(ctx, adminID, "token-2", time.Now().Add(time.Hour)))

	err := s.repo.DeleteAdminRefreshTokens(ctx, adminID)
	s.NoError(err)

	_, err = s.repo.GetRefreshToken(ctx, "token-1")
	s.ErrorIs(err, ErrSessionNotFound)
	_, err = s.repo.GetRefreshToken(ctx, "token-2")
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionRepositoryTestSuite) TestBlacklist() {
	ctx := context.Background()

	blacklisted, err := s.repo.IsBlacklisted(ctx, "access-token")
	s.NoError(err)
	s.False(blacklisted)

	err = s.repo.AddToBlacklist(ctx, "access-token", time.Now().Add(15*time.Minute))
	s.Require().NoError(err)

	blacklisted, err = s.repo.IsBlacklisted(ctx, "access-token")
	s.NoError(err)
	s.True(blacklisted)
}

func (s *SessionRepositoryTestSuite) TestBlacklist_ExpiredTokenIsNoop() {
	ctx := context.Background()

	err := s.repo.AddToBlacklist(ctx, "old-token", time.Now().Add(-time.Minute))
	s.NoError(err)

	blacklisted, err := s.repo.IsBlacklisted(ctx, "old-token")
	s.NoError(err)
	s.False(blacklisted)
}

func (s *SessionRepositoryTestSuite) TestBlacklist_EntryExpiresWithToken() {
	ctx := context.Background()

	err := s.repo.AddToBlacklist(ctx, "access-token", time.Now().Add(time.Minute))
	s.Require().NoError(err)

	s.miniRedis.FastForward(2 * time.Minute)

	blacklisted, err := s.repo.IsBlacklisted(ctx, "access-token")
	s.NoError(err)
	s.False(blacklisted)
}

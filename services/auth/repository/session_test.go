package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tumpangan/tumpangan/internal/pkg/database"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

func setupRedisTest(t *testing.T) (*AuthRepo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	repo := NewAuthRepo(&models.Config{}, nil, redisClient)
	return repo, mr
}

func TestStoreSession(t *testing.T) {
	repo, mr := setupRedisTest(t)
	ctx := context.Background()

	session := &models.Session{
		UserID:    "user-1",
		Role:      "passenger",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, 8, 1, 13, 0, 0, 0, time.UTC),
	}

	err := repo.StoreSession(ctx, session, time.Hour)
	require.NoError(t, err)

	assert.True(t, mr.Exists("user:session:user-1"))

	got, err := repo.GetSession(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "passenger", got.Role)
}

func TestStoreSession_TTL(t *testing.T) {
	repo, mr := setupRedisTest(t)
	ctx := context.Background()

	session := &models.Session{UserID: "user-1", Role: "passenger"}
	require.NoError(t, repo.StoreSession(ctx, session, time.Hour))

	// The session expires with its TTL
	mr.FastForward(2 * time.Hour)

	_, err := repo.GetSession(ctx, "user-1")
	assert.Error(t, err)
}

func TestGetSession_Missing(t *testing.T) {
	repo, _ := setupRedisTest(t)

	_, err := repo.GetSession(context.Background(), "nobody")
	assert.Error(t, err)
}

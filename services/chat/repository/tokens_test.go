package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tumpangan/tumpangan/internal/pkg/database"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

func setupRedisTest(t *testing.T) (*ChatRepo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	repo := NewChatRepo(&models.Config{}, redisClient)
	return repo, mr
}

func TestRegisterDeviceToken(t *testing.T) {
	repo, mr := setupRedisTest(t)
	ctx := context.Background()

	require.NoError(t, repo.RegisterDeviceToken(ctx, "driver-1", "token-a"))

	tokens, err := mr.SMembers("driver:push:driver-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"token-a"}, tokens)

	drivers, err := mr.SMembers("drivers:registered")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"driver-1"}, drivers)
}

func TestRegisterDeviceToken_IsIdempotent(t *testing.T) {
	repo, mr := setupRedisTest(t)
	ctx := context.Background()

	require.NoError(t, repo.RegisterDeviceToken(ctx, "driver-1", "token-a"))
	require.NoError(t, repo.RegisterDeviceToken(ctx, "driver-1", "token-a"))

	tokens, err := mr.SMembers("driver:push:driver-1")
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestGetAllDriverTokens(t *testing.T) {
	repo, _ := setupRedisTest(t)
	ctx := context.Background()

	require.NoError(t, repo.RegisterDeviceToken(ctx, "driver-1", "token-a"))
	require.NoError(t, repo.RegisterDeviceToken(ctx, "driver-1", "token-b"))
	require.NoError(t, repo.RegisterDeviceToken(ctx, "driver-2", "token-c"))

	tokens, err := repo.GetAllDriverTokens(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"token-a", "token-b", "token-c"}, tokens)
}

func TestGetAllDriverTokens_Empty(t *testing.T) {
	repo, _ := setupRedisTest(t)

	tokens, err := repo.GetAllDriverTokens(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

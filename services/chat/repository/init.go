package repository

import (
	"github.com/tumpangan/tumpangan/internal/pkg/database"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// ChatRepo implements the chat repository backed by Redis
type ChatRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewChatRepo creates a new chat repository
func NewChatRepo(cfg *models.Config, redisClient *database.RedisClient) *ChatRepo {
	return &ChatRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/tumpangan/tumpangan/internal/pkg/database"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// AuthRepo implements the auth repository against PostgreSQL and Redis
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

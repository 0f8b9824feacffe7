package auth

import (
	"context"
	"time"

	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tumpangan/tumpangan/services/auth AuthRepo

// AuthRepo represents the auth repository interface
type AuthRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	StoreSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, userID string) (*models.Session, error)
}

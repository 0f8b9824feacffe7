package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tumpangan/tumpangan/internal/pkg/constants"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// StoreSession stores a session record in Redis with the given TTL
func (r *AuthRepo) StoreSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserSession, session.UserID)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store session in Redis: %w", err)
	}

	return nil
}

// GetSession retrieves a session record from Redis
func (r *AuthRepo) GetSession(ctx context.Context, userID string) (*models.Session, error) {
	key := fmt.Sprintf(constants.KeyUserSession, userID)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get session from Redis: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

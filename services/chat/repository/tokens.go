package repository

import (
	"context"
	"fmt"

	"github.com/tumpangan/tumpangan/internal/pkg/constants"
)

// RegisterDeviceToken stores a driver's push token and tracks the driver in
// the registered set. A driver may hold several tokens (one per device).
func (r *ChatRepo) RegisterDeviceToken(ctx context.Context, driverID, token string) error {
	key := fmt.Sprintf(constants.KeyDriverPushTokens, driverID)
	if err := r.redisClient.SAdd(ctx, key, token); err != nil {
		return fmt.Errorf("failed to store push token: %w", err)
	}

	if err := r.redisClient.SAdd(ctx, constants.KeyDriverSet, driverID); err != nil {
		return fmt.Errorf("failed to track registered driver: %w", err)
	}

	return nil
}

// GetAllDriverTokens returns the push tokens of every registered driver
func (r *ChatRepo) GetAllDriverTokens(ctx context.Context) ([]string, error) {
	driverIDs, err := r.redisClient.SMembers(ctx, constants.KeyDriverSet)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered drivers: %w", err)
	}

	var tokens []string
	for _, driverID := range driverIDs {
		key := fmt.Sprintf(constants.KeyDriverPushTokens, driverID)
		driverTokens, err := r.redisClient.SMembers(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to load tokens for driver %s: %w", driverID, err)
		}
		tokens = append(tokens, driverTokens...)
	}

	return tokens, nil
}

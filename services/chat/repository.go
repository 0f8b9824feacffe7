package chat

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tumpangan/tumpangan/services/chat ChatRepo

// ChatRepo represents the chat repository interface for driver push tokens
type ChatRepo interface {
	RegisterDeviceToken(ctx context.Context, driverID, token string) error
	GetAllDriverTokens(ctx context.Context) ([]string, error)
}

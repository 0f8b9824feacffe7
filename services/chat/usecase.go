package chat

import (
	"context"

	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tumpangan/tumpangan/services/chat ChatUC

// ChatUC represents the chat usecase interface
type ChatUC interface {
	// handle rooms
	JoinRoom(connID, roomID string)
	LeaveAll(connID string)

	// handle relay
	RelayMessage(connID, senderID, roomID, content string) int

	// handle booking notifications
	NotifyBookingCreated(ctx context.Context, event *models.BookingCreatedEvent) error

	// handle driver devices
	RegisterDevice(ctx context.Context, driverID, token string) error
}

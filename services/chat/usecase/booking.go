package usecase

import (
	"context"
	"fmt"

	"github.com/tumpangan/tumpangan/internal/pkg/constants"
	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// NotifyBookingCreated broadcasts a new booking to every connection in the
// drivers room and pushes a notification to every registered driver device.
func (uc *ChatUC) NotifyBookingCreated(ctx context.Context, event *models.BookingCreatedEvent) error {
	members := uc.registry.Members(constants.RoomDrivers)
	for _, member := range members {
		if err := uc.sender.SendToConn(member, constants.EventBookingCreated, event); err != nil {
			logger.Warn("Failed to notify driver connection",
				logger.String("conn_id", member),
				logger.String("booking_id", event.BookingID),
				logger.Err(err))
		}
	}

	tokens, err := uc.chatRepo.GetAllDriverTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to load driver push tokens: %w", err)
	}

	pushed := 0
	for _, token := range tokens {
		err := uc.pushGW.Push(ctx, token,
			"New booking available",
			fmt.Sprintf("Pickup at %s", event.PickupAddress),
			map[string]string{
				"booking_id": event.BookingID,
				"event":      constants.EventBookingCreated,
			})
		if err != nil {
			logger.Warn("Failed to push booking notification",
				logger.String("booking_id", event.BookingID),
				logger.Err(err))
			continue
		}
		pushed++
	}

	logger.Info("Booking broadcast to drivers",
		logger.String("booking_id", event.BookingID),
		logger.Int("connections", len(members)),
		logger.Int("pushed", pushed))
	return nil
}

// RegisterDevice stores a driver's push token for booking notifications
func (uc *ChatUC) RegisterDevice(ctx context.Context, driverID, token string) error {
	if err := uc.chatRepo.RegisterDeviceToken(ctx, driverID, token); err != nil {
		return fmt.Errorf("failed to register device token: %w", err)
	}
	logger.Info("Registered driver device",
		logger.String("driver_id", driverID))
	return nil
}

package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/tumpangan/tumpangan/internal/pkg/constants"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
)

// PublishBookingCreated announces a new booking on the event bus
func (gw *BookingGW) PublishBookingCreated(event *models.BookingCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	if err := gw.natsClient.Publish(constants.SubjectBookingCreated, data); err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}

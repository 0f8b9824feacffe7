package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/tumpangan/tumpangan/internal/pkg/constants"
	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	natspkg "github.com/tumpangan/tumpangan/internal/pkg/nats"
	"github.com/tumpangan/tumpangan/services/chat"
)

// NatsHandler consumes booking events and forwards them to drivers
type NatsHandler struct {
	chatUC chat.ChatUC
	client *natspkg.Client
	subs   []*nats.Subscription
}

// NewNatsHandler creates a new NATS event handler
func NewNatsHandler(chatUC chat.ChatUC, client *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		chatUC: chatUC,
		client: client,
	}
}

// InitConsumers subscribes to the booking subjects
func (h *NatsHandler) InitConsumers() error {
	sub, err := h.client.Subscribe(constants.SubjectBookingCreated, h.handleBookingCreated)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)
	return nil
}

// handleBookingCreated notifies connected drivers of a new booking
func (h *NatsHandler) handleBookingCreated(msg *nats.Msg) {
	var event models.BookingCreatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal booking created event",
			logger.Err(err))
		return
	}

	if err := h.chatUC.NotifyBookingCreated(context.Background(), &event); err != nil {
		logger.Error("Failed to notify drivers of new booking",
			logger.String("booking_id", event.BookingID),
			logger.Err(err))
	}
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe",
				logger.String("subject", sub.Subject),
				logger.Err(err))
		}
	}
}

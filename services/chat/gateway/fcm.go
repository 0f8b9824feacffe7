package gateway

import (
	"context"
	"fmt"
)

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmMessage struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

// Push sends a notification to a single device token
func (gw *PushGW) Push(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := fcmMessage{
		To: token,
		Notification: fcmNotification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if err := gw.client.PostJSON(ctx, "/fcm/send", msg, nil); err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	return nil
}

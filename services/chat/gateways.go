package chat

import "context"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tumpangan/tumpangan/services/chat MessageSender,PushGW

// MessageSender delivers an event to a single connection. The WebSocket
// manager implements it; a missing connection is not an error.
type MessageSender interface {
	SendToConn(connID string, event string, data interface{}) error
}

// PushGW delivers a mobile push notification to a device token
type PushGW interface {
	Push(ctx context.Context, token, title, body string, data map[string]string) error
}

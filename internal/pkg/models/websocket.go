package models

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage is the envelope for all WebSocket traffic
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is sent to clients when an operation fails
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient represents a single authenticated connection
type WebSocketClient struct {
	ConnID string
	UserID string
	Role   string
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// WriteJSON serializes writes to the underlying connection. Gorilla
// connections support only one concurrent writer; fan-out delivery and the
// reader goroutine may both send on the same connection.
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.Conn == nil {
		return nil // Handle nil connection gracefully for tests
	}
	return c.Conn.WriteJSON(v)
}

// WebSocketClaims are the JWT claims expected on WebSocket connections
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RoomRequest is the payload for join/leave events
type RoomRequest struct {
	RoomID string `json:"room_id"`
}

// ChatSendRequest is the payload for a chat_message event
type ChatSendRequest struct {
	RoomID  string `json:"room_id"`
	Content string `json:"content"`
}

// ChatMessage is fanned out to room members
type ChatMessage struct {
	RoomID   string    `json:"room_id"`
	SenderID string    `json:"sender_id"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}

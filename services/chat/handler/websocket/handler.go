package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/tumpangan/tumpangan/internal/pkg/constants"
	"github.com/tumpangan/tumpangan/internal/pkg/logger"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	wspkg "github.com/tumpangan/tumpangan/internal/pkg/websocket"
	"github.com/tumpangan/tumpangan/services/chat"
)

// WebSocketHandler handles chat WebSocket connections
type WebSocketHandler struct {
	manager *wspkg.Manager
	chatUC  chat.ChatUC
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(manager *wspkg.Manager, chatUC chat.ChatUC) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		chatUC:  chatUC,
	}
}

// HandleWebSocket upgrades the HTTP request and runs the client message loop
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

// handleClient reads messages until the connection closes. Disconnect tears
// down every room membership the connection holds.
func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)

	logger.Info("WebSocket client connected",
		logger.String("conn_id", client.ConnID),
		logger.String("user_id", client.UserID))

	defer func() {
		h.chatUC.LeaveAll(client.ConnID)
		h.manager.RemoveClient(client.ConnID)
		logger.Info("WebSocket client disconnected",
			logger.String("conn_id", client.ConnID),
			logger.String("user_id", client.UserID))
	}()

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Unexpected WebSocket close",
					logger.String("conn_id", client.ConnID),
					logger.Err(err))
			}
			return nil
		}

		if err := h.routeMessage(client, msg); err != nil {
			logger.Error("Failed to handle WebSocket message",
				logger.String("conn_id", client.ConnID),
				logger.String("event", msg.Event),
				logger.Err(err))
			h.sendError(client, constants.ErrorInternalError, "Failed to process message")
		}
	}
}

// routeMessage dispatches a message by event type
func (h *WebSocketHandler) routeMessage(client *models.WebSocketClient, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client, constants.EventPong, nil)
	case constants.EventRoomJoin:
		return h.handleRoomJoin(client, msg.Data)
	case constants.EventRoomLeave:
		h.chatUC.LeaveAll(client.ConnID)
		return nil
	case constants.EventChatMessage:
		return h.handleChatMessage(client, msg.Data)
	default:
		h.sendError(client, constants.ErrorInvalidFormat, "Unknown event type")
		return nil
	}
}

// handleRoomJoin processes a room_join event
func (h *WebSocketHandler) handleRoomJoin(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.RoomRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RoomID == "" {
		h.sendError(client, constants.ErrorInvalidFormat, "Invalid room request")
		return nil
	}

	h.chatUC.JoinRoom(client.ConnID, req.RoomID)
	return nil
}

// handleChatMessage processes a chat_message event
func (h *WebSocketHandler) handleChatMessage(client *models.WebSocketClient, data json.RawMessage) error {
	var req models.ChatSendRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RoomID == "" || req.Content == "" {
		h.sendError(client, constants.ErrorInvalidFormat, "Invalid chat message")
		return nil
	}

	h.chatUC.RelayMessage(client.ConnID, client.UserID, req.RoomID, req.Content)
	return nil
}

// sendError reports a failure to the client without dropping the connection
func (h *WebSocketHandler) sendError(client *models.WebSocketClient, code, message string) {
	if err := h.manager.SendErrorMessage(client, code, message); err != nil {
		logger.Warn("Failed to send error message",
			logger.String("conn_id", client.ConnID),
			logger.Err(err))
	}
}

package handler

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	httpHandler "github.com/tumpangan/tumpangan/services/chat/handler/http"
	natsHandler "github.com/tumpangan/tumpangan/services/chat/handler/nats"
	wsHandler "github.com/tumpangan/tumpangan/services/chat/handler/websocket"
)

// Handler coordinates the protocol handlers for the chat service
type Handler struct {
	wsHandler     *wsHandler.WebSocketHandler
	deviceHandler *httpHandler.DeviceHandler
	natsHandler   *natsHandler.NatsHandler
	jwtConfig     models.JWTConfig
}

// NewHandler creates and initializes all handlers
func NewHandler(
	wsH *wsHandler.WebSocketHandler,
	deviceH *httpHandler.DeviceHandler,
	natsH *natsHandler.NatsHandler,
	jwtConfig models.JWTConfig,
) *Handler {
	return &Handler{
		wsHandler:     wsH,
		deviceHandler: deviceH,
		natsHandler:   natsH,
		jwtConfig:     jwtConfig,
	}
}

// RegisterRoutes registers the chat routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// WebSocket does its own JWT handshake inside the upgrade
	e.GET("/ws/chat", h.wsHandler.HandleWebSocket)

	protected := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.jwtConfig.Secret),
	}))
	protected.POST("/devices", h.deviceHandler.RegisterDevice)
}

// InitConsumers starts the NATS consumers
func (h *Handler) InitConsumers() error {
	return h.natsHandler.InitConsumers()
}

// Close stops the NATS consumers
func (h *Handler) Close() {
	h.natsHandler.Close()
}

package http

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/internal/utils"
	"github.com/tumpangan/tumpangan/services/chat"
)

// DeviceHandler handles driver device registration requests
type DeviceHandler struct {
	chatUC chat.ChatUC
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(chatUC chat.ChatUC) *DeviceHandler {
	return &DeviceHandler{chatUC: chatUC}
}

// RegisterDevice stores the caller's push token for booking notifications
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req models.DeviceRegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	if req.Token == "" {
		return utils.BadRequestResponse(c, "Token is required")
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid token claims")
	}

	if err := h.chatUC.RegisterDevice(c.Request().Context(), userID, req.Token); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to register device")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Device registered successfully", nil)
}

// userIDFromContext reads the user_id claim set by the JWT middleware
func userIDFromContext(c echo.Context) (string, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok && userID != ""
}

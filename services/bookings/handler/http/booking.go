package http

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/internal/utils"
	"github.com/tumpangan/tumpangan/services/bookings"
)

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// CreateBooking creates a new ride booking for the authenticated passenger
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	passengerID, ok := userIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid token claims")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), passengerID, &req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidBooking) {
			return utils.BadRequestResponse(c, "Pickup and dropoff addresses are required")
		}
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to create booking")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
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

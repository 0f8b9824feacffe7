package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tumpangan/tumpangan/internal/pkg/models"
	"github.com/tumpangan/tumpangan/services/bookings"
	"github.com/tumpangan/tumpangan/services/bookings/mocks"
)

func setupTest(t *testing.T) (*echo.Echo, *mocks.MockBookingUC, *BookingHandler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	e := echo.New()
	mockUC := mocks.NewMockBookingUC(ctrl)
	handler := NewBookingHandler(mockUC)
	return e, mockUC, handler
}

func doRequest(e *echo.Echo, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID != "" {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": userID,
			"role":    "passenger",
		})
		c.Set("user", token)
	}
	return c, rec
}

func TestCreateBooking_HandlerSuccess(t *testing.T) {
	e, mockUC, handler := setupTest(t)
	passengerID := uuid.New().String()

	booking := &models.Booking{
		ID:             uuid.New(),
		PickupAddress:  "Jl. Sudirman 1",
		DropoffAddress: "Jl. Thamrin 5",
		Status:         models.BookingStatusPending,
	}
	mockUC.EXPECT().
		CreateBooking(gomock.Any(), passengerID, gomock.Any()).
		Return(booking, nil)

	c, rec := doRequest(e, `{"pickup_address":"Jl. Sudirman 1","dropoff_address":"Jl. Thamrin 5"}`, passengerID)
	require.NoError(t, handler.CreateBooking(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking created successfully")
}

func TestCreateBooking_HandlerInvalidRequest(t *testing.T) {
	e, mockUC, handler := setupTest(t)
	passengerID := uuid.New().String()

	mockUC.EXPECT().
		CreateBooking(gomock.Any(), passengerID, gomock.Any()).
		Return(nil, bookings.ErrInvalidBooking)

	c, rec := doRequest(e, `{"pickup_address":"Jl. Sudirman 1"}`, passengerID)
	require.NoError(t, handler.CreateBooking(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_HandlerNoClaims(t *testing.T) {
	e, _, handler := setupTest(t)

	c, rec := doRequest(e, `{"pickup_address":"a","dropoff_address":"b"}`, "")
	require.NoError(t, handler.CreateBooking(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBooking_HandlerUsecaseFailure(t *testing.T) {
	e, mockUC, handler := setupTest(t)
	passengerID := uuid.New().String()

	mockUC.EXPECT().
		CreateBooking(gomock.Any(), passengerID, gomock.Any()).
		Return(nil, assert.AnError)

	c, rec := doRequest(e, `{"pickup_address":"a","dropoff_address":"b"}`, passengerID)
	require.NoError(t, handler.CreateBooking(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tumpangan/tumpangan/services/chat/mocks"
)

func setupTest(t *testing.T) (*echo.Echo, *mocks.MockChatUC, *DeviceHandler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	e := echo.New()
	mockUC := mocks.NewMockChatUC(ctrl)
	handler := NewDeviceHandler(mockUC)
	return e, mockUC, handler
}

func doRequest(e *echo.Echo, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID != "" {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": userID,
			"role":    "driver",
		})
		c.Set("user", token)
	}
	return c, rec
}

func TestRegisterDevice_Success(t *testing.T) {
	e, mockUC, handler := setupTest(t)

	mockUC.EXPECT().RegisterDevice(gomock.Any(), "driver-1", "token-a").Return(nil)

	c, rec := doRequest(e, `{"token":"token-a"}`, "driver-1")
	require.NoError(t, handler.RegisterDevice(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Device registered successfully")
}

func TestRegisterDevice_MissingToken(t *testing.T) {
	e, _, handler := setupTest(t)

	c, rec := doRequest(e, `{}`, "driver-1")
	require.NoError(t, handler.RegisterDevice(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token is required")
}

func TestRegisterDevice_NoClaims(t *testing.T) {
	e, _, handler := setupTest(t)

	c, rec := doRequest(e, `{"token":"token-a"}`, "")
	require.NoError(t, handler.RegisterDevice(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterDevice_UsecaseFailure(t *testing.T) {
	e, mockUC, handler := setupTest(t)

	mockUC.EXPECT().RegisterDevice(gomock.Any(), "driver-1", "token-a").Return(assert.AnError)

	c, rec := doRequest(e, `{"token":"token-a"}`, "driver-1")
	require.NoError(t, handler.RegisterDevice(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

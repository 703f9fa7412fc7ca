package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/profile-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; a protected handler
// reached without it rejects with 401 rather than acting on an empty
// identity.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "No token, auth denied")
	}
	return userID, nil
}

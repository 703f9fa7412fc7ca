package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/profile-api/internal/api/metrics"
	"github.com/devconnect/profile-api/internal/core/domain"
	"github.com/devconnect/profile-api/internal/core/ports"
)

// AuthHandler handles login and authenticated-identity lookup.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorsResponse
// @Failure      429   {object}  msgResponse
// @Failure      500   {object}  msgResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return &ValidationError{Errors: []FieldError{{Msg: "Invalid payload"}}}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Current returns the authenticated user, password hash excluded.
//
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Param        x-auth-token  header    string  true  "Signed token"
// @Success      200  {object}  domain.User
// @Failure      401  {object}  msgResponse
// @Failure      500  {object}  msgResponse
// @Router       /api/auth [get]
func (h *AuthHandler) Current(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

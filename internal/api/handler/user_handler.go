package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/profile-api/internal/api/metrics"
	"github.com/devconnect/profile-api/internal/core/ports"
)

// UserHandler handles account registration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new account and returns a signed token.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorsResponse
// @Failure      500   {object}  msgResponse
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return &ValidationError{Errors: []FieldError{{Msg: "Invalid payload"}}}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/profile-api/internal/core/ports"
)

// ActivityHandler serves the read side of the activity log.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Recent returns the authenticated user's latest activity entries.
//
// @Summary      Get own recent activity
// @Tags         activity
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Success      200  {array}   domain.Activity
// @Failure      401  {object}  msgResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListRecent(c.Request().Context(), userID, 0)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

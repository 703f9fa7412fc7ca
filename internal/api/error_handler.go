package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devconnect/profile-api/internal/api/handler"
	"github.com/devconnect/profile-api/internal/core/domain"
)

// msgResponse is the envelope for auth, not-found and server errors.
type msgResponse struct {
	Msg string `json:"msg"`
}

// errorsResponse is the envelope for validation and conflict errors.
type errorsResponse struct {
	Errors []handler.FieldError `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as {"errors":[{"msg":…,"param":…}]}.
//   - Maps known domain errors to their legacy status codes and envelopes
//     (missing entities answer 400, not 404, matching the validation path).
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorsResponse{Errors: ve.Errors})
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors (404 from router, method not allowed, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, msgResponse{Msg: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic codes and envelopes.
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, errorsResponse{Errors: []handler.FieldError{{Msg: "User already exists"}}}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, errorsResponse{Errors: []handler.FieldError{{Msg: "Invalid credentials"}}}
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, msgResponse{Msg: "Too many login attempts"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, msgResponse{Msg: "User not found"}
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusBadRequest, msgResponse{Msg: "Profile not found"}
	case errors.Is(err, domain.ErrGithubNotFound):
		return http.StatusBadRequest, msgResponse{Msg: "No GitHub profile found"}
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusBadRequest, msgResponse{Msg: "Post not found"}
	case errors.Is(err, domain.ErrNotPostOwner):
		return http.StatusUnauthorized, msgResponse{Msg: "User not authorized"}
	case errors.Is(err, domain.ErrAlreadyLiked):
		return http.StatusBadRequest, msgResponse{Msg: "Post already liked"}
	case errors.Is(err, domain.ErrNotLiked):
		return http.StatusBadRequest, msgResponse{Msg: "Post has not yet been liked"}
	case errors.Is(err, domain.ErrCommentMissing):
		return http.StatusBadRequest, msgResponse{Msg: "Comment does not exist"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, msgResponse{Msg: "Server error"}
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devconnect/profile-api/internal/api/handler"
	"github.com/devconnect/profile-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_ValidationErrors(t *testing.T) {
	code, body := renderError(t, &handler.ValidationError{Errors: []handler.FieldError{
		{Msg: "name is required", Param: "name"},
		{Msg: "please enter a valid email address", Param: "email"},
	}})

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	fieldErrs, ok := body["errors"].([]any)
	if !ok || len(fieldErrs) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", body)
	}
	first := fieldErrs[0].(map[string]any)
	if first["msg"] != "name is required" || first["param"] != "name" {
		t.Fatalf("unexpected field error: %+v", first)
	}
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many login attempts"},
		{"user not found", domain.ErrUserNotFound, http.StatusBadRequest, "User not found"},
		{"profile not found", domain.ErrProfileNotFound, http.StatusBadRequest, "Profile not found"},
		{"github not found", domain.ErrGithubNotFound, http.StatusBadRequest, "No GitHub profile found"},
		{"post not found", domain.ErrPostNotFound, http.StatusBadRequest, "Post not found"},
		{"not post owner", domain.ErrNotPostOwner, http.StatusUnauthorized, "User not authorized"},
		{"already liked", domain.ErrAlreadyLiked, http.StatusBadRequest, "Post already liked"},
		{"not liked", domain.ErrNotLiked, http.StatusBadRequest, "Post has not yet been liked"},
		{"comment missing", domain.ErrCommentMissing, http.StatusBadRequest, "Comment does not exist"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body["msg"] != tc.msg {
				t.Fatalf("expected msg %q, got %+v", tc.msg, body)
			}
		})
	}
}

func TestHTTPErrorHandler_ConflictAndCredentialsUseErrorsEnvelope(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"duplicate email", domain.ErrUserExists, "User already exists"},
		{"bad credentials", domain.ErrInvalidCredentials, "Invalid credentials"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", code)
			}
			fieldErrs, ok := body["errors"].([]any)
			if !ok || len(fieldErrs) != 1 {
				t.Fatalf("expected errors envelope, got %+v", body)
			}
			if first := fieldErrs[0].(map[string]any); first["msg"] != tc.msg {
				t.Fatalf("expected msg %q, got %+v", tc.msg, first)
			}
		})
	}
}

func TestHTTPErrorHandler_EchoErrorsKeepTheirCode(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "No token, auth denied"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["msg"] != "No token, auth denied" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorHidesCause(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: topology closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["msg"] != "Server error" {
		t.Fatalf("internal cause leaked: %+v", body)
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = c.JSON(http.StatusOK, map[string]string{"msg": "already sent"})
	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrUserNotFound, c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
}

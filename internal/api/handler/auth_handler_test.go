package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/profile-api/internal/api/middleware"
	"github.com/devconnect/profile-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn       func(ctx context.Context, email, password string) (string, error)
	currentUserFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.currentUserFn(ctx, userID)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth",
		`{"email":"alice@example.com","password":"secret1"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth",
		`{"email":"alice@example.com","password":"wrong1"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrTooManyAttempts
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth",
		`{"email":"alice@example.com","password":"secret1"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth", `{"email":"alice@example.com"}`)

	err := handler.Login(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthHandler_Current_Success(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "user123" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &domain.User{ID: userID, Name: "Alice", Email: "alice@example.com", CreatedAt: now}, nil
		},
	}
	handler := NewAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "user123")

	if err := handler.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Alice" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password leaked in response: %+v", resp)
	}
}

func TestAuthHandler_Current_NoIdentity(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, userID string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Current(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

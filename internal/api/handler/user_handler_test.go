package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/profile-api/internal/core/domain"
	"github.com/devconnect/profile-api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (string, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	return s.registerFn(ctx, input)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, error) {
			if input.Name != "Alice" || input.Email != "alice@example.com" || input.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "token123", nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users",
		`{"name":"Alice","email":"alice@example.com","password":"secret1"}`)

	if err := handler.Register(c); err != nil {
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

func TestUserHandler_Register_UserExists(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, error) {
			return "", domain.ErrUserExists
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users",
		`{"name":"Bob","email":"bob@example.com","password":"secret1"}`)

	err := handler.Register(c)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users",
		`{"name":"Bob","email":"bob@example.com","password":"abc"}`)

	err := handler.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Param != "password" {
		t.Fatalf("unexpected field errors: %+v", ve.Errors)
	}
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users", `{}`)

	err := handler.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %+v", ve.Errors)
	}
}

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users", "not-json")

	err := handler.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect/profile-api/internal/core/domain"
	"github.com/devconnect/profile-api/internal/core/ports"
)

const testSecret = "unit-test-secret"

type stubUserRepo struct {
	createFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type recorderStub struct {
	entries []ports.ActivityEntry
}

func (r *recorderStub) Record(entry ports.ActivityEntry) {
	r.entries = append(r.entries, entry)
}

// tokenUserID verifies the token against the test secret and returns the
// user_id claim.
func tokenUserID(t *testing.T, token string) string {
	t.Helper()
	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", parsed.Claims)
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		t.Fatalf("token missing user_id claim: %+v", claims)
	}
	return userID
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	var stored *domain.User
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			stored = user
			created := *user
			created.ID = "user123"
			return &created, nil
		},
	}
	recorder := &recorderStub{}
	svc := NewUserService(repo, recorder, testSecret, 0, zerolog.Nop())

	token, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if stored.PasswordHash == "hunter22" || strings.Contains(stored.PasswordHash, "hunter22") {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")); err != nil {
		t.Fatalf("hash does not verify original password: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter23")) == nil {
		t.Fatal("hash verifies a different password")
	}

	if got := tokenUserID(t, token); got != "user123" {
		t.Fatalf("token resolves to %q, want user123", got)
	}
}

func TestUserService_Register_DerivesGravatar(t *testing.T) {
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			if user.Avatar != domain.GravatarURL("alice@example.com") {
				t.Fatalf("avatar not normalized: %s", user.Avatar)
			}
			created := *user
			created.ID = "user123"
			return &created, nil
		},
	}
	svc := NewUserService(repo, &recorderStub{}, testSecret, 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "  ALICE@example.com ",
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	recorder := &recorderStub{}
	svc := NewUserService(repo, recorder, testSecret, 0, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(recorder.entries) != 0 {
		t.Fatalf("no activity should be recorded on failure: %+v", recorder.entries)
	}
}

func TestUserService_Register_RecordsActivity(t *testing.T) {
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			created := *user
			created.ID = "user123"
			return &created, nil
		},
	}
	recorder := &recorderStub{}
	svc := NewUserService(repo, recorder, testSecret, 0, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(recorder.entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(recorder.entries))
	}
	entry := recorder.entries[0]
	if entry.UserID != "user123" || entry.Action != domain.ActivityRegistered {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestGravatarURL_Normalizes(t *testing.T) {
	a := domain.GravatarURL("alice@example.com")
	b := domain.GravatarURL("  ALICE@Example.COM  ")
	if a != b {
		t.Fatalf("normalization mismatch:\n%s\n%s", a, b)
	}
	if !strings.Contains(a, "s=200") || !strings.Contains(a, "r=pg") || !strings.Contains(a, "d=mm") {
		t.Fatalf("missing query params: %s", a)
	}
}

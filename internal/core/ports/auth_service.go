package ports

import (
	"context"

	"github.com/devconnect/profile-api/internal/core/domain"
)

// AuthService covers login and authenticated-identity lookup.
type AuthService interface {
	// Login verifies the credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser resolves the authenticated user id to its account.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// LoginGuard throttles repeated failed login attempts per email.
type LoginGuard interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

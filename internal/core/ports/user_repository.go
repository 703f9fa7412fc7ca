package ports

import (
	"context"

	"github.com/devconnect/profile-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
// Create must be atomic with respect to the email uniqueness invariant:
// inserting a duplicate email returns domain.ErrUserExists, never a second
// document.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

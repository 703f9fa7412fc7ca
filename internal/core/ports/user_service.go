package ports

import "context"

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UserService covers account registration.
type UserService interface {
	// Register creates a new user and returns a signed token for it.
	Register(ctx context.Context, input RegisterInput) (string, error)
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect/profile-api/internal/core/domain"
	"github.com/devconnect/profile-api/internal/core/ports"
)

// UserService implements account registration.
type UserService struct {
	repo      ports.UserRepository
	activity  ports.ActivityRecorder
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, activity ports.ActivityRecorder, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &UserService{repo: repo, activity: activity, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register hashes the password, derives the gravatar URL and inserts the
// user. The email uniqueness check is delegated to the repository's atomic
// insert, so two concurrent registrations for the same email can never both
// succeed.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Avatar:       domain.GravatarURL(input.Email),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	token, err := signToken(s.jwtSecret, created.ID, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	s.activity.Record(ports.ActivityEntry{UserID: created.ID, Action: domain.ActivityRegistered, Timestamp: created.CreatedAt})

	return token, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect/profile-api/internal/core/domain"
	"github.com/devconnect/profile-api/internal/core/ports"
)

// AuthService implements login and identity lookup.
type AuthService struct {
	repo      ports.UserRepository
	guard     ports.LoginGuard
	activity  ports.ActivityRecorder
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, guard ports.LoginGuard, activity ports.ActivityRecorder, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{repo: repo, guard: guard, activity: activity, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credentials against the stored bcrypt hash and issues
// a token identical in shape to the one issued at registration. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	blocked, err := s.guard.TooManyFailures(ctx, email)
	if err != nil {
		// Guard unavailability must not lock users out.
		s.logger.Warn().Err(err).Msg("login guard unavailable")
	} else if blocked {
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	if err := s.guard.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login guard reset failed")
	}

	token, err := signToken(s.jwtSecret, user.ID, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	s.activity.Record(ports.ActivityEntry{UserID: user.ID, Action: domain.ActivityLoggedIn, Timestamp: time.Now().UTC()})

	return token, nil
}

// CurrentUser resolves the authenticated id from a verified token.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.guard.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login guard record failed")
	}
}

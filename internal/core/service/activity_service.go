package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/devconnect/profile-api/internal/core/domain"
	"github.com/devconnect/profile-api/internal/core/ports"
)

const defaultActivityLimit = 20

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the ActivityService backing the dispatcher
// workers.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists one dequeued entry.
func (s *activityService) Process(ctx context.Context, entry ports.ActivityEntry) error {
	activity := &domain.Activity{
		UserID:    entry.UserID,
		Action:    entry.Action,
		CreatedAt: entry.Timestamp,
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		return err
	}

	s.log.Debug().
		Str("user_id", entry.UserID).
		Str("action", entry.Action).
		Msg("activity recorded")
	return nil
}

// ListRecent returns the user's latest entries, newest first.
func (s *activityService) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

package ports

import (
	"context"
	"time"

	"github.com/devconnect/profile-api/internal/core/domain"
)

// ActivityEntry is the unit of work flowing through the activity pipeline.
type ActivityEntry struct {
	UserID    string
	Action    string
	Timestamp time.Time
}

// ActivityRecorder accepts entries for asynchronous persistence. Recording
// never blocks the request path beyond the dispatcher's buffer.
type ActivityRecorder interface {
	Record(entry ActivityEntry)
}

// ActivityService persists dequeued entries and serves the read side of the
// activity log.
type ActivityService interface {
	Process(ctx context.Context, entry ActivityEntry) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Activity, error)
}

// ActivityRepository defines the interface for activity persistence.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Activity, error)
}

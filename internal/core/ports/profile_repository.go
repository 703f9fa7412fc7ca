package ports

import (
	"context"

	"github.com/devconnect/profile-api/internal/core/domain"
)

// ProfileFields is the partial-update document applied by Upsert. Empty
// fields are left untouched on an existing profile; an update can therefore
// never clear a previously set field.
type ProfileFields struct {
	OwnerID        string
	Status         string
	Skills         []string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Social         *domain.Social
}

// ProfileRepository defines the interface for profile persistence.
//
// Upsert must be a single atomic update-or-insert keyed on the owner id, so
// concurrent submissions for the same owner can never produce two profiles.
// The sub-document mutators operate in place on the stored document;
// removals of an unknown sub-id are no-ops.
type ProfileRepository interface {
	Upsert(ctx context.Context, fields ProfileFields) (*domain.Profile, error)
	FindByOwner(ctx context.Context, ownerID string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	DeleteByOwner(ctx context.Context, ownerID string) error

	AddExperience(ctx context.Context, ownerID string, exp domain.Experience) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, ownerID, expID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, ownerID string, edu domain.Education) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, ownerID, eduID string) (*domain.Profile, error)
}

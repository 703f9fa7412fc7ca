package ports

import (
	"context"
	"time"

	"github.com/devconnect/profile-api/internal/core/domain"
)

type UpsertProfileInput struct {
	OwnerID        string
	Status         string
	Skills         string // comma-separated, split and trimmed by the service
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          time.Time
	Current     bool
	Description string
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           time.Time
	Current      bool
	Description  string
}

// ProfileService covers profile CRUD, embedded history mutation, account
// deletion and the GitHub repo proxy.
type ProfileService interface {
	GetOwn(ctx context.Context, ownerID string) (*domain.Profile, error)
	Upsert(ctx context.Context, input UpsertProfileInput) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	GetByOwner(ctx context.Context, ownerID string) (*domain.Profile, error)
	DeleteAccount(ctx context.Context, ownerID string) error

	AddExperience(ctx context.Context, ownerID string, input ExperienceInput) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, ownerID, expID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, ownerID string, input EducationInput) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, ownerID, eduID string) (*domain.Profile, error)

	GithubRepos(ctx context.Context, username string) ([]domain.GithubRepo, error)
}

// GithubClient fetches public repository summaries for a username.
type GithubClient interface {
	LatestRepos(ctx context.Context, username string, count int) ([]domain.GithubRepo, error)
}

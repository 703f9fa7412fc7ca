package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devconnect/profile-api/internal/core/domain"
	"github.com/devconnect/profile-api/internal/core/ports"
)

const githubRepoCount = 5

// ProfileService implements profile CRUD and embedded history mutation.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	posts    ports.PostRepository
	github   ports.GithubClient
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewProfileService(
	profiles ports.ProfileRepository,
	users ports.UserRepository,
	posts ports.PostRepository,
	github ports.GithubClient,
	activity ports.ActivityRecorder,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		users:    users,
		posts:    posts,
		github:   github,
		activity: activity,
		logger:   logger,
	}
}

func (s *ProfileService) GetOwn(ctx context.Context, ownerID string) (*domain.Profile, error) {
	return s.profiles.FindByOwner(ctx, ownerID)
}

// Upsert applies the submitted fields to the owner's profile, creating it on
// first submission. The update-or-insert is a single repository operation,
// so concurrent submissions cannot produce a duplicate profile.
func (s *ProfileService) Upsert(ctx context.Context, input ports.UpsertProfileInput) (*domain.Profile, error) {
	fields := ports.ProfileFields{
		OwnerID:        input.OwnerID,
		Status:         input.Status,
		Skills:         SplitSkills(input.Skills),
		Company:        input.Company,
		Website:        input.Website,
		Location:       input.Location,
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
	}

	if input.Youtube != "" || input.Twitter != "" || input.Facebook != "" || input.Linkedin != "" || input.Instagram != "" {
		fields.Social = &domain.Social{
			Youtube:   input.Youtube,
			Twitter:   input.Twitter,
			Facebook:  input.Facebook,
			Linkedin:  input.Linkedin,
			Instagram: input.Instagram,
		}
	}

	profile, err := s.profiles.Upsert(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", input.OwnerID).Msg("profile upserted")
	s.activity.Record(ports.ActivityEntry{UserID: input.OwnerID, Action: domain.ActivityProfileUpdated, Timestamp: time.Now().UTC()})

	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *ProfileService) GetByOwner(ctx context.Context, ownerID string) (*domain.Profile, error) {
	return s.profiles.FindByOwner(ctx, ownerID)
}

// DeleteAccount removes the owner's posts, profile and user. The result is
// idempotent: deleting an account with no profile or posts succeeds.
func (s *ProfileService) DeleteAccount(ctx context.Context, ownerID string) error {
	if err := s.posts.DeleteByUser(ctx, ownerID); err != nil {
		return err
	}
	if err := s.profiles.DeleteByOwner(ctx, ownerID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, ownerID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", ownerID).Msg("account deleted")
	s.activity.Record(ports.ActivityEntry{UserID: ownerID, Action: domain.ActivityAccountDeleted, Timestamp: time.Now().UTC()})
	return nil
}

func (s *ProfileService) AddExperience(ctx context.Context, ownerID string, input ports.ExperienceInput) (*domain.Profile, error) {
	exp := domain.Experience{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	return s.profiles.AddExperience(ctx, ownerID, exp)
}

func (s *ProfileService) RemoveExperience(ctx context.Context, ownerID, expID string) (*domain.Profile, error) {
	return s.profiles.RemoveExperience(ctx, ownerID, expID)
}

func (s *ProfileService) AddEducation(ctx context.Context, ownerID string, input ports.EducationInput) (*domain.Profile, error) {
	edu := domain.Education{
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	return s.profiles.AddEducation(ctx, ownerID, edu)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, ownerID, eduID string) (*domain.Profile, error) {
	return s.profiles.RemoveEducation(ctx, ownerID, eduID)
}

func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]domain.GithubRepo, error) {
	return s.github.LatestRepos(ctx, username, githubRepoCount)
}

// SplitSkills turns the comma-separated skills field into an ordered list of
// trimmed entries. Empty tokens are dropped.
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

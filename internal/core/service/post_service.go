package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devconnect/profile-api/internal/core/domain"
	"github.com/devconnect/profile-api/internal/core/ports"
)

// PostService implements the post feed.
type PostService struct {
	posts    ports.PostRepository
	users    ports.UserRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, activity: activity, logger: logger}
}

// Create snapshots the author's name and avatar onto the new post.
func (s *PostService) Create(ctx context.Context, userID, text string) (*domain.Post, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Likes:     []domain.Like{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("post_id", created.ID).Msg("post created")
	s.activity.Record(ports.ActivityEntry{UserID: userID, Action: domain.ActivityPostCreated, Timestamp: created.CreatedAt})

	return created, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, postID string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, postID)
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, postID, userID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return domain.ErrNotPostOwner
	}
	return s.posts.Delete(ctx, postID)
}

func (s *PostService) Like(ctx context.Context, postID, userID string) ([]domain.Like, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.LikedBy(userID) {
		return nil, domain.ErrAlreadyLiked
	}

	updated, err := s.posts.AddLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return updated.Likes, nil
}

func (s *PostService) Unlike(ctx context.Context, postID, userID string) ([]domain.Like, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.LikedBy(userID) {
		return nil, domain.ErrNotLiked
	}

	updated, err := s.posts.RemoveLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	return updated.Likes, nil
}

func (s *PostService) Comment(ctx context.Context, postID, userID, text string) ([]domain.Comment, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		UserID:    userID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().UTC(),
	}

	updated, err := s.posts.AddComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}
	return updated.Comments, nil
}

// RemoveComment removes a comment. Only the comment's author may remove it.
func (s *PostService) RemoveComment(ctx context.Context, postID, commentID, userID string) ([]domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	var found *domain.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			found = &post.Comments[i]
			break
		}
	}
	if found == nil {
		return nil, domain.ErrCommentMissing
	}
	if found.UserID != userID {
		return nil, domain.ErrNotPostOwner
	}

	updated, err := s.posts.RemoveComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	return updated.Comments, nil
}

package ports

import (
	"context"

	"github.com/devconnect/profile-api/internal/core/domain"
)

// PostService covers the post feed: creation, listing, deletion by the
// owner, likes and comments.
type PostService interface {
	Create(ctx context.Context, userID, text string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, postID string) (*domain.Post, error)
	Delete(ctx context.Context, postID, userID string) error

	Like(ctx context.Context, postID, userID string) ([]domain.Like, error)
	Unlike(ctx context.Context, postID, userID string) ([]domain.Like, error)
	Comment(ctx context.Context, postID, userID, text string) ([]domain.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID, userID string) ([]domain.Comment, error)
}

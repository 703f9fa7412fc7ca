package ports

import (
	"context"

	"github.com/devconnect/profile-api/internal/core/domain"
)

// PostRepository defines the interface for post persistence. Like, Unlike
// and the comment mutators are atomic array updates on the stored document.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error

	AddLike(ctx context.Context, postID, userID string) (*domain.Post, error)
	RemoveLike(ctx context.Context, postID, userID string) (*domain.Post, error)
	AddComment(ctx context.Context, postID string, comment domain.Comment) (*domain.Post, error)
	RemoveComment(ctx context.Context, postID, commentID string) (*domain.Post, error)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/devconnect/profile-api/internal/core/domain"
)

type stubPostService struct {
	createFn        func(ctx context.Context, userID, text string) (*domain.Post, error)
	listFn          func(ctx context.Context) ([]*domain.Post, error)
	getFn           func(ctx context.Context, postID string) (*domain.Post, error)
	deleteFn        func(ctx context.Context, postID, userID string) error
	likeFn          func(ctx context.Context, postID, userID string) ([]domain.Like, error)
	unlikeFn        func(ctx context.Context, postID, userID string) ([]domain.Like, error)
	commentFn       func(ctx context.Context, postID, userID, text string) ([]domain.Comment, error)
	removeCommentFn func(ctx context.Context, postID, commentID, userID string) ([]domain.Comment, error)
}

func (s *stubPostService) Create(ctx context.Context, userID, text string) (*domain.Post, error) {
	return s.createFn(ctx, userID, text)
}

func (s *stubPostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) Get(ctx context.Context, postID string) (*domain.Post, error) {
	return s.getFn(ctx, postID)
}

func (s *stubPostService) Delete(ctx context.Context, postID, userID string) error {
	return s.deleteFn(ctx, postID, userID)
}

func (s *stubPostService) Like(ctx context.Context, postID, userID string) ([]domain.Like, error) {
	return s.likeFn(ctx, postID, userID)
}

func (s *stubPostService) Unlike(ctx context.Context, postID, userID string) ([]domain.Like, error) {
	return s.unlikeFn(ctx, postID, userID)
}

func (s *stubPostService) Comment(ctx context.Context, postID, userID, text string) ([]domain.Comment, error) {
	return s.commentFn(ctx, postID, userID, text)
}

func (s *stubPostService) RemoveComment(ctx context.Context, postID, commentID, userID string) ([]domain.Comment, error) {
	return s.removeCommentFn(ctx, postID, commentID, userID)
}

func TestPostHandler_Create_Success(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, userID, text string) (*domain.Post, error) {
			if userID != "user123" || text != "hello world" {
				t.Fatalf("unexpected args: %s %q", userID, text)
			}
			return &domain.Post{ID: "post1", UserID: userID, Text: text, Name: "Alice"}, nil
		},
	}
	handler := NewPostHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/api/posts", `{"text":"hello world"}`, "user123")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["text"] != "hello world" || resp["name"] != "Alice" {
		t.Fatalf("unexpected post payload: %+v", resp)
	}
}

func TestPostHandler_Create_EmptyText(t *testing.T) {
	stub := &stubPostService{
		createFn: func(ctx context.Context, userID, text string) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPostHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/api/posts", `{"text":""}`, "user123")

	err := handler.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Msg != "text is required" {
		t.Fatalf("unexpected field errors: %+v", ve.Errors)
	}
}

func TestPostHandler_Delete_Success(t *testing.T) {
	stub := &stubPostService{
		deleteFn: func(ctx context.Context, postID, userID string) error {
			if postID != "post1" || userID != "user123" {
				t.Fatalf("unexpected args: %s %s", postID, userID)
			}
			return nil
		},
	}
	handler := NewPostHandler(stub)

	c, rec := newAuthedContext(t, http.MethodDelete, "/api/posts/post1", "", "user123")
	c.SetParamNames("id")
	c.SetParamValues("post1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["msg"] != "Post removed" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestPostHandler_Delete_NotOwner(t *testing.T) {
	stub := &stubPostService{
		deleteFn: func(ctx context.Context, postID, userID string) error {
			return domain.ErrNotPostOwner
		},
	}
	handler := NewPostHandler(stub)

	c, _ := newAuthedContext(t, http.MethodDelete, "/api/posts/post1", "", "intruder")
	c.SetParamNames("id")
	c.SetParamValues("post1")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrNotPostOwner) {
		t.Fatalf("expected ErrNotPostOwner, got %v", err)
	}
}

func TestPostHandler_Like_Success(t *testing.T) {
	stub := &stubPostService{
		likeFn: func(ctx context.Context, postID, userID string) ([]domain.Like, error) {
			return []domain.Like{{UserID: userID}}, nil
		},
	}
	handler := NewPostHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPut, "/api/posts/like/post1", "", "user123")
	c.SetParamNames("id")
	c.SetParamValues("post1")

	if err := handler.Like(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var likes []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &likes); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(likes) != 1 {
		t.Fatalf("expected 1 like, got %+v", likes)
	}
}

func TestPostHandler_Like_AlreadyLiked(t *testing.T) {
	stub := &stubPostService{
		likeFn: func(ctx context.Context, postID, userID string) ([]domain.Like, error) {
			return nil, domain.ErrAlreadyLiked
		},
	}
	handler := NewPostHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPut, "/api/posts/like/post1", "", "user123")
	c.SetParamNames("id")
	c.SetParamValues("post1")

	if err := handler.Like(c); !errors.Is(err, domain.ErrAlreadyLiked) {
		t.Fatalf("expected ErrAlreadyLiked, got %v", err)
	}
}

func TestPostHandler_Unlike_NotLiked(t *testing.T) {
	stub := &stubPostService{
		unlikeFn: func(ctx context.Context, postID, userID string) ([]domain.Like, error) {
			return nil, domain.ErrNotLiked
		},
	}
	handler := NewPostHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPut, "/api/posts/unlike/post1", "", "user123")
	c.SetParamNames("id")
	c.SetParamValues("post1")

	if err := handler.Unlike(c); !errors.Is(err, domain.ErrNotLiked) {
		t.Fatalf("expected ErrNotLiked, got %v", err)
	}
}

func TestPostHandler_Comment_Success(t *testing.T) {
	stub := &stubPostService{
		commentFn: func(ctx context.Context, postID, userID, text string) ([]domain.Comment, error) {
			if postID != "post1" || userID != "user123" || text != "nice post" {
				t.Fatalf("unexpected args: %s %s %q", postID, userID, text)
			}
			return []domain.Comment{{ID: "c1", UserID: userID, Text: text}}, nil
		},
	}
	handler := NewPostHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/api/posts/comment/post1", `{"text":"nice post"}`, "user123")
	c.SetParamNames("id")
	c.SetParamValues("post1")

	if err := handler.Comment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostHandler_RemoveComment_PassesIDs(t *testing.T) {
	stub := &stubPostService{
		removeCommentFn: func(ctx context.Context, postID, commentID, userID string) ([]domain.Comment, error) {
			if postID != "post1" || commentID != "c1" || userID != "user123" {
				t.Fatalf("unexpected args: %s %s %s", postID, commentID, userID)
			}
			return []domain.Comment{}, nil
		},
	}
	handler := NewPostHandler(stub)

	c, rec := newAuthedContext(t, http.MethodDelete, "/api/posts/comment/post1/c1", "", "user123")
	c.SetParamNames("id", "comment_id")
	c.SetParamValues("post1", "c1")

	if err := handler.RemoveComment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

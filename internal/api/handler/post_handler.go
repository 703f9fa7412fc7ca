package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnect/profile-api/internal/api/metrics"
	"github.com/devconnect/profile-api/internal/core/ports"
)

// PostHandler handles the post feed.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create adds a new post authored by the authenticated user.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string             true  "Signed token"
// @Param        body          body    createPostRequest  true  "Post text"
// @Success      200  {object}  domain.Post
// @Failure      400  {object}  errorsResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return &ValidationError{Errors: []FieldError{{Msg: "Invalid payload"}}}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, post)
}

// List returns all posts, newest first.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Success      200  {array}   domain.Post
// @Failure      401  {object}  msgResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get returns a single post by id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Param        id            path    string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      400  {object}  msgResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post owned by the authenticated user.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Param        id            path    string  true  "Post id"
// @Success      200  {object}  msgResponse
// @Failure      400  {object}  msgResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Post removed"})
}

// Like records the authenticated user's like and returns the likes array.
//
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Param        id            path    string  true  "Post id"
// @Success      200  {array}   domain.Like
// @Failure      400  {object}  msgResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/posts/like/{id} [put]
func (h *PostHandler) Like(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	likes, err := h.service.Like(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}

// Unlike removes the authenticated user's like.
//
// @Summary      Unlike a post
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Param        id            path    string  true  "Post id"
// @Success      200  {array}   domain.Like
// @Failure      400  {object}  msgResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/posts/unlike/{id} [put]
func (h *PostHandler) Unlike(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	likes, err := h.service.Unlike(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}

// Comment adds a comment and returns the comments array.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        x-auth-token  header  string          true  "Signed token"
// @Param        id            path    string          true  "Post id"
// @Param        body          body    commentRequest  true  "Comment text"
// @Success      200  {array}   domain.Comment
// @Failure      400  {object}  errorsResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/posts/comment/{id} [post]
func (h *PostHandler) Comment(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return &ValidationError{Errors: []FieldError{{Msg: "Invalid payload"}}}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comments, err := h.service.Comment(c.Request().Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// RemoveComment removes the authenticated user's comment.
//
// @Summary      Remove a comment
// @Tags         posts
// @Produce      json
// @Param        x-auth-token  header  string  true  "Signed token"
// @Param        id            path    string  true  "Post id"
// @Param        comment_id    path    string  true  "Comment id"
// @Success      200  {array}   domain.Comment
// @Failure      400  {object}  msgResponse
// @Failure      401  {object}  msgResponse
// @Router       /api/posts/comment/{id}/{comment_id} [delete]
func (h *PostHandler) RemoveComment(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	comments, err := h.service.RemoveComment(c.Request().Context(), c.Param("id"), c.Param("comment_id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

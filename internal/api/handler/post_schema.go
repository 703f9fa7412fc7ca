package handler

// createPostRequest is the body of POST /api/posts.
type createPostRequest struct {
	Text string `json:"text" validate:"required"`
}

// commentRequest is the body of POST /api/posts/comment/:id.
type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

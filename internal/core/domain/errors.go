package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrProfileNotFound = errors.New("profile not found")
	ErrGithubNotFound  = errors.New("no github profile found")

	ErrPostNotFound   = errors.New("post not found")
	ErrNotPostOwner   = errors.New("user not authorized")
	ErrAlreadyLiked   = errors.New("post already liked")
	ErrNotLiked       = errors.New("post has not yet been liked")
	ErrCommentMissing = errors.New("comment does not exist")
)

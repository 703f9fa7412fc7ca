package domain

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// GravatarURL derives the avatar URL for an email address. Gravatar hashes
// the lowercased, trimmed address; size 200, PG rating, "mystery man"
// fallback.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", md5.Sum([]byte(normalized)))
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL matches the legacy client's expectation of long-lived
// sessions (100 hours).
const DefaultTokenTTL = 100 * time.Hour

// signToken issues an HS256 token carrying the user id. Both registration
// and login produce tokens of this exact shape.
func signToken(secret, userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

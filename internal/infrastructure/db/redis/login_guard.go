package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 10
	defaultWindow      = 15 * time.Minute
)

// LoginGuard throttles repeated failed login attempts per email, backed by
// Redis counter keys with a sliding TTL.
// Key format: login_failures:<email>
type LoginGuard struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginGuard creates a LoginGuard wrapping the given Redis client.
// maxFailures <= 0 and window <= 0 fall back to the defaults.
func NewLoginGuard(client *redis.Client, maxFailures int64, window time.Duration) *LoginGuard {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginGuard{client: client, maxFailures: maxFailures, window: window}
}

// TooManyFailures reports whether the email has exhausted its allowed attempts.
func (g *LoginGuard) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(email)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("login guard get: %w", err)
	}
	return n >= g.maxFailures, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (g *LoginGuard) RecordFailure(ctx context.Context, email string) error {
	key := g.key(email)
	if err := g.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("login guard incr: %w", err)
	}
	return g.client.Expire(ctx, key, g.window).Err()
}

// Reset clears the counter after a successful login.
func (g *LoginGuard) Reset(ctx context.Context, email string) error {
	return g.client.Del(ctx, g.key(email)).Err()
}

func (g *LoginGuard) key(email string) string {
	return "login_failures:" + strings.ToLower(strings.TrimSpace(email))
}

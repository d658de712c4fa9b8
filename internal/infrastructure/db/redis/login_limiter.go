package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 10
)

// LoginLimiter throttles repeated failed logins backed by Redis.
// Key format: login_attempts:<username>:<remote_ip>
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// TooMany reports whether this username/IP pair has exhausted its window.
func (l *LoginLimiter) TooMany(ctx context.Context, username, remoteIP string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username, remoteIP)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n >= maxAttempts, nil
}

// RecordFailure counts one failed attempt; the counter expires after the
// attempt window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username, remoteIP string) error {
	key := l.key(username, remoteIP)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("limiter record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username, remoteIP string) error {
	return l.client.Del(ctx, l.key(username, remoteIP)).Err()
}

func (l *LoginLimiter) key(username, remoteIP string) string {
	return fmt.Sprintf("login_attempts:%s:%s", username, remoteIP)
}

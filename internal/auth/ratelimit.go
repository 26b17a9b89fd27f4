package auth

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// redisCommands is the slice of the redis client the limiter uses.
type redisCommands interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// LoginLimiter throttles login attempts per email using a fixed window
// counter in Redis. When Redis is unavailable it fails open.
type LoginLimiter struct {
	client      redisCommands
	logger      *zap.Logger
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter constructs the limiter. A nil client disables throttling.
func NewLoginLimiter(client *redis.Client, logger *zap.Logger, maxAttempts int, window time.Duration) *LoginLimiter {
	limiter := &LoginLimiter{logger: logger, maxAttempts: maxAttempts, window: window}
	if client != nil {
		limiter.client = client
	}
	return limiter
}

// Allow records an attempt for the email and rejects once the window budget
// is exhausted.
func (l *LoginLimiter) Allow(ctx context.Context, email string) error {
	if l == nil || l.client == nil || l.maxAttempts <= 0 {
		return nil
	}

	key := attemptKey(email)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("login limiter unavailable", zap.Error(err))
		return nil
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
	if count > int64(l.maxAttempts) {
		return apperrors.NewTooManyRequests("too many login attempts, try again later")
	}
	return nil
}

// Reset clears the attempt counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if l == nil || l.client == nil {
		return
	}
	if err := l.client.Del(ctx, attemptKey(email)).Err(); err != nil {
		l.logger.Warn("login limiter reset failed", zap.Error(err))
	}
}

func attemptKey(email string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(email))
}

package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

type fakeRedis struct {
	counts  map[string]int64
	ttls    map[string]time.Duration
	incrErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.incrErr != nil {
		cmd.SetErr(f.incrErr)
		return cmd
	}
	f.counts[key]++
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeRedis) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.ttls[key] = expiration
	cmd := redis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.counts, key)
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(int64(len(keys)))
	return cmd
}

func TestLoginLimiter_BlocksWhenBudgetExhausted(t *testing.T) {
	t.Parallel()

	store := newFakeRedis()
	limiter := &LoginLimiter{client: store, logger: zap.NewNop(), maxAttempts: 2, window: time.Minute}

	allow := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("attempt within budget rejected: %v", err)
		}
	}
	allow(limiter.Allow(context.Background(), "a@x.com"))
	allow(limiter.Allow(context.Background(), "a@x.com"))

	err := limiter.Allow(context.Background(), "a@x.com")
	if err == nil {
		t.Fatalf("expected rejection after budget exhausted")
	}
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if de.Code != "TOO_MANY_ATTEMPTS" || de.HTTPStatus != http.StatusTooManyRequests {
		t.Fatalf("got %q/%d", de.Code, de.HTTPStatus)
	}

	if got := store.ttls["login_attempts:a@x.com"]; got != time.Minute {
		t.Fatalf("window not set on first attempt: %v", got)
	}
}

func TestLoginLimiter_KeyNormalizesEmail(t *testing.T) {
	t.Parallel()

	store := newFakeRedis()
	limiter := &LoginLimiter{client: store, logger: zap.NewNop(), maxAttempts: 1, window: time.Minute}

	if err := limiter.Allow(context.Background(), "A@X.com "); err != nil {
		t.Fatalf("first attempt rejected: %v", err)
	}
	if err := limiter.Allow(context.Background(), "a@x.com"); err == nil {
		t.Fatalf("case-variant email must share the window")
	}
}

func TestLoginLimiter_ResetClearsWindow(t *testing.T) {
	t.Parallel()

	store := newFakeRedis()
	limiter := &LoginLimiter{client: store, logger: zap.NewNop(), maxAttempts: 1, window: time.Minute}

	if err := limiter.Allow(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("first attempt rejected: %v", err)
	}
	limiter.Reset(context.Background(), "a@x.com")

	if err := limiter.Allow(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("attempt after reset rejected: %v", err)
	}
}

func TestLoginLimiter_FailsOpenOnRedisError(t *testing.T) {
	t.Parallel()

	store := newFakeRedis()
	store.incrErr = errors.New("connection refused")
	limiter := &LoginLimiter{client: store, logger: zap.NewNop(), maxAttempts: 1, window: time.Minute}

	for i := 0; i < 5; i++ {
		if err := limiter.Allow(context.Background(), "a@x.com"); err != nil {
			t.Fatalf("limiter must fail open when redis unavailable: %v", err)
		}
	}
}

func TestLoginLimiter_DisabledPaths(t *testing.T) {
	t.Parallel()

	var nilLimiter *LoginLimiter
	if err := nilLimiter.Allow(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("nil limiter must allow: %v", err)
	}
	nilLimiter.Reset(context.Background(), "a@x.com")

	noClient := NewLoginLimiter(nil, zap.NewNop(), 10, time.Minute)
	if err := noClient.Allow(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("nil client must allow: %v", err)
	}
	noClient.Reset(context.Background(), "a@x.com")

	store := newFakeRedis()
	zeroBudget := &LoginLimiter{client: store, logger: zap.NewNop(), maxAttempts: 0, window: time.Minute}
	if err := zeroBudget.Allow(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("zero budget disables throttling: %v", err)
	}
	if len(store.counts) != 0 {
		t.Fatalf("disabled limiter must not touch the store")
	}
}

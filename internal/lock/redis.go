package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrNotAcquired is returned when the lock is still held by someone else
// after the wait budget is spent.
var ErrNotAcquired = errors.New("lock not acquired")

// unlockScript deletes the key only if it still holds our token, so an
// expired lock re-acquired by another worker is never released by us.
const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`

const keyPrefix = "lock:"

type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// Locker is a single-instance Redis mutex keyed by arbitrary strings.
type Locker struct {
	client redisClient
	ttl    time.Duration
	wait   time.Duration
	poll   time.Duration
}

// NewLocker creates a Locker. ttl bounds how long a crashed holder keeps
// the key; wait bounds how long Lock blocks.
func NewLocker(client redisClient, ttl, wait time.Duration) *Locker {
	poll := wait / 20
	if poll < 5*time.Millisecond {
		poll = 5 * time.Millisecond
	}

	return &Locker{client: client, ttl: ttl, wait: wait, poll: poll}
}

// Lock blocks until key is acquired, the wait budget runs out or ctx is done.
// The returned func releases the lock and is safe to call once.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	key = keyPrefix + key
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			return l.release(ctx, key, token), nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrNotAcquired, key)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.poll):
		}
	}
}

func (l *Locker) release(ctx context.Context, key, token string) func() {
	return func() {
		// The caller's context may already be cancelled at release time.
		_ = l.client.Eval(context.WithoutCancel(ctx), unlockScript, []string{key}, token).Err()
	}
}

package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements SET NX and the compare-and-delete script in memory.
type fakeRedis struct {
	mu     sync.Mutex
	keys   map[string]string
	setErr error
	evals  int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: make(map[string]string)}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setErr != nil {
		return redis.NewBoolResult(false, f.setErr)
	}
	if _, held := f.keys[key]; held {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = value.(string)

	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.evals++
	if f.keys[keys[0]] == args[0].(string) {
		delete(f.keys, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}

	return redis.NewCmdResult(int64(0), nil)
}

func (f *fakeRedis) held(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.keys[key]
	return ok
}

func TestLocker_LockAndRelease(t *testing.T) {
	rdb := newFakeRedis()
	l := NewLocker(rdb, time.Second, 50*time.Millisecond)

	unlock, err := l.Lock(context.Background(), "dedup:chat:r:s")
	require.NoError(t, err)
	assert.True(t, rdb.held("lock:dedup:chat:r:s"))

	unlock()
	assert.False(t, rdb.held("lock:dedup:chat:r:s"))
}

func TestLocker_WaitExceeded(t *testing.T) {
	rdb := newFakeRedis()
	l := NewLocker(rdb, time.Second, 20*time.Millisecond)

	_, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)

	_, err = l.Lock(context.Background(), "k")
	assert.ErrorIs(t, err, ErrNotAcquired)
}

func TestLocker_WaitsForRelease(t *testing.T) {
	rdb := newFakeRedis()
	l := NewLocker(rdb, time.Second, time.Second)

	unlock, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)

	go func() {
		time.Sleep(30 * time.Millisecond)
		unlock()
	}()

	unlock2, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)
	unlock2()
}

func TestLocker_ReleaseDoesNotStealForeignLock(t *testing.T) {
	rdb := newFakeRedis()
	l := NewLocker(rdb, time.Second, 10*time.Millisecond)

	unlock, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)

	// Simulate expiry and re-acquisition by another holder.
	rdb.mu.Lock()
	rdb.keys["lock:k"] = "someone-else"
	rdb.mu.Unlock()

	unlock()
	assert.True(t, rdb.held("lock:k"))
	assert.Equal(t, 1, rdb.evals)
}

func TestLocker_RedisError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.setErr = errors.New("connection refused")
	l := NewLocker(rdb, time.Second, 10*time.Millisecond)

	_, err := l.Lock(context.Background(), "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotAcquired)
}

func TestLocker_ContextCancelled(t *testing.T) {
	rdb := newFakeRedis()
	l := NewLocker(rdb, time.Second, time.Minute)

	_, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

package lookup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/lookup/mock.go -package=mocks

type tokenRepository interface {
	GetToken(ctx context.Context, userID string) (string, error)
}

type userRepository interface {
	GetName(ctx context.Context, userID string) (string, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Service answers token and display-name lookups from Redis, falling back
// to Postgres on a miss. Cache failures never fail a lookup.
type Service struct {
	tokens   tokenRepository
	users    userRepository
	cache    cache
	strategy retry.Strategy
	ttl      time.Duration
}

func NewService(tokens tokenRepository, users userRepository, cache cache, strategy retry.Strategy, ttl time.Duration) *Service {
	return &Service{
		tokens:   tokens,
		users:    users,
		cache:    cache,
		strategy: strategy,
		ttl:      ttl,
	}
}

// Token returns the push token of a user, or "" if none is registered.
func (s *Service) Token(ctx context.Context, userID string) (string, error) {
	return s.cached(ctx, "token:"+userID, func() (string, error) {
		token, err := s.tokens.GetToken(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("get token: %w", err)
		}
		return token, nil
	})
}

// DisplayName returns the name of a user, or "" if the user is unknown.
func (s *Service) DisplayName(ctx context.Context, userID string) (string, error) {
	return s.cached(ctx, "name:"+userID, func() (string, error) {
		name, err := s.users.GetName(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("get user name: %w", err)
		}
		return name, nil
	})
}

func (s *Service) cached(ctx context.Context, key string, load func() (string, error)) (string, error) {
	if s.cache != nil {
		value, err := s.cache.GetWithRetry(ctx, s.strategy, key)
		if err == nil && value != "" {
			return value, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to read lookup cache")
		}
	}

	value, err := load()
	if err != nil {
		return "", err
	}

	// Absent values are not cached so a fresh registration is picked up at once.
	if value == "" || s.cache == nil {
		return value, nil
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, key, value); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to write lookup cache")
		return value, nil
	}

	if s.ttl > 0 {
		if err := s.cache.Expire(ctx, key, s.ttl).Err(); err != nil {
			zlog.Logger.Warn().Err(err).Str("key", key).Msg("failed to set lookup cache ttl")
		}
	}

	return value, nil
}

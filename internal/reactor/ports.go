package reactor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/request-notifier/internal/model"
)

//go:generate mockgen -source=ports.go -destination=../mocks/reactor/mock.go -package=mocks

// tokenRegistry resolves the push token of a user. An unknown user yields "" and no error.
type tokenRegistry interface {
	Token(ctx context.Context, userID string) (string, error)
}

// userDirectory resolves display names. An unknown user yields "" and no error.
type userDirectory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

type pushTransport interface {
	Send(ctx context.Context, push model.Push) (string, error)
}

// notificationStore holds in-app notifications, scoped per recipient.
type notificationStore interface {
	Add(ctx context.Context, n model.Notification) (uuid.UUID, error)
	Query(ctx context.Context, userID string, filter model.NotificationFilter, limit int) ([]model.Notification, error)
	Update(ctx context.Context, userID string, id uuid.UUID, patch model.NotificationPatch) error
}

type failureSink interface {
	Report(ctx context.Context, failure model.Failure) error
}

type keyLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

type observer interface {
	Observe(reactor, outcome, category string, elapsed time.Duration)
}

package reactor

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/request-notifier/internal/model"
)

// memStore is an in-memory notification store that enforces the same
// one-unread-chat-per-sender and one-record-per-event rules as the
// Postgres partial indexes.
type memStore struct {
	mu   sync.Mutex
	rows []model.Notification
	now  func() time.Time
}

func newMemStore() *memStore {
	var tick int64
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &memStore{now: func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}}
}

func (s *memStore) Add(_ context.Context, n model.Notification) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.EventID != "" {
		for _, r := range s.rows {
			if r.EventID == n.EventID {
				return r.ID, nil
			}
		}
	}

	if d, ok := n.Detail.(model.ChatDetail); ok {
		for _, r := range s.rows {
			rd, isChat := r.Detail.(model.ChatDetail)
			if isChat && !r.IsRead && r.UserID == n.UserID && rd.SenderID == d.SenderID {
				return uuid.Nil, model.ErrUnreadChatExists
			}
		}
	}

	n.ID = uuid.New()
	n.CreatedAt = s.now()
	s.rows = append(s.rows, n)

	return n.ID, nil
}

func (s *memStore) Query(_ context.Context, userID string, f model.NotificationFilter, limit int) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Notification
	for _, r := range s.rows {
		if r.UserID != userID {
			continue
		}
		if f.Type != "" && r.Type() != f.Type {
			continue
		}
		if f.SenderID != "" {
			d, ok := r.Detail.(model.ChatDetail)
			if !ok || d.SenderID != f.SenderID {
				continue
			}
		}
		if f.UnreadOnly && r.IsRead {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (s *memStore) Update(_ context.Context, userID string, id uuid.UUID, p model.NotificationPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		r := &s.rows[i]
		if r.ID != id || r.UserID != userID {
			continue
		}
		if p.UnreadOnly && r.IsRead {
			break
		}
		if p.Title != nil {
			r.Title = *p.Title
		}
		if p.Body != nil {
			r.Body = *p.Body
		}
		if p.IsRead != nil {
			r.IsRead = *p.IsRead
		}
		if p.Touch {
			r.CreatedAt = s.now()
		}
		return nil
	}

	return model.ErrNotificationNotFound
}

func (s *memStore) markRead(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].IsRead = true
		}
	}
}

func (s *memStore) unreadChats(userID, senderID string) []model.Notification {
	list, _ := s.Query(context.Background(), userID, model.NotificationFilter{
		Type:       model.TypeChat,
		SenderID:   senderID,
		UnreadOnly: true,
	}, 0)
	return list
}

type mapTokens map[string]string

func (m mapTokens) Token(_ context.Context, userID string) (string, error) {
	return m[userID], nil
}

type mapUsers map[string]string

func (m mapUsers) DisplayName(_ context.Context, userID string) (string, error) {
	return m[userID], nil
}

// recordingPush captures every push it is asked to send.
type recordingPush struct {
	mu     sync.Mutex
	pushes []model.Push
}

func (p *recordingPush) Send(_ context.Context, push model.Push) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pushes = append(p.pushes, push)
	return "projects/test/messages/" + uuid.NewString(), nil
}

func (p *recordingPush) sent() []model.Push {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]model.Push(nil), p.pushes...)
}

// permanentErr mimics a transport error for a token that will never work.
type permanentErr struct{}

func (permanentErr) Error() string     { return "registration token is not registered" }
func (permanentErr) IsPermanent() bool { return true }

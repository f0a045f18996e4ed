package reactor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aliskhannn/request-notifier/internal/model"
)

const messageReactorName = "chat_message"

// MessageReactor notifies the receiver of a new chat message and keeps at
// most one unread chat notification per (receiver, sender).
type MessageReactor struct {
	pipe   *Pipeline
	store  notificationStore
	locker keyLocker
}

// NewMessageReactor creates a MessageReactor. locker may be nil, in which
// case the store's conditional write is the only dedup guard.
func NewMessageReactor(pipe *Pipeline, store notificationStore, locker keyLocker) *MessageReactor {
	return &MessageReactor{pipe: pipe, store: store, locker: locker}
}

// DedupKey is the lock key serializing notifications for one (receiver, sender) pair.
func DedupKey(receiverID, senderID string) string {
	return fmt.Sprintf("dedup:chat:%s:%s", receiverID, senderID)
}

// Handle reacts to one created message.
func (r *MessageReactor) Handle(ctx context.Context, ev model.MessageCreated) Result {
	ctx, span := tracer.Start(ctx, "MessageReactor.Handle", trace.WithAttributes(
		attribute.String("chat.id", ev.ChatID),
		attribute.String("message.id", ev.MessageID),
	))
	defer span.End()

	msg := ev.Message
	inv := invocation{
		reactor: messageReactorName,
		eventID: ev.EventID,
		subject: ev.ChatID,
		userID:  msg.ReceiverID,
		started: time.Now(),
	}

	if msg.SenderID == "" || msg.ReceiverID == "" {
		return r.pipe.finish(ctx, inv, skipped("missing sender or receiver"))
	}

	token, res, ok := r.pipe.resolveToken(ctx, inv)
	if !ok {
		return r.pipe.finish(ctx, inv, res)
	}

	sender, fellBack := r.pipe.displayName(ctx, msg.SenderID, senderFallback)

	unlock := r.lock(ctx, msg.ReceiverID, msg.SenderID)
	defer unlock()

	var existing *model.Notification
	err := r.pipe.do(ctx, "store", func() error {
		var err error
		existing, err = r.findUnread(ctx, msg.ReceiverID, msg.SenderID)
		return err
	})
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("chat_id", ev.ChatID).Msg("unread lookup failed, treating as first message")
		existing = nil
	}

	detail := model.ChatDetail{ChatID: ev.ChatID, SenderID: msg.SenderID, RequestID: msg.RequestID}

	single := ChatContent(sender, msg.Text, false)
	push := single
	if existing != nil {
		push.Body = chatGenericBody
	}
	res.PushID, res.PushErr = r.pipe.send(ctx, inv, model.Push{
		Token: token,
		Title: push.Title,
		Body:  push.Body,
		Data:  detail.Data(),
	})

	fresh := model.Notification{
		UserID:  msg.ReceiverID,
		EventID: ev.EventID,
		Title:   single.Title,
		Body:    single.Body,
		Detail:  detail,
	}
	res.StoreErr = r.pipe.persist(ctx, inv, func() error {
		id, coalesced, err := r.record(ctx, existing, fresh, msg.SenderID, sender)
		if err != nil {
			return err
		}
		res.NotificationID, res.Coalesced = id, coalesced
		return nil
	})

	return r.pipe.finish(ctx, inv, settle(res, fellBack))
}

// record creates the unread chat notification or coalesces into the
// existing one. An insert rejected by the store's unread-per-sender
// constraint falls back to updating the record that won, and a coalesce
// target that was read in the meantime falls back to a new record.
func (r *MessageReactor) record(
	ctx context.Context,
	existing *model.Notification,
	fresh model.Notification,
	senderID, sender string,
) (uuid.UUID, bool, error) {
	if existing != nil {
		err := r.coalesce(ctx, fresh.UserID, existing.ID, sender)
		if err == nil {
			return existing.ID, true, nil
		}
		if !errors.Is(err, model.ErrNotificationNotFound) {
			return uuid.Nil, false, err
		}
	}

	id, err := r.store.Add(ctx, fresh)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, model.ErrUnreadChatExists) {
		return uuid.Nil, false, err
	}

	winner, err := r.findUnread(ctx, fresh.UserID, senderID)
	if err != nil {
		return uuid.Nil, false, err
	}
	if winner == nil {
		return uuid.Nil, false, fmt.Errorf("unread notification disappeared: %w", model.ErrUnreadChatExists)
	}

	if err := r.coalesce(ctx, fresh.UserID, winner.ID, sender); err != nil {
		return uuid.Nil, false, err
	}

	return winner.ID, true, nil
}

// coalesce folds a new message into an unread notification. It fails with
// model.ErrNotificationNotFound once the notification has been read.
func (r *MessageReactor) coalesce(ctx context.Context, userID string, id uuid.UUID, sender string) error {
	content := ChatContent(sender, "", true)
	patch := model.NotificationPatch{
		Title:      &content.Title,
		Body:       &content.Body,
		Touch:      true,
		UnreadOnly: true,
	}

	return r.store.Update(ctx, userID, id, patch)
}

func (r *MessageReactor) findUnread(ctx context.Context, receiverID, senderID string) (*model.Notification, error) {
	filter := model.NotificationFilter{
		Type:       model.TypeChat,
		SenderID:   senderID,
		UnreadOnly: true,
	}

	list, err := r.store.Query(ctx, receiverID, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	return &list[0], nil
}

func (r *MessageReactor) lock(ctx context.Context, receiverID, senderID string) func() {
	if r.locker == nil {
		return func() {}
	}

	unlock, err := r.locker.Lock(ctx, DedupKey(receiverID, senderID))
	if err != nil {
		zlog.Logger.Warn().Err(err).
			Str("receiver_id", receiverID).
			Str("sender_id", senderID).
			Msg("dedup lock unavailable, relying on conditional write")
		return func() {}
	}

	return unlock
}

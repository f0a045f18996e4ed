package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/request-notifier/internal/model"
)

var ErrUnknownType = errors.New("unknown notification type")

// uniqueUnreadChatIndex enforces one unread chat notification per (user, sender).
const uniqueUnreadChatIndex = "notifications_unread_chat_uniq"

const pgUniqueViolation = "23505"

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a notification and returns its ID.
//
// It returns model.ErrUnreadChatExists when the recipient already has an
// unread chat notification from the same sender. Adding a notification for
// an event that already produced one returns the existing ID.
func (r *Repository) Add(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    user_id, type, title, body, request_id, chat_id, sender_id, status, event_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (event_id) WHERE event_id IS NOT NULL DO NOTHING
		RETURNING id;
    `

	var requestID, chatID, senderID, status string
	switch d := n.Detail.(type) {
	case model.StatusDetail:
		requestID, status = d.RequestID, string(d.Status)
	case model.ChatDetail:
		requestID, chatID, senderID = d.RequestID, d.ChatID, d.SenderID
	default:
		return uuid.Nil, ErrUnknownType
	}

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(
		ctx, query,
		n.UserID, string(n.Type()), n.Title, n.Body,
		nullable(requestID), nullable(chatID), nullable(senderID), nullable(status), nullable(n.EventID),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) && n.EventID != "" {
			return r.byEvent(ctx, n.UserID, n.EventID)
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation && pqErr.Constraint == uniqueUnreadChatIndex {
			return uuid.Nil, model.ErrUnreadChatExists
		}

		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// byEvent returns the notification an event already produced for userID.
func (r *Repository) byEvent(ctx context.Context, userID, eventID string) (uuid.UUID, error) {
	query := `
		SELECT id
		FROM notifications
		WHERE event_id = $1 AND user_id = $2;
    `

	var id uuid.UUID
	if err := r.db.Master.QueryRowContext(ctx, query, eventID, userID).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to get notification by event: %w", err)
	}

	return id, nil
}

// Query returns up to limit notifications of one user, newest first.
// A non-positive limit returns all matches.
//
// Reads go to the master so that a write is visible to the next dedup lookup.
func (r *Repository) Query(
	ctx context.Context,
	userID string,
	filter model.NotificationFilter,
	limit int,
) ([]model.Notification, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, user_id, type, title, body, request_id, chat_id, sender_id, status, is_read, created_at
		FROM notifications
		WHERE user_id = $1`)

	args := []any{userID}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		fmt.Fprintf(&sb, " AND type = $%d", len(args))
	}
	if filter.SenderID != "" {
		args = append(args, filter.SenderID)
		fmt.Fprintf(&sb, " AND sender_id = $%d", len(args))
	}
	if filter.UnreadOnly {
		sb.WriteString(" AND is_read = false")
	}
	sb.WriteString(" ORDER BY created_at DESC")
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	sb.WriteString(";")

	rows, err := r.db.Master.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// Update applies a patch to a notification owned by userID. It returns
// model.ErrNotificationNotFound when no row matched, including a read row
// under patch.UnreadOnly.
func (r *Repository) Update(ctx context.Context, userID string, id uuid.UUID, patch model.NotificationPatch) error {
	query := `
		UPDATE notifications
		SET title = COALESCE($1, title),
		    body = COALESCE($2, body),
		    is_read = COALESCE($3, is_read),
		    created_at = CASE WHEN $4 THEN now() ELSE created_at END
		WHERE id = $5 AND user_id = $6 AND (NOT $7 OR NOT is_read);
    `

	var isRead sql.NullBool
	if patch.IsRead != nil {
		isRead = sql.NullBool{Bool: *patch.IsRead, Valid: true}
	}

	res, err := r.db.ExecContext(
		ctx, query,
		nullableRef(patch.Title), nullableRef(patch.Body), isRead, patch.Touch, id, userID, patch.UnreadOnly,
	)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return model.ErrNotificationNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(s scanner) (model.Notification, error) {
	var (
		n                                   model.Notification
		kind                                string
		requestID, chatID, senderID, status sql.NullString
		createdAt                           time.Time
	)

	err := s.Scan(&n.ID, &n.UserID, &kind, &n.Title, &n.Body, &requestID, &chatID, &senderID, &status, &n.IsRead, &createdAt)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to scan notification: %w", err)
	}
	n.CreatedAt = createdAt

	switch model.NotificationType(kind) {
	case model.TypeStatus:
		n.Detail = model.StatusDetail{RequestID: requestID.String, Status: model.RequestStatus(status.String)}
	case model.TypeChat:
		n.Detail = model.ChatDetail{ChatID: chatID.String, SenderID: senderID.String, RequestID: requestID.String}
	default:
		return model.Notification{}, fmt.Errorf("%w: %q", ErrUnknownType, kind)
	}

	return n, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableRef(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

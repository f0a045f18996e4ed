package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUnreadChatExists     = errors.New("unread chat notification already exists")
)

// NotificationType tells which variant of Detail a notification carries.
type NotificationType string

const (
	TypeStatus NotificationType = "status"
	TypeChat   NotificationType = "chat"
)

// Detail is the type-specific part of an in-app notification.
//
// It is implemented only by StatusDetail and ChatDetail.
type Detail interface {
	Type() NotificationType
	// Data returns the routing fields sent to the client with a push.
	Data() map[string]string
}

// StatusDetail correlates a notification with a request status transition.
type StatusDetail struct {
	RequestID string
	Status    RequestStatus
}

func (StatusDetail) Type() NotificationType { return TypeStatus }

func (d StatusDetail) Data() map[string]string {
	return map[string]string{
		"type":      "request_status",
		"requestId": d.RequestID,
		"status":    string(d.Status),
	}
}

// ChatDetail correlates a notification with a chat thread and its sender.
type ChatDetail struct {
	ChatID    string
	SenderID  string
	RequestID string // optional
}

func (ChatDetail) Type() NotificationType { return TypeChat }

func (d ChatDetail) Data() map[string]string {
	data := map[string]string{
		"type":     string(TypeChat),
		"chatId":   d.ChatID,
		"senderId": d.SenderID,
	}
	if d.RequestID != "" {
		data["requestId"] = d.RequestID
	}

	return data
}

// Notification is an in-app notification owned by a single user.
type Notification struct {
	ID        uuid.UUID // assigned by the store
	UserID    string    // recipient
	EventID   string    // change event that produced it; empty disables replay detection
	Title     string
	Body      string
	Detail    Detail
	IsRead    bool
	CreatedAt time.Time // assigned by the store, bumped on coalescing
}

// Type returns the notification variant, or an empty type when Detail is unset.
func (n Notification) Type() NotificationType {
	if n.Detail == nil {
		return ""
	}
	return n.Detail.Type()
}

// NotificationFilter narrows a query over one user's notifications.
// Zero-valued fields do not filter.
type NotificationFilter struct {
	Type       NotificationType
	SenderID   string
	UnreadOnly bool
}

// NotificationPatch lists the fields to change on an existing notification.
// Nil fields are left untouched.
type NotificationPatch struct {
	Title  *string
	Body   *string
	IsRead *bool
	Touch  bool // reset created_at to the store's current time

	// UnreadOnly makes the update a no-op on a notification that is already
	// read; the store then reports ErrNotificationNotFound.
	UnreadOnly bool
}

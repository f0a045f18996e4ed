package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/request-notifier/internal/model"
	"github.com/aliskhannn/request-notifier/internal/reactor"
)

// RequestSnapshot is one side of a request update as posted to the webhook.
type RequestSnapshot struct {
	UserID        string `json:"userId" validate:"required"`
	Status        string `json:"status" validate:"required"`
	VolunteerID   string `json:"volunteerId"`
	VolunteerName string `json:"volunteerName"`
}

func (s RequestSnapshot) Model() model.Request {
	return model.Request{
		UserID:        s.UserID,
		Status:        model.RequestStatus(s.Status),
		VolunteerID:   s.VolunteerID,
		VolunteerName: s.VolunteerName,
	}
}

// RequestUpdatedRequest is the body of POST /api/events/requests/:requestId.
type RequestUpdatedRequest struct {
	Before RequestSnapshot `json:"before" validate:"-"` // may be sparse for legacy records
	After  RequestSnapshot `json:"after"`
}

// MessageCreatedRequest is the body of POST /api/events/chats/:chatId/messages.
type MessageCreatedRequest struct {
	MessageID  string `json:"messageId" validate:"required"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text" validate:"max=4096"`
	RequestID  string `json:"requestId"`
}

// ResultResponse reports what a reactor did with a posted event.
type ResultResponse struct {
	EventID        string `json:"event_id"`
	Outcome        string `json:"outcome"`
	Category       string `json:"category,omitempty"`
	Reason         string `json:"reason,omitempty"`
	PushID         string `json:"push_id,omitempty"`
	NotificationID string `json:"notification_id,omitempty"`
	Coalesced      bool   `json:"coalesced,omitempty"`
}

func NewResultResponse(eventID string, res reactor.Result) ResultResponse {
	out := ResultResponse{
		EventID:   eventID,
		Outcome:   string(res.Outcome),
		Category:  string(res.Category),
		Reason:    res.Reason,
		PushID:    res.PushID,
		Coalesced: res.Coalesced,
	}
	if res.NotificationID != uuid.Nil {
		out.NotificationID = res.NotificationID.String()
	}

	return out
}

// NotificationResponse is an in-app notification as listed by the API.
type NotificationResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"`
	IsRead    bool              `json:"is_read"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewNotificationResponse(n model.Notification) NotificationResponse {
	var data map[string]string
	if n.Detail != nil {
		data = n.Detail.Data()
	}

	return NotificationResponse{
		ID:        n.ID.String(),
		Type:      string(n.Type()),
		Title:     n.Title,
		Body:      n.Body,
		Data:      data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

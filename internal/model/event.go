package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrMissingEventType = errors.New("envelope has no event type")

// Event types published by the change feed.
const (
	EventRequestUpdated = "requests.updated.v1"
	EventMessageCreated = "messages.created.v1"
)

// Meta describes a change event independent of its payload.
type Meta struct {
	ID            string    `json:"id"`                       // unique event id
	Type          string    `json:"type"`                     // e.g. requests.updated.v1
	Time          time.Time `json:"time"`                     // when the change happened
	CorrelationID *string   `json:"correlation_id,omitempty"` // trace / request correlation
}

// Envelope is the wire format shared by every change source.
type Envelope struct {
	Meta Meta            `json:"meta"`
	Data json.RawMessage `json:"data"`
}

// Delivery is an envelope in flight from a source. Ack, when set, is called
// once the envelope has been handled; an envelope that is never acked is
// left to the source for redelivery.
type Delivery struct {
	Envelope Envelope
	Ack      func()
}

// RequestUpdated carries the before/after snapshots of an updated request.
type RequestUpdated struct {
	EventID   string  `json:"-"`
	RequestID string  `json:"requestId" validate:"required"`
	Before    Request `json:"before"`
	After     Request `json:"after"`
}

// MessageCreated carries a newly created chat message and its thread.
type MessageCreated struct {
	EventID   string  `json:"-"`
	ChatID    string  `json:"chatId" validate:"required"`
	MessageID string  `json:"messageId"`
	Message   Message `json:"message"`
}

// Failure describes a side effect that still failed after all retries.
type Failure struct {
	EventID   string    `json:"event_id,omitempty"`
	Reactor   string    `json:"reactor"`
	Operation string    `json:"operation"` // "push" or "store"
	UserID    string    `json:"user_id"`
	Subject   string    `json:"subject"` // request id or chat id
	Error     string    `json:"error"`
	FailedAt  time.Time `json:"failed_at"`
}

// ParseEnvelope decodes a raw change event. An envelope without a type
// cannot be routed and is rejected.
func ParseEnvelope(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to unmarshal envelope: %w", err)
	}
	if env.Meta.Type == "" {
		return Envelope{}, ErrMissingEventType
	}

	return env, nil
}

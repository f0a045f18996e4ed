package dispatch

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/request-notifier/internal/mocks/dispatch"
	"github.com/aliskhannn/request-notifier/internal/model"
	"github.com/aliskhannn/request-notifier/internal/reactor"
)

func setupDispatcher(t *testing.T) (*Dispatcher, *mocks.MockstatusReactor, *mocks.MockmessageReactor) {
	ctrl := gomock.NewController(t)
	status := mocks.NewMockstatusReactor(ctrl)
	message := mocks.NewMockmessageReactor(ctrl)

	return NewDispatcher(status, message, validator.New()), status, message
}

func envelope(t *testing.T, eventType string, data any) model.Envelope {
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	return model.Envelope{Meta: model.Meta{ID: "evt-1", Type: eventType}, Data: raw}
}

func TestDispatcher_RequestUpdated(t *testing.T) {
	d, status, _ := setupDispatcher(t)

	payload := map[string]any{
		"requestId": "req-1",
		"before":    map[string]any{"userId": "ben-1", "status": "created"},
		"after":     map[string]any{"userId": "ben-1", "status": "assigned", "volunteerId": "vol-1"},
	}

	status.EXPECT().Handle(gomock.Any(), model.RequestUpdated{
		EventID:   "evt-1",
		RequestID: "req-1",
		Before:    model.Request{UserID: "ben-1", Status: model.StatusCreated},
		After:     model.Request{UserID: "ben-1", Status: model.StatusAssigned, VolunteerID: "vol-1"},
	}).Return(reactor.Result{Outcome: reactor.OutcomeSent})

	err := d.HandleEnvelope(context.Background(), envelope(t, model.EventRequestUpdated, payload))
	assert.NoError(t, err)
}

func TestDispatcher_MessageCreated(t *testing.T) {
	d, _, message := setupDispatcher(t)

	payload := map[string]any{
		"chatId":    "chat-1",
		"messageId": "msg-1",
		"message":   map[string]any{"senderId": "s", "receiverId": "r", "text": "hi"},
	}

	message.EXPECT().Handle(gomock.Any(), model.MessageCreated{
		EventID:   "evt-1",
		ChatID:    "chat-1",
		MessageID: "msg-1",
		Message:   model.Message{SenderID: "s", ReceiverID: "r", Text: "hi"},
	}).Return(reactor.Result{Outcome: reactor.OutcomeSent})

	err := d.HandleEnvelope(context.Background(), envelope(t, model.EventMessageCreated, payload))
	assert.NoError(t, err)
}

func TestDispatcher_UnknownType(t *testing.T) {
	d, _, _ := setupDispatcher(t)

	err := d.HandleEnvelope(context.Background(), envelope(t, "users.deleted.v1", map[string]any{}))
	assert.ErrorIs(t, err, ErrUnknownEventType)
}

func TestDispatcher_InvalidPayload(t *testing.T) {
	d, _, _ := setupDispatcher(t)

	err := d.HandleEnvelope(context.Background(), model.Envelope{
		Meta: model.Meta{Type: model.EventMessageCreated},
		Data: json.RawMessage(`{"chatId": 42}`),
	})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	err = d.HandleEnvelope(context.Background(), envelope(t, model.EventRequestUpdated, map[string]any{
		"after": map[string]any{"status": "assigned"},
	}))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

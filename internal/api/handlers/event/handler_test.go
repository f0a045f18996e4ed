package event

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/request-notifier/internal/api/dto"
	"github.com/aliskhannn/request-notifier/internal/dispatch"
	mocks "github.com/aliskhannn/request-notifier/internal/mocks/api/handlers/event"
	"github.com/aliskhannn/request-notifier/internal/model"
	"github.com/aliskhannn/request-notifier/internal/reactor"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockeventDispatcher) {
	ctrl := gomock.NewController(t)
	mockDispatcher := mocks.NewMockeventDispatcher(ctrl)
	return NewHandler(mockDispatcher, validator.New()), mockDispatcher
}

func newContext(method, path string, body any, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, &buf)
	c.Params = params

	return c, w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) dto.ResultResponse {
	var body struct {
		Result dto.ResultResponse `json:"result"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Result
}

func TestHandler_RequestUpdated_Success(t *testing.T) {
	handler, mockDispatcher := setupHandler(t)

	req := dto.RequestUpdatedRequest{
		Before: dto.RequestSnapshot{UserID: "ben-1", Status: "created"},
		After:  dto.RequestSnapshot{UserID: "ben-1", Status: "assigned", VolunteerID: "vol-1"},
	}
	c, w := newContext(http.MethodPost, "/api/events/requests/req-1", req, gin.Params{{Key: "requestId", Value: "req-1"}})
	c.Request.Header.Set(EventIDHeader, "evt-42")

	notifID := uuid.New()
	mockDispatcher.EXPECT().
		HandleRequestUpdated(gomock.Any(), model.RequestUpdated{
			EventID:   "evt-42",
			RequestID: "req-1",
			Before:    model.Request{UserID: "ben-1", Status: model.StatusCreated},
			After:     model.Request{UserID: "ben-1", Status: model.StatusAssigned, VolunteerID: "vol-1"},
		}).
		Return(reactor.Result{Outcome: reactor.OutcomeSent, PushID: "msg-1", NotificationID: notifID})

	handler.RequestUpdated(c)

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeResult(t, w)
	assert.Equal(t, "evt-42", res.EventID)
	assert.Equal(t, "sent", res.Outcome)
	assert.Equal(t, notifID.String(), res.NotificationID)
}

func TestHandler_RequestUpdated_InvalidPayload(t *testing.T) {
	handler, _ := setupHandler(t)

	tests := []struct {
		name string
		body any
	}{
		{"malformed json", "{not json"},
		{"missing after status", dto.RequestUpdatedRequest{After: dto.RequestSnapshot{UserID: "ben-1"}}},
		{"missing after user", dto.RequestUpdatedRequest{After: dto.RequestSnapshot{Status: "assigned"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodPost, "/api/events/requests/req-1", tt.body, gin.Params{{Key: "requestId", Value: "req-1"}})

			handler.RequestUpdated(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_MessageCreated_Success(t *testing.T) {
	handler, mockDispatcher := setupHandler(t)

	req := dto.MessageCreatedRequest{MessageID: "m-1", SenderID: "s", ReceiverID: "r", Text: "hi"}
	c, w := newContext(http.MethodPost, "/api/events/chats/chat-1/messages", req, gin.Params{{Key: "chatId", Value: "chat-1"}})

	mockDispatcher.EXPECT().
		HandleMessageCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev model.MessageCreated) reactor.Result {
			assert.Equal(t, "chat-1", ev.ChatID)
			assert.Equal(t, "m-1", ev.MessageID)
			assert.Equal(t, model.Message{SenderID: "s", ReceiverID: "r", Text: "hi"}, ev.Message)
			assert.NotEmpty(t, ev.EventID)
			return reactor.Result{Outcome: reactor.OutcomeSent, Coalesced: true}
		})

	handler.MessageCreated(c)

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeResult(t, w)
	assert.True(t, res.Coalesced)
}

func TestHandler_MessageCreated_MissingMessageID(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/events/chats/chat-1/messages",
		dto.MessageCreatedRequest{SenderID: "s", ReceiverID: "r"}, gin.Params{{Key: "chatId", Value: "chat-1"}})

	handler.MessageCreated(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Envelope(t *testing.T) {
	handler, mockDispatcher := setupHandler(t)

	body := `{"meta": {"id": "evt-1", "type": "messages.created.v1"}, "data": {"chatId": "c"}}`
	c, w := newContext(http.MethodPost, "/api/events", body, nil)

	mockDispatcher.EXPECT().HandleEnvelope(gomock.Any(), gomock.Any()).Return(nil)

	handler.Envelope(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestHandler_Envelope_Rejected(t *testing.T) {
	handler, mockDispatcher := setupHandler(t)

	body := `{"meta": {"id": "evt-1", "type": "users.deleted.v1"}, "data": {}}`
	c, w := newContext(http.MethodPost, "/api/events", body, nil)

	mockDispatcher.EXPECT().HandleEnvelope(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: %q", dispatch.ErrUnknownEventType, "users.deleted.v1"))

	handler.Envelope(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

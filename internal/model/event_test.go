package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	env, err := ParseEnvelope([]byte(`{
		"meta": {"id": "evt-1", "type": "messages.created.v1", "time": "2024-05-01T10:00:00Z", "correlation_id": "c-1"},
		"data": {"chatId": "chat-1"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "evt-1", env.Meta.ID)
	assert.Equal(t, EventMessageCreated, env.Meta.Type)
	require.NotNil(t, env.Meta.CorrelationID)
	assert.Equal(t, "c-1", *env.Meta.CorrelationID)
	assert.JSONEq(t, `{"chatId": "chat-1"}`, string(env.Data))
}

func TestParseEnvelope_Rejects(t *testing.T) {
	_, err := ParseEnvelope([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseEnvelope([]byte(`{"meta": {"id": "evt-1"}, "data": {}}`))
	assert.ErrorIs(t, err, ErrMissingEventType)
}

func TestDetailData(t *testing.T) {
	assert.Equal(t, map[string]string{
		"type": "chat", "chatId": "c", "senderId": "s",
	}, ChatDetail{ChatID: "c", SenderID: "s"}.Data())

	assert.Equal(t, map[string]string{
		"type": "request_status", "requestId": "r", "status": "arriving",
	}, StatusDetail{RequestID: "r", Status: StatusArriving}.Data())

	assert.Equal(t, NotificationType(""), Notification{}.Type())
}

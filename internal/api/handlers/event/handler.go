package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/request-notifier/internal/api/dto"
	"github.com/aliskhannn/request-notifier/internal/api/respond"
	"github.com/aliskhannn/request-notifier/internal/dispatch"
	"github.com/aliskhannn/request-notifier/internal/model"
	"github.com/aliskhannn/request-notifier/internal/reactor"
)

// EventIDHeader lets the caller supply an idempotency / correlation id.
const EventIDHeader = "X-Event-ID"

// eventDispatcher routes change events to the reactors.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks
type eventDispatcher interface {
	HandleEnvelope(ctx context.Context, env model.Envelope) error
	HandleRequestUpdated(ctx context.Context, ev model.RequestUpdated) reactor.Result
	HandleMessageCreated(ctx context.Context, ev model.MessageCreated) reactor.Result
}

// Handler is the webhook change source.
//
// The upstream store posts change events here; each is handled
// synchronously and the reactor result is returned to the caller.
type Handler struct {
	dispatcher eventDispatcher
	validator  *validator.Validate
}

func NewHandler(d eventDispatcher, v *validator.Validate) *Handler {
	return &Handler{dispatcher: d, validator: v}
}

// Envelope handles POST /api/events with a full change envelope.
func (h *Handler) Envelope(c *ginext.Context) {
	var env model.Envelope

	if err := json.NewDecoder(c.Request.Body).Decode(&env); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode envelope")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if env.Meta.ID == "" {
		env.Meta.ID = eventID(c)
	}

	err := h.dispatcher.HandleEnvelope(c.Request.Context(), env)
	if err != nil {
		if errors.Is(err, dispatch.ErrUnknownEventType) || errors.Is(err, dispatch.ErrInvalidPayload) {
			zlog.Logger.Warn().Err(err).Str("event_id", env.Meta.ID).Msg("rejected envelope")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("event_id", env.Meta.ID).Msg("failed to handle envelope")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Accepted(c.Writer, env.Meta.ID)
}

// RequestUpdated handles POST /api/events/requests/:requestId.
func (h *Handler) RequestUpdated(c *ginext.Context) {
	requestID := c.Param("requestId")
	if requestID == "" {
		zlog.Logger.Warn().Msg("missing request id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing request id"))
		return
	}

	var req dto.RequestUpdatedRequest
	if !h.bind(c, &req) {
		return
	}

	ev := model.RequestUpdated{
		EventID:   eventID(c),
		RequestID: requestID,
		Before:    req.Before.Model(),
		After:     req.After.Model(),
	}

	res := h.dispatcher.HandleRequestUpdated(c.Request.Context(), ev)
	respond.OK(c.Writer, dto.NewResultResponse(ev.EventID, res))
}

// MessageCreated handles POST /api/events/chats/:chatId/messages.
func (h *Handler) MessageCreated(c *ginext.Context) {
	chatID := c.Param("chatId")
	if chatID == "" {
		zlog.Logger.Warn().Msg("missing chat id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing chat id"))
		return
	}

	var req dto.MessageCreatedRequest
	if !h.bind(c, &req) {
		return
	}

	ev := model.MessageCreated{
		EventID:   eventID(c),
		ChatID:    chatID,
		MessageID: req.MessageID,
		Message: model.Message{
			SenderID:   req.SenderID,
			ReceiverID: req.ReceiverID,
			Text:       req.Text,
			RequestID:  req.RequestID,
		},
	}

	res := h.dispatcher.HandleMessageCreated(c.Request.Context(), ev)
	respond.OK(c.Writer, dto.NewResultResponse(ev.EventID, res))
}

// bind decodes and validates the JSON body, writing a 400 on failure.
func (h *Handler) bind(c *ginext.Context, v any) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(v); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func eventID(c *ginext.Context) string {
	if id := c.GetHeader(EventIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

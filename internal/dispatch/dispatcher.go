package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/request-notifier/internal/model"
	"github.com/aliskhannn/request-notifier/internal/reactor"
)

var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrInvalidPayload   = errors.New("invalid event payload")
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatch/mock.go -package=mocks
type statusReactor interface {
	Handle(ctx context.Context, ev model.RequestUpdated) reactor.Result
}

type messageReactor interface {
	Handle(ctx context.Context, ev model.MessageCreated) reactor.Result
}

// Dispatcher decodes change envelopes and routes them to the matching reactor.
type Dispatcher struct {
	status    statusReactor
	message   messageReactor
	validator *validator.Validate
}

func NewDispatcher(status statusReactor, message messageReactor, v *validator.Validate) *Dispatcher {
	return &Dispatcher{status: status, message: message, validator: v}
}

// HandleEnvelope routes one envelope by its meta type.
//
// An error means the envelope itself is unusable and should be dropped;
// delivery problems are never returned here.
func (d *Dispatcher) HandleEnvelope(ctx context.Context, env model.Envelope) error {
	switch env.Meta.Type {
	case model.EventRequestUpdated:
		var ev model.RequestUpdated
		if err := d.decode(env.Data, &ev); err != nil {
			return err
		}
		ev.EventID = env.Meta.ID
		d.HandleRequestUpdated(ctx, ev)

	case model.EventMessageCreated:
		var ev model.MessageCreated
		if err := d.decode(env.Data, &ev); err != nil {
			return err
		}
		ev.EventID = env.Meta.ID
		d.HandleMessageCreated(ctx, ev)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, env.Meta.Type)
	}

	return nil
}

func (d *Dispatcher) HandleRequestUpdated(ctx context.Context, ev model.RequestUpdated) reactor.Result {
	return d.status.Handle(ctx, ev)
}

func (d *Dispatcher) HandleMessageCreated(ctx context.Context, ev model.MessageCreated) reactor.Result {
	return d.message.Handle(ctx, ev)
}

func (d *Dispatcher) decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode event payload")
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := d.validator.Struct(v); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate event payload")
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	return nil
}

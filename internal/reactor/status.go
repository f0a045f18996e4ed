package reactor

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aliskhannn/request-notifier/internal/model"
)

const statusReactorName = "request_status"

// StatusReactor notifies a beneficiary when the status of their request changes.
type StatusReactor struct {
	pipe  *Pipeline
	store notificationStore
}

// NewStatusReactor creates a StatusReactor.
func NewStatusReactor(pipe *Pipeline, store notificationStore) *StatusReactor {
	return &StatusReactor{pipe: pipe, store: store}
}

// Handle reacts to one request update. It never fails the triggering event:
// every problem is reported through the returned Result.
func (r *StatusReactor) Handle(ctx context.Context, ev model.RequestUpdated) Result {
	ctx, span := tracer.Start(ctx, "StatusReactor.Handle", trace.WithAttributes(
		attribute.String("request.id", ev.RequestID),
		attribute.String("request.status", string(ev.After.Status)),
	))
	defer span.End()

	inv := invocation{
		reactor: statusReactorName,
		eventID: ev.EventID,
		subject: ev.RequestID,
		userID:  ev.After.UserID,
		started: time.Now(),
	}

	// Updates of unrelated fields also fire change events.
	if ev.After.Status == ev.Before.Status {
		return r.pipe.finish(ctx, inv, skipped("status unchanged"))
	}

	token, res, ok := r.pipe.resolveToken(ctx, inv)
	if !ok {
		return r.pipe.finish(ctx, inv, res)
	}

	var (
		volunteer string
		fellBack  bool
	)
	if ev.After.Status == model.StatusAssigned {
		volunteer, fellBack = r.pipe.displayName(ctx, ev.After.VolunteerID, ev.After.VolunteerName, volunteerFallback)
	}
	content := StatusContent(ev.After.Status, volunteer)
	detail := model.StatusDetail{RequestID: ev.RequestID, Status: ev.After.Status}

	res.PushID, res.PushErr = r.pipe.send(ctx, inv, model.Push{
		Token: token,
		Title: content.Title,
		Body:  content.Body,
		Data:  detail.Data(),
	})

	n := model.Notification{
		UserID:  ev.After.UserID,
		EventID: ev.EventID,
		Title:   content.Title,
		Body:    content.Body,
		Detail:  detail,
	}
	res.StoreErr = r.pipe.persist(ctx, inv, func() error {
		id, err := r.store.Add(ctx, n)
		if err != nil {
			return err
		}
		res.NotificationID = id
		return nil
	})

	return r.pipe.finish(ctx, inv, settle(res, fellBack))
}

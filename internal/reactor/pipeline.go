package reactor

import (
	"context"
	"errors"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aliskhannn/request-notifier/internal/model"
)

var tracer = otel.Tracer("github.com/aliskhannn/request-notifier/internal/reactor")

// Pipeline holds the delivery steps shared by both reactors:
// resolve token, send push, persist record, report outcome.
type Pipeline struct {
	tokens   tokenRegistry
	users    userDirectory
	push     pushTransport
	failures failureSink
	observer observer
	strategy retry.Strategy
}

// NewPipeline creates a Pipeline. failures and obs may be nil.
func NewPipeline(
	tokens tokenRegistry,
	users userDirectory,
	push pushTransport,
	failures failureSink,
	obs observer,
	strategy retry.Strategy,
) *Pipeline {
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}
	if strategy.Backoff <= 0 {
		strategy.Backoff = 1
	}

	return &Pipeline{
		tokens:   tokens,
		users:    users,
		push:     push,
		failures: failures,
		observer: obs,
		strategy: strategy,
	}
}

// invocation identifies one reactor run in logs and failure reports.
type invocation struct {
	reactor string
	eventID string
	subject string
	userID  string
	started time.Time
}

// resolveToken looks up the recipient's push token. ok is false when the
// pipeline must stop; res then holds the terminal result.
func (p *Pipeline) resolveToken(ctx context.Context, inv invocation) (token string, res Result, ok bool) {
	err := p.do(ctx, "token", func() error {
		var err error
		token, err = p.tokens.Token(ctx, inv.userID)
		return err
	})
	if err != nil {
		p.report(ctx, inv, "token", err)
		return "", failed("token lookup failed", err), false
	}

	if token == "" {
		return "", skipped("no delivery token"), false
	}

	return token, Result{}, true
}

// displayName resolves a user's name, falling back to the first non-empty
// fallback. fellBack reports whether the directory lookup missed.
func (p *Pipeline) displayName(ctx context.Context, userID string, fallbacks ...string) (name string, fellBack bool) {
	if userID != "" {
		name, err := p.users.DisplayName(ctx, userID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("display name lookup failed, using fallback")
		}
		if err == nil && name != "" {
			return name, false
		}
	}

	for _, f := range fallbacks {
		if f != "" {
			return f, true
		}
	}

	return "", true
}

// send delivers a push. Permanent transport errors are not retried.
func (p *Pipeline) send(ctx context.Context, inv invocation, push model.Push) (string, error) {
	if push.Data == nil {
		push.Data = make(map[string]string, 1)
	}
	push.Data[clickActionField] = clickAction

	var id string
	err := p.do(ctx, "push", func() error {
		var err error
		id, err = p.push.Send(ctx, push)
		return err
	})
	if err != nil {
		p.report(ctx, inv, "push", err)
		return "", err
	}

	return id, nil
}

// persist runs a store write with retries.
func (p *Pipeline) persist(ctx context.Context, inv invocation, write func() error) error {
	if err := p.do(ctx, "store", write); err != nil {
		p.report(ctx, inv, "store", err)
		return err
	}

	return nil
}

// do runs fn under the retry strategy. It stops early on context
// cancellation and on errors that declare themselves permanent.
func (p *Pipeline) do(ctx context.Context, op string, fn func() error) error {
	var last, stop error

	err := retry.Do(func() error {
		if err := ctx.Err(); err != nil {
			stop = err
			return nil
		}

		last = fn()
		if last != nil && isPermanent(last) {
			stop = last
			return nil
		}
		if last != nil {
			zlog.Logger.Warn().Err(last).Str("operation", op).Msg("attempt failed")
		}

		return last
	}, p.strategy)

	switch {
	case stop != nil:
		return stop
	case err != nil && last != nil:
		return last
	default:
		return err
	}
}

func isPermanent(err error) bool {
	var p interface{ IsPermanent() bool }
	return errors.As(err, &p) && p.IsPermanent()
}

func (p *Pipeline) report(ctx context.Context, inv invocation, op string, cause error) {
	if p.failures == nil {
		return
	}

	f := model.Failure{
		EventID:   inv.eventID,
		Reactor:   inv.reactor,
		Operation: op,
		UserID:    inv.userID,
		Subject:   inv.subject,
		Error:     cause.Error(),
		FailedAt:  time.Now().UTC(),
	}

	if err := p.failures.Report(context.WithoutCancel(ctx), f); err != nil {
		zlog.Logger.Error().Err(err).Str("operation", op).Str("subject", inv.subject).Msg("failed to report delivery failure")
	}
}

// finish logs the single terminal line of an invocation and records metrics.
func (p *Pipeline) finish(ctx context.Context, inv invocation, res Result) Result {
	elapsed := time.Since(inv.started)

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("outcome", string(res.Outcome)),
		attribute.String("category", string(res.Category)),
	)

	ev := zlog.Logger.Info()
	if res.Outcome == OutcomeFailed || res.Outcome == OutcomePartial {
		ev = zlog.Logger.Error()
		span.SetStatus(codes.Error, res.Reason)
	}

	ev = ev.Str("reactor", inv.reactor).
		Str("event_id", inv.eventID).
		Str("subject", inv.subject).
		Str("user_id", inv.userID).
		Str("outcome", string(res.Outcome)).
		Str("category", string(res.Category)).
		Str("reason", res.Reason).
		Dur("elapsed", elapsed)
	if res.PushID != "" {
		ev = ev.Str("push_id", res.PushID)
	}
	if res.Coalesced {
		ev = ev.Bool("coalesced", true)
	}
	if res.PushErr != nil {
		ev = ev.AnErr("push_error", res.PushErr)
	}
	if res.StoreErr != nil {
		ev = ev.AnErr("store_error", res.StoreErr)
	}
	ev.Msg("change event handled")

	if p.observer != nil {
		p.observer.Observe(inv.reactor, string(res.Outcome), string(res.Category), elapsed)
	}

	return res
}

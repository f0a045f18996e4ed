package reactor

import (
	"github.com/google/uuid"
)

// Outcome is the terminal state of one reactor invocation.
type Outcome string

const (
	OutcomeSkipped Outcome = "skipped" // nothing to deliver
	OutcomeSent    Outcome = "sent"    // push sent and record persisted
	OutcomePartial Outcome = "partial" // exactly one side effect failed
	OutcomeFailed  Outcome = "failed"  // nothing could be delivered
)

// Category groups results by how they should be handled operationally.
type Category string

const (
	CategoryNone     Category = ""
	CategoryNoop     Category = "noop"     // benign skip, no alerting
	CategoryFallback Category = "fallback" // a lookup missed and a default label was used
	CategoryDelivery Category = "delivery" // push or store failed after retries
)

// Result reports what a reactor did with one change event.
//
// The triggering event is always considered handled; failures are carried
// here instead of being returned as errors.
type Result struct {
	Outcome        Outcome
	Category       Category
	Reason         string
	PushID         string
	NotificationID uuid.UUID
	Coalesced      bool // an existing unread chat notification was updated
	PushErr        error
	StoreErr       error
}

func skipped(reason string) Result {
	return Result{Outcome: OutcomeSkipped, Category: CategoryNoop, Reason: reason}
}

func failed(reason string, err error) Result {
	return Result{Outcome: OutcomeFailed, Category: CategoryDelivery, Reason: reason, PushErr: err}
}

// settle derives the outcome and category from the two side effects.
func settle(res Result, fellBack bool) Result {
	switch {
	case res.PushErr == nil && res.StoreErr == nil:
		res.Outcome = OutcomeSent
		if fellBack {
			res.Category = CategoryFallback
		}
	case res.PushErr != nil && res.StoreErr != nil:
		res.Outcome = OutcomeFailed
		res.Category = CategoryDelivery
		res.Reason = "push and store failed"
	case res.PushErr != nil:
		res.Outcome = OutcomePartial
		res.Category = CategoryDelivery
		res.Reason = "push failed"
	default:
		res.Outcome = OutcomePartial
		res.Category = CategoryDelivery
		res.Reason = "store failed"
	}

	return res
}

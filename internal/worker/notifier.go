package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/request-notifier/internal/model"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks

// Source delivers decoded change events into out until ctx is cancelled.
type Source interface {
	Consume(ctx context.Context, out chan<- model.Delivery, strategy retry.Strategy) error
}

type envelopeHandler interface {
	HandleEnvelope(ctx context.Context, env model.Envelope) error
}

// Notifier fans change events from every source into a fixed pool of workers.
type Notifier struct {
	sources []Source
	handler envelopeHandler
}

func NewNotifier(h envelopeHandler, sources ...Source) *Notifier {
	return &Notifier{
		sources: sources,
		handler: h,
	}
}

// Run blocks until ctx is cancelled and every worker has returned.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan model.Delivery, workerCount*10)

	for _, src := range n.sources {
		go func(src Source) {
			if err := src.Consume(ctx, msgChan, strategy); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to consume events")
			}
		}(src)
	}

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Debug().Int("worker", id).Msg("worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Debug().Int("worker", id).Msg("worker shutting down")
					return
				case d, ok := <-msgChan:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}

					n.handle(ctx, d)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("notifier stopped")
}

// handle runs one delivery and acks it. Events rejected by the handler are
// acked too, since redelivering them cannot succeed. An event interrupted
// by shutdown stays unacked so the source delivers it again.
func (n *Notifier) handle(ctx context.Context, d model.Delivery) {
	env := d.Envelope

	if err := n.handler.HandleEnvelope(ctx, env); err != nil {
		zlog.Logger.Warn().Err(err).
			Str("event_id", env.Meta.ID).
			Str("event_type", env.Meta.Type).
			Msg("dropping event")
	}

	if ctx.Err() != nil {
		zlog.Logger.Warn().Str("event_id", env.Meta.ID).Msg("event interrupted by shutdown, leaving it unacked")
		return
	}

	if d.Ack != nil {
		d.Ack()
	}
}

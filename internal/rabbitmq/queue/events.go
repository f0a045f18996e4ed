package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/request-notifier/internal/config"
	"github.com/aliskhannn/request-notifier/internal/model"
)

// EventQueue consumes change envelopes from RabbitMQ and publishes
// persistently failed side effects to the failure queue.
type EventQueue struct {
	publisher  *rabbitmq.Publisher
	consumer   *rabbitmq.Consumer
	failureKey string
	strategy   retry.Strategy
}

// NewEventQueue declares the exchange, the event queue and the failure queue.
func NewEventQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ, strategy retry.Strategy) (*EventQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	failureQ, err := qm.DeclareQueue(cfg.FailureQueue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare failure queue: %w", err)
	}

	mainQ, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare event queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the event queue: %w", err)
	}

	if err := ch.QueueBind(failureQ.Name, cfg.FailureRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the failure queue: %w", err)
	}

	return &EventQueue{
		publisher:  rabbitmq.NewPublisher(ch, exchange.Name()),
		consumer:   rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name)),
		failureKey: cfg.FailureRoutingKey,
		strategy:   strategy,
	}, nil
}

// Consume forwards decoded envelopes to out until the consumer stops.
// Undecodable messages are logged and dropped.
//
// The wbf consumer acknowledges a message before handing it over, so
// deliveries from this source carry no Ack and are not redelivered.
func (q *EventQueue) Consume(ctx context.Context, out chan<- model.Delivery, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.consumer.ConsumeWithRetry(msgChan, strategy)
}

// Report publishes a failure record to the failure queue.
func (q *EventQueue) Report(_ context.Context, failure model.Failure) error {
	body, err := json.Marshal(failure)
	if err != nil {
		return fmt.Errorf("failed to marshal failure: %w", err)
	}

	return q.publisher.PublishWithRetry(body, q.failureKey, "application/json", q.strategy)
}

// forward decodes bodies from in and sends them to out. After ctx is
// cancelled it keeps reading in until it is closed, discarding bodies, so
// the wbf consumer never blocks on a send nobody receives.
func forward(ctx context.Context, in <-chan []byte, out chan<- model.Delivery) {
	for {
		select {
		case <-ctx.Done():
			discard(in)
			return
		case body, ok := <-in:
			if !ok {
				return
			}

			env, err := model.ParseEnvelope(body)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to decode queue message")
				continue
			}

			select {
			case out <- model.Delivery{Envelope: env}:
			case <-ctx.Done():
				zlog.Logger.Warn().Str("event_id", env.Meta.ID).Msg("dropping queue message on shutdown")
				discard(in)
				return
			}
		}
	}
}

func discard(in <-chan []byte) {
	for range in {
		zlog.Logger.Warn().Msg("dropping queue message on shutdown")
	}
}

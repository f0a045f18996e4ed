package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/request-notifier/internal/model"
)

const commitTimeout = 5 * time.Second

type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads change envelopes from a Kafka topic as part of a consumer group.
type Consumer struct {
	reader reader

	mu      sync.Mutex
	pending map[int][]*inflight // per partition, in fetch order
}

type inflight struct {
	msg  kafka.Message
	done bool
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return newConsumer(kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10 << 20,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: time.Second,
	}))
}

func newConsumer(r reader) *Consumer {
	return &Consumer{
		reader:  r,
		pending: make(map[int][]*inflight),
	}
}

// Consume forwards envelopes to out until ctx is cancelled.
//
// A message is committed only after its delivery is acked and every earlier
// message of the same partition has been acked too, so events still queued
// or in progress at shutdown are fetched again by the next member of the
// group. Undecodable messages are acked right away.
func (c *Consumer) Consume(ctx context.Context, out chan<- model.Delivery, strategy retry.Strategy) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			zlog.Logger.Error().Err(err).Msg("failed to fetch kafka message")
			if !sleep(ctx, strategy.Delay) {
				return nil
			}
			continue
		}

		f := c.track(m)
		ack := func() { c.ack(f) }

		env, err := model.ParseEnvelope(m.Value)
		if err != nil {
			zlog.Logger.Error().Err(err).
				Str("topic", m.Topic).
				Int64("offset", m.Offset).
				Msg("failed to decode kafka message")
			ack()
			continue
		}

		select {
		case out <- model.Delivery{Envelope: env, Ack: ack}:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

func (c *Consumer) track(m kafka.Message) *inflight {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := &inflight{msg: m}
	c.pending[m.Partition] = append(c.pending[m.Partition], f)

	return f
}

// ack marks f handled and commits the longest handled prefix of its partition.
func (c *Consumer) ack(f *inflight) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f.done = true

	queue := c.pending[f.msg.Partition]
	var last *inflight
	for len(queue) > 0 && queue[0].done {
		last = queue[0]
		queue = queue[1:]
	}
	c.pending[f.msg.Partition] = queue

	if last == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()

	if err := c.reader.CommitMessages(ctx, last.msg); err != nil {
		zlog.Logger.Error().Err(err).
			Int("partition", last.msg.Partition).
			Int64("offset", last.msg.Offset).
			Msg("failed to commit kafka message")
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		d = time.Second
	}

	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

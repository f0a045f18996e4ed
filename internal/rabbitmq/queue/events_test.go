package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/request-notifier/internal/model"
)

func TestForward(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan []byte, 3)
	out := make(chan model.Delivery, 3)

	in <- []byte(`{"meta": {"id": "1", "type": "requests.updated.v1"}, "data": {}}`)
	in <- []byte(`garbage`)
	in <- []byte(`{"meta": {"id": "2", "type": "messages.created.v1"}, "data": {}}`)
	close(in)

	forward(ctx, in, out)
	close(out)

	var ids []string
	for d := range out {
		assert.Nil(t, d.Ack)
		ids = append(ids, d.Envelope.Meta.ID)
	}

	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestForward_KeepsConsumerUnblockedAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan []byte)
	out := make(chan model.Delivery)
	done := make(chan struct{})

	go func() {
		forward(ctx, in, out)
		close(done)
	}()

	cancel()

	for i := 0; i < 3; i++ {
		select {
		case in <- []byte(`{"meta": {"id": "1", "type": "requests.updated.v1"}, "data": {}}`):
		case <-time.After(time.Second):
			t.Fatal("send to forward blocked after cancel")
		}
	}

	close(in)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forward did not stop")
	}
}

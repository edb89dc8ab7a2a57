package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type chanMailer struct {
	sent chan string
}

func (m *chanMailer) Send(_ context.Context, to, _, _ string) error {
	m.sent <- to
	return nil
}

func TestDispatcher_DeliversNotification(t *testing.T) {
	mailer := &chanMailer{sent: make(chan string, 1)}
	d := NewDispatcher(2, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue("user@x.com", "subject", "body")

	select {
	case to := <-mailer.sent:
		if to != "user@x.com" {
			t.Fatalf("unexpected recipient: %s", to)
		}
	case <-time.After(time.Second):
		t.Fatalf("notification was not delivered")
	}
}

// Enqueue must never block the caller, even with no workers draining and the
// shard buffer already full.
func TestDispatcher_EnqueueDropsWhenFull(t *testing.T) {
	d := NewDispatcher(1, &chanMailer{sent: make(chan string)}, zerolog.Nop())
	// workers never started

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+5; i++ {
			d.Enqueue("user@x.com", "subject", "body")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Enqueue blocked on a full queue")
	}

	if got := len(d.workers[0]); got != channelBuffer {
		t.Fatalf("expected buffer capped at %d, got %d", channelBuffer, got)
	}
}

func TestDispatcher_ShardIsStablePerRecipient(t *testing.T) {
	d := NewDispatcher(4, &chanMailer{sent: make(chan string, 16)}, zerolog.Nop())

	first := d.shardIndex("user@x.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("user@x.com") != first {
			t.Fatalf("shard index must be deterministic per recipient")
		}
	}
}

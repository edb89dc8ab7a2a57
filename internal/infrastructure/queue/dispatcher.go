package queue

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/orgdesk/admin-api/internal/api/metrics"
	"github.com/orgdesk/admin-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// notification is one queued best-effort mail.
type notification struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher delivers courtesy notifications asynchronously through a fixed
// set of workers, sharded by recipient address so mails to one user keep
// their order. Delivery failures are logged, never surfaced — by the time a
// notification is queued the triggering operation has already succeeded.
type Dispatcher struct {
	workers []chan notification
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan notification, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue queues a notification for the worker owning the recipient's shard.
// Never blocks: when the shard buffer is full the notification is dropped and
// logged, so a stalled worker cannot stall the caller.
func (d *Dispatcher) Enqueue(to, subject, body string) {
	idx := d.shardIndex(to)
	select {
	case d.workers[idx] <- notification{To: to, Subject: subject, Body: body}:
		metrics.NotifyQueueDepth.WithLabelValues(fmt.Sprintf("%d", idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().Str("to", to).Int("worker_id", idx).Msg("notification queue full, dropping")
	}
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan notification) {
	workerID := fmt.Sprintf("%d", id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotifyQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.mailer.Send(ctx, n.To, n.Subject, n.Body); err != nil {
				d.log.Warn().Err(err).
					Str("to", n.To).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
		}
	}
}

package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/spacehub/booking-portal/internal/api/metrics"
	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	hookTimeout    = 15 * time.Second
)

// Dispatcher runs post-confirmation hooks on a fixed set of workers. Jobs are
// sharded by owner so one user's confirmations are followed up in order.
type Dispatcher struct {
	workers []chan domain.Confirmation
	hooks   []ports.ConfirmationHook
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. Hooks run in the given order.
func NewDispatcher(numWorkers int, log zerolog.Logger, hooks ...ports.ConfirmationHook) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Confirmation, numWorkers),
		hooks:   hooks,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Confirmation, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a confirmation to the worker responsible for its owner.
// It never blocks: when that worker's queue is full the job is dropped.
func (d *Dispatcher) Enqueue(c domain.Confirmation) {
	idx := d.shardIndex(string(c.Booking.Owner))
	select {
	case d.workers[idx] <- c:
		metrics.HookQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.HookJobsDroppedTotal.Inc()
		d.log.Warn().
			Str("attempt_id", c.AttemptID).
			Str("booking_id", c.Booking.ID).
			Int("worker_id", idx).
			Msg("hook queue full, dropping confirmation follow-up")
	}
}

// shardIndex maps an owner deterministically to a worker index.
func (d *Dispatcher) shardIndex(owner string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(owner))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Confirmation) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-ch:
			if !ok {
				return
			}
			metrics.HookQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.runHooks(ctx, id, c)
		}
	}
}

// runHooks runs every hook for c. A failing hook is logged and the next one
// still runs.
func (d *Dispatcher) runHooks(ctx context.Context, workerID int, c domain.Confirmation) {
	for _, hook := range d.hooks {
		hctx, cancel := context.WithTimeout(ctx, hookTimeout)
		err := hook.Run(hctx, c)
		cancel()
		if err != nil {
			metrics.HookFailuresTotal.WithLabelValues(hook.Name()).Inc()
			d.log.Warn().Err(err).
				Str("hook", hook.Name()).
				Str("attempt_id", c.AttemptID).
				Str("booking_id", c.Booking.ID).
				Int("worker_id", workerID).
				Msg("confirmation hook failed")
		}
	}
}

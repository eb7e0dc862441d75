package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/glowdesk/salon-api/internal/api/metrics"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes customer denormalization touches to a fixed set of
// workers using consistent hashing on the customer ID, guaranteeing
// per-customer ordering. Touches are best-effort: a failed job is logged
// and dropped, never retried, and never fails the originating request.
type Dispatcher struct {
	workers []chan ports.CustomerTouch
	toucher ports.CustomerToucher
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, toucher ports.CustomerToucher, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.CustomerTouch, numWorkers),
		toucher: toucher,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.CustomerTouch, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a touch to the worker responsible for its customer.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(touch ports.CustomerTouch) {
	d.workers[d.shardIndex(touch.CustomerID)] <- touch
}

// shardIndex maps a customer ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(customerID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(customerID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.CustomerTouch) {
	for {
		select {
		case <-ctx.Done():
			return
		case touch, ok := <-ch:
			if !ok {
				return
			}
			if err := d.toucher.Apply(ctx, touch); err != nil {
				metrics.TouchJobsTotal.WithLabelValues(string(touch.Kind), "failure").Inc()
				d.log.Error().Err(err).
					Str("customer_id", touch.CustomerID).
					Str("kind", string(touch.Kind)).
					Int("worker_id", id).
					Msg("customer touch failed")
				continue
			}
			metrics.TouchJobsTotal.WithLabelValues(string(touch.Kind), "success").Inc()
		}
	}
}

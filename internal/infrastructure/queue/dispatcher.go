package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/devconnect/profile-api/internal/api/metrics"
	"github.com/devconnect/profile-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes activity entries to a fixed set of workers using
// consistent hashing on the user id, guaranteeing per-user ordering of the
// activity log.
type Dispatcher struct {
	workers []chan ports.ActivityEntry
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an entry to the worker responsible for its user id. When the
// worker's buffer is full the entry is dropped rather than blocking the
// request path; the activity log is best-effort.
func (d *Dispatcher) Record(entry ports.ActivityEntry) {
	i := d.shardIndex(entry.UserID)
	select {
	case d.workers[i] <- entry:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		d.log.Warn().
			Str("user_id", entry.UserID).
			Str("action", entry.Action).
			Msg("activity queue full, entry dropped")
		metrics.ActivityDroppedTotal.Inc()
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.service.Process(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("user_id", entry.UserID).
					Int("worker_id", id).
					Msg("activity processing failed")
				metrics.ActivityErrorsTotal.Inc()
			}
		}
	}
}

package batcher

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	pkgRuntime "github.com/huynhanx03/go-reqbatch/pkg/runtime"
	t "github.com/huynhanx03/go-reqbatch/pkg/timer"
)

// Batcher is a priority-aware request queue batcher.
//
// Producers push items tagged with a Priority; a single worker goroutine
// collects them into batches (highest priority first, up to the configured
// cap) and delivers each batch to the Consumer, then sleeps for a hold-off
// linearly interpolated from the batch size.
//
// Behavior:
//   - Any number of goroutines may call Push/PushAll concurrently.
//   - Within one priority, items are delivered in strict FIFO order.
//   - Between priorities the order is strictly preemptive: a batch never
//     contains a lower-priority item before a higher-priority one, and a
//     saturated high priority starves the lower ones indefinitely.
//   - If a cycle caps out with items still queued, the worker re-signals
//     itself, so no item waits for further producer activity.
//   - Items still queued at Close (or removed by Clear) are dropped.
type Batcher[T any] struct {
	name   string
	queues *QueueSet[T]
	cons   Consumer[T]

	// wake is edge-triggered: multiple signals coalesce. That is safe
	// because every cycle drains up to the cap and self-yields on residue.
	wake     chan struct{}
	shutdown atomic.Bool

	paramMu      sync.Mutex
	maxBatchSize uint
	holdOffFix   float64 // seconds
	holdOffVar   float64 // seconds per item

	sleep SleepFunc
	clock t.Timer
	log   *zap.Logger

	startOnce sync.Once
	closeOnce sync.Once
	wg        sync.WaitGroup

	deliveredBatches atomic.Uint64
	deliveredItems   atomic.Uint64
	lastDelivery     atomic.Int64 // unix nanos, 0 = never
}

// New creates a Batcher delivering to consumer.
//
// The worker goroutine is started immediately when cfg.AutoStart is set;
// otherwise the owner must call Start.
func New[T any](name string, consumer Consumer[T], cfg Config, opts ...Option[T]) *Batcher[T] {
	b := &Batcher[T]{
		name:   name,
		queues: NewQueueSet[T](),
		cons:   consumer,
		wake:   make(chan struct{}, 1),
		sleep:  time.Sleep,
		clock:  defaultClock(),
		log:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.SetParams(cfg.MaxBatch, cfg.MinHoldOff, cfg.MaxHoldOff)

	if cfg.AutoStart {
		b.Start()
	}
	return b
}

// statsClock is shared by every Batcher that does not inject its own clock.
// Millisecond resolution, lazily started, never stopped.
var (
	statsClockOnce sync.Once
	statsClock     t.Timer
)

func defaultClock() t.Timer {
	statsClockOnce.Do(func() {
		statsClock = t.NewCachedTimer(time.Millisecond)
	})
	return statsClock
}

// Start starts the worker goroutine. Idempotent.
func (b *Batcher[T]) Start() {
	b.startOnce.Do(func() {
		b.wg.Add(1)
		go b.run()
		b.log.Info("batcher worker started", zap.String("batcher", b.name))
	})
}

// Close stops the worker and waits for it to exit. Items still queued are
// dropped without delivery. Producers must have ceased before Close; a Push
// racing Close is a contract violation of the caller.
func (b *Batcher[T]) Close() {
	b.closeOnce.Do(func() {
		b.shutdown.Store(true)
		b.signal()
		b.wg.Wait()
		dropped := b.queues.Clear()
		b.log.Info("batcher worker stopped",
			zap.String("batcher", b.name),
			zap.Int("dropped", dropped))
	})
}

// Name returns the batcher name.
func (b *Batcher[T]) Name() string { return b.name }

// Push enqueues one item at the given priority and wakes the worker.
func (b *Batcher[T]) Push(item T, prio Priority) {
	b.queues.Push(item, prio)
	b.signal()
}

// PushAll enqueues all items at the given priority under a single queue
// lock acquisition, then wakes the worker. The wake is raised even for an
// empty slice; the resulting cycle delivers nothing and is harmless.
func (b *Batcher[T]) PushAll(items []T, prio Priority) {
	b.queues.PushAll(items, prio)
	b.signal()
}

// Len returns the number of queued items for the given priority.
func (b *Batcher[T]) Len(prio Priority) int { return b.queues.Len(prio) }

// Empty reports whether the queue for the given priority is empty.
func (b *Batcher[T]) Empty(prio Priority) bool { return b.queues.Empty(prio) }

// Clear drops all queued items. A batch already drained by the worker is
// in flight and will still be delivered.
func (b *Batcher[T]) Clear() {
	n := b.queues.Clear()
	if n > 0 {
		b.log.Debug("queues cleared",
			zap.String("batcher", b.name),
			zap.Int("dropped", n))
	}
}

// SetParams sets the per-batch item limit (0 = unlimited) and the hold-off
// interpolation endpoints in milliseconds. A worker cycle reads the limit once
// before collecting and the hold-off parameters once after delivery, each
// under the parameter lock; an update landing between the two reads applies
// its hold-off to the current cycle and its limit from the next one.
func (b *Batcher[T]) SetParams(maxBatch uint, minHoldOffMs, maxHoldOffMs uint) {
	b.paramMu.Lock()
	defer b.paramMu.Unlock()

	b.maxBatchSize = maxBatch
	if maxBatch > 0 && maxHoldOffMs > 0 {
		b.holdOffVar = (float64(maxHoldOffMs) - float64(minHoldOffMs)) / (float64(maxBatch) * 1e3)
	} else {
		b.holdOffVar = 0
	}
	b.holdOffFix = float64(minHoldOffMs) / 1e3
}

// MaxRequests returns the current per-batch item limit (0 = unlimited).
func (b *Batcher[T]) MaxRequests() uint {
	b.paramMu.Lock()
	defer b.paramMu.Unlock()
	return b.maxBatchSize
}

// MinHoldOff returns the minimal hold-off in milliseconds, reconstituted
// from the stored seconds value.
func (b *Batcher[T]) MinHoldOff() uint {
	b.paramMu.Lock()
	defer b.paramMu.Unlock()
	return uint(b.holdOffFix * 1e3)
}

// MaxHoldOff returns the maximal hold-off in milliseconds, reconstituted
// from the stored interpolation parameters.
func (b *Batcher[T]) MaxHoldOff() uint {
	b.paramMu.Lock()
	defer b.paramMu.Unlock()
	return uint((b.holdOffFix + b.holdOffVar*float64(b.maxBatchSize)) * 1e3)
}

// Stats is a snapshot of the delivery counters.
type Stats struct {
	Batches      uint64
	Items        uint64
	LastDelivery time.Time // zero if nothing was delivered yet
}

// Stats returns a snapshot of the delivery counters. The fields are read
// independently, so a snapshot taken concurrently with a delivery may mix
// pre- and post-delivery values.
func (b *Batcher[T]) Stats() Stats {
	s := Stats{
		Batches: b.deliveredBatches.Load(),
		Items:   b.deliveredItems.Load(),
	}
	if ns := b.lastDelivery.Load(); ns != 0 {
		s.LastDelivery = time.Unix(0, ns)
	}
	return s
}

// signal raises the wake event. Non-blocking; signals coalesce.
func (b *Batcher[T]) signal() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// run is the worker loop: wait for wake, assemble a batch highest priority
// first, deliver it with no locks held, then hold off.
func (b *Batcher[T]) run() {
	defer b.wg.Done()

	for range b.wake {
		if b.shutdown.Load() {
			return
		}

		b.paramMu.Lock()
		max := b.maxBatchSize
		b.paramMu.Unlock()

		var batch []T
		for p := int(PriorityHigh); p >= int(PriorityLow); p-- {
			prio := Priority(p)
			if max == 0 || uint(len(batch)) < max {
				remaining := 0
				if max != 0 {
					remaining = int(max) - len(batch)
				}
				b.queues.DrainInto(&batch, prio, remaining)
			}
			// Residue behind the cap must not wait for another producer.
			if !b.queues.Empty(prio) {
				b.signal()
			}
		}

		if len(batch) > 0 {
			start := pkgRuntime.NanoTime()
			_ = b.cons.Consume(batch)
			elapsed := time.Duration(pkgRuntime.NanoTime() - start)

			b.deliveredBatches.Add(1)
			b.deliveredItems.Add(uint64(len(batch)))
			b.lastDelivery.Store(b.clock.Now().UnixNano())

			b.log.Debug("batch delivered",
				zap.String("batcher", b.name),
				zap.Int("size", len(batch)),
				zap.Duration("took", elapsed))
		}

		b.paramMu.Lock()
		holdOff := b.holdOffFix + b.holdOffVar*float64(len(batch))
		b.paramMu.Unlock()

		if holdOff > 0 {
			b.sleep(time.Duration(holdOff * float64(time.Second)))
		}
	}
}

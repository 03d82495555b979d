package batcher

import (
	"github.com/huynhanx03/go-reqbatch/pkg/datastructs/queue"
)

// QueueSet is a set of three FIFO queues, one per priority level.
//
// Each queue carries its own mutex (inside queue.FIFO), so producers at
// different priorities never block each other. No QueueSet operation holds
// more than one queue lock at a time.
type QueueSet[T any] struct {
	queues [NumPriorities]*queue.FIFO[T]
}

// NewQueueSet creates a QueueSet with three empty queues.
func NewQueueSet[T any]() *QueueSet[T] {
	qs := &QueueSet[T]{}
	for i := range qs.queues {
		qs.queues[i] = queue.NewFIFO[T]()
	}
	return qs
}

// Push appends an item to the queue for the given priority.
// Panics on an out-of-range priority; that is a programming error.
func (qs *QueueSet[T]) Push(item T, prio Priority) {
	qs.queue(prio).Enqueue(item)
}

// PushAll appends all items to the queue for the given priority under a
// single lock acquisition, so they become visible atomically to the worker.
func (qs *QueueSet[T]) PushAll(items []T, prio Priority) {
	qs.queue(prio).EnqueueBatch(items)
}

// DrainInto moves up to remaining items (all if remaining <= 0) from the
// head of the priority's queue to the tail of batch. Returns the count moved.
func (qs *QueueSet[T]) DrainInto(batch *[]T, prio Priority, remaining int) int {
	return qs.queue(prio).DrainInto(batch, remaining)
}

// Len returns the number of queued items for the given priority.
// The value may be stale the moment it returns.
func (qs *QueueSet[T]) Len(prio Priority) int {
	return qs.queue(prio).Len()
}

// Empty reports whether the queue for the given priority holds no items.
// The value may be stale the moment it returns.
func (qs *QueueSet[T]) Empty(prio Priority) bool {
	return qs.queue(prio).Empty()
}

// Clear drains all three queues, highest priority first, taking one queue
// lock at a time. Returns the total number of items dropped.
func (qs *QueueSet[T]) Clear() int {
	n := 0
	for p := int(PriorityHigh); p >= int(PriorityLow); p-- {
		n += qs.queues[p].Clear()
	}
	return n
}

func (qs *QueueSet[T]) queue(prio Priority) *queue.FIFO[T] {
	if !prio.valid() {
		panic("batcher: priority out of range")
	}
	return qs.queues[prio]
}

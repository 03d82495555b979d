package sink

import (
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-reqbatch/pkg/mq/batcher"
)

// Fanout delivers one batch to several consumers concurrently. Consume
// returns after every consumer finished; the first error wins.
//
// The batch slice is shared read-only across consumers for the duration of
// the call, which stays within the Consumer ownership contract.
type Fanout[T any] struct {
	consumers []batcher.Consumer[T]
}

var _ batcher.Consumer[int] = (*Fanout[int])(nil)

// NewFanout creates a Fanout over the given consumers.
func NewFanout[T any](consumers ...batcher.Consumer[T]) *Fanout[T] {
	return &Fanout[T]{consumers: consumers}
}

// Consume implements batcher.Consumer.
func (s *Fanout[T]) Consume(batch []T) error {
	var g errgroup.Group
	for _, c := range s.consumers {
		g.Go(func() error {
			return c.Consume(batch)
		})
	}
	return g.Wait()
}

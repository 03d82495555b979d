package batcher

import (
	"time"

	"go.uber.org/zap"

	t "github.com/huynhanx03/go-reqbatch/pkg/timer"
)

// SleepFunc is the sleep used between batch deliveries.
// Tests substitute a recording implementation.
type SleepFunc func(d time.Duration)

// Option configures a Batcher at construction time.
type Option[T any] func(*Batcher[T])

// WithSleep replaces the hold-off sleep function (default time.Sleep).
func WithSleep[T any](sleep SleepFunc) Option[T] {
	return func(b *Batcher[T]) {
		b.sleep = sleep
	}
}

// WithLogger sets the logger (default zap.NewNop).
func WithLogger[T any](log *zap.Logger) Option[T] {
	return func(b *Batcher[T]) {
		b.log = log
	}
}

// WithClock sets the clock used for delivery stats timestamps
// (default: a process-wide cached timer with millisecond steps).
func WithClock[T any](clock t.Timer) Option[T] {
	return func(b *Batcher[T]) {
		b.clock = clock
	}
}

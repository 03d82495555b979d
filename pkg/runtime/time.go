package runtime

import (
	_ "unsafe" // for go:linkname
)

// NanoTime reads the runtime's monotonic clock in nanoseconds. Cheaper than
// time.Now when only a duration between two readings is needed.
//
//go:linkname NanoTime runtime.nanotime
func NanoTime() int64

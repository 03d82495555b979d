package buffer

import (
	"github.com/huynhanx03/go-reqbatch/pkg/datastructs/buffer"
	"github.com/huynhanx03/go-reqbatch/pkg/pool/internal/calibrated"
)

var defaultPool = calibrated.New(
	func(size int) *buffer.Buffer {
		return buffer.New(size)
	},
	// Bucket by retained capacity; Len is zero after Reset.
	func(b *buffer.Buffer) int {
		return b.Cap()
	},
	func(b *buffer.Buffer) {
		b.Reset()
	},
)

// Get returns an empty buffer from the default pool.
func Get() *buffer.Buffer {
	return defaultPool.Get(int(defaultPool.DefaultSize()))
}

// Put resets a buffer and returns it to the default pool.
func Put(b *buffer.Buffer) {
	defaultPool.Put(b)
}

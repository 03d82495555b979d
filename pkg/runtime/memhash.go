package runtime

import (
	"unsafe"
)

//go:linkname memhash runtime.memhash
func memhash(p unsafe.Pointer, h, s uintptr) uintptr

// MemHash hashes the bytes of data using the runtime's AES-based hash.
// The seed is process-specific, so values are not stable across restarts.
func MemHash(data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}
	return uint64(memhash(unsafe.Pointer(unsafe.SliceData(data)), 0, uintptr(len(data))))
}

// MemHashString hashes the bytes of s. See MemHash.
func MemHashString(s string) uint64 {
	if len(s) == 0 {
		return 0
	}
	return uint64(memhash(unsafe.Pointer(unsafe.StringData(s)), 0, uintptr(len(s))))
}

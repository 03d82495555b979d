package utils

import "math/bits"

// maxPowerOfTwo is the largest power of two representable as an int.
const maxPowerOfTwo = 1 << (bits.UintSize - 2)

// CeilToPowerOfTwo returns the smallest power of two >= n, with a floor
// of 2. Panics when the result would overflow an int.
func CeilToPowerOfTwo(n int) int {
	if n <= 2 {
		return 2
	}
	if n > maxPowerOfTwo {
		panic("argument is too large")
	}
	return 1 << bits.Len(uint(n-1))
}

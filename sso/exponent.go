package sso

import "math/bits"

// maxExponent is the largest capacity exponent the allocator will address.
// 1<<maxExponent must stay representable as a positive int.
const maxExponent = bits.UintSize - 2

// ExponentFor returns the smallest exponent e such that 1<<e >= size.
// The zero-size edge case is defined as ExponentFor(0) == 0, and the result
// is exact at power-of-two boundaries: ExponentFor(1<<k) == k.
func ExponentFor(size int) uint8 {
	if size <= 1 {
		return 0
	}
	return uint8(bits.Len(uint(size - 1)))
}

// SizeFor returns the capacity in bytes for a given exponent: 1<<e.
// The exponent is pure arithmetic (SizeFor(0) == 1); whether an allocation
// exists at all is tracked by the Allocator, never by a magic exponent value.
func SizeFor(e uint8) int {
	return 1 << e
}

package buf

import "math"

// Add adds two non-negative offsets or lengths, returning ok = false when the
// result would overflow int.
func Add(a, b int) (int, bool) {
	if b > 0 && a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// Mul multiplies two non-negative counts, returning ok = false when the result
// would overflow int. This is the safe way to evaluate capacity * ratio
// comparisons without wrapping.
func Mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// ClampLen returns the number of bytes actually available in a run of total
// bytes starting at off, capped at want. Negative want is treated as zero.
// Callers are expected to have validated off <= total already.
func ClampLen(total, off, want int) int {
	if want < 0 {
		return 0
	}
	if rest := total - off; want > rest {
		return rest
	}
	return want
}

// Contains reports whether the range [off, off+n) lies within a buffer of
// total bytes, with overflow-safe arithmetic.
func Contains(total, off, n int) bool {
	if off < 0 || n < 0 || off > total {
		return false
	}
	end, ok := Add(off, n)
	return ok && end <= total
}

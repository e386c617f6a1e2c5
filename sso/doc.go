// Package sso provides a growable byte string with small-string
// optimization: short content is stored inline with no heap allocation, and
// longer content transparently moves to an exponentially grown heap buffer.
//
// # Overview
//
// The package is built from three cooperating layers:
//
//   - Exponent arithmetic: pure functions mapping a requested byte size to a
//     power-of-two capacity exponent and back (ExponentFor, SizeFor). The
//     exponent is the capacity currency used throughout.
//   - Allocator: owns one raw buffer and its exponent, implementing the
//     grow/shrink policy. It knows nothing about string semantics.
//   - String: owns either the fixed inline buffer or an Allocator-backed
//     heap buffer, and implements the length-tracking mutation operations.
//
// # Modes
//
// A String is always in one of two modes:
//
//	inline  content lives in a 16-byte embedded buffer (up to 15 content
//	        bytes plus the terminator); no heap allocation exists
//	heap    content lives in a power-of-two sized heap buffer
//
// Every capacity-affecting operation checks whether the new required size
// crosses the inline threshold and transitions modes accordingly, copying
// content and (on the way back down) releasing the heap buffer.
//
// # Growth and shrinking
//
// Heap capacity is always 1<<e bytes. Growth doubles, so appending byte by
// byte costs amortized O(1). Shrinking is hysteretic: the buffer is only
// reallocated downward once capacity reaches Config.ShrinkRatio times the
// requested size, which keeps length oscillation around a boundary from
// thrashing. Reserve pins a capacity floor that survives any sequence of
// shrinking operations until Release.
//
//	s := sso.New()
//	_ = s.AppendString("hello, ")
//	_ = s.AppendString("world")
//	_ = s.Insert(5, []byte("!"))
//	fmt.Println(s.String(), s.Mode(), s.Cap())
//
// # References
//
// RefSubstr returns a Ref, a zero-copy borrowed view over a byte range of
// its base. A Ref stores an offset and length, not a pointer into the
// base's storage, and re-validates its bounds on every read: mutating the
// base so the range no longer fits makes subsequent reads fail with
// ErrStaleRef instead of touching moved or freed memory.
//
// # Errors
//
// Index parameters outside the valid range fail with ErrOutOfBounds; length
// parameters are clamped to the available remainder instead. Allocation
// failure (the configured MaxCapacity, or exponent overflow) fails with
// ErrNoSpace and leaves the container in its prior state.
//
// # Thread safety
//
// Nothing in this package is safe for concurrent use. A String shared
// across goroutines must be serialized externally by the caller.
package sso

package sso

import (
	"fmt"

	"github.com/joshuapare/stringkit/internal/buf"
)

// ResizeResult reports what a Resize call actually did.
type ResizeResult int

const (
	// ResizeNoop means the current allocation already satisfied the request.
	ResizeNoop ResizeResult = iota
	// ResizeGrew means the buffer was reallocated to a larger capacity.
	ResizeGrew
	// ResizeShrunk means the buffer was reallocated to a smaller capacity.
	ResizeShrunk
)

// Allocator owns a single growable raw buffer and its capacity exponent.
// It carries no string semantics: no terminator handling and no content
// shifting. Capacity is always a power of two, tracked as the exponent;
// whether anything is allocated at all is tracked by the buffer being nil.
//
// The zero value is an unallocated allocator that never shrinks; use
// NewAllocator to apply a Config.
type Allocator struct {
	b   []byte
	exp uint8

	shrinkRatio int
	maxCap      int
}

// NewAllocator returns an empty allocator configured by cfg.
func NewAllocator(cfg Config) *Allocator {
	return &Allocator{shrinkRatio: cfg.ShrinkRatio, maxCap: cfg.MaxCapacity}
}

// Allocated reports whether a buffer is currently held.
func (a *Allocator) Allocated() bool { return a.b != nil }

// Cap returns the current capacity in bytes, 0 when nothing is allocated.
func (a *Allocator) Cap() int {
	if a.b == nil {
		return 0
	}
	return SizeFor(a.exp)
}

// Exponent returns the current capacity exponent. Only meaningful while
// Allocated reports true.
func (a *Allocator) Exponent() uint8 { return a.exp }

// Bytes returns the raw buffer, nil when nothing is allocated.
func (a *Allocator) Bytes() []byte { return a.b }

// ReallocToExponent unconditionally adopts a buffer of 1<<e bytes, copying
// the lesser of the old and new sizes of prior content. On failure the old
// buffer and exponent are untouched.
func (a *Allocator) ReallocToExponent(e uint8) error {
	if e > maxExponent {
		return fmt.Errorf("realloc to exponent %d: %w", e, ErrNoSpace)
	}
	n := SizeFor(e)
	if a.maxCap > 0 && n > a.maxCap {
		return fmt.Errorf("realloc to %d bytes (limit %d): %w", n, a.maxCap, ErrNoSpace)
	}
	nb := make([]byte, n)
	copy(nb, a.b)
	a.b = nb
	a.exp = e
	return nil
}

// Resize grows the buffer when n exceeds the current capacity and shrinks it
// once capacity reaches shrinkRatio times n. Anything in between is a no-op,
// which keeps small fluctuations around a power-of-two boundary from
// thrashing the allocation.
func (a *Allocator) Resize(n int) (ResizeResult, error) {
	if n < 0 {
		return ResizeNoop, fmt.Errorf("resize to %d: %w", n, ErrOutOfBounds)
	}
	if a.b == nil && n == 0 {
		return ResizeNoop, nil
	}
	e := ExponentFor(n)
	if a.b == nil || n > a.Cap() {
		if err := a.ReallocToExponent(e); err != nil {
			return ResizeNoop, err
		}
		return ResizeGrew, nil
	}
	if a.shrinkRatio > 0 && e < a.exp {
		if floor, ok := buf.Mul(n, a.shrinkRatio); ok && a.Cap() >= floor {
			if err := a.ReallocToExponent(e); err != nil {
				return ResizeNoop, err
			}
			return ResizeShrunk, nil
		}
	}
	return ResizeNoop, nil
}

// Free releases the buffer and resets bookkeeping; idempotent.
func (a *Allocator) Free() {
	a.b = nil
	a.exp = 0
}

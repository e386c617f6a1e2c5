package sso

import "github.com/joshuapare/stringkit/internal/buf"

// Ref is a borrowed, non-owning view over a contiguous byte range of a base
// String, obtained from RefSubstr. It holds an offset and length rather
// than a slice into the base's storage, so a reallocation of the base never
// leaves it dangling; instead its bounds are re-validated lazily on every
// read. A Ref taken before the base shrank fails with ErrStaleRef rather
// than reading stale or out-of-range memory.
//
// A Ref must not be used to mutate the base, and shares the base's
// single-goroutine contract.
type Ref struct {
	base *String
	off  int
	n    int
}

// Len returns the length of the viewed range. It reflects the range the Ref
// was created over, whether or not it is still valid.
func (r Ref) Len() int { return r.n }

// Base returns the String this Ref views, nil for the zero Ref.
func (r Ref) Base() *String { return r.base }

// Bytes returns the viewed content after re-validating the range against
// the current state of the base. The returned slice is a view into the
// base's active buffer and is invalidated by the base's next mutation.
func (r Ref) Bytes() ([]byte, error) {
	if r.base == nil || !buf.Contains(r.base.length, r.off, r.n) {
		return nil, ErrStaleRef
	}
	return r.base.data()[r.off : r.off+r.n], nil
}

// String returns a copy of the viewed content, re-validating like Bytes.
func (r Ref) String() (string, error) {
	b, err := r.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

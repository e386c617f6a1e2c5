package sso

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/stringkit/internal/buf"
)

// Mode identifies where a String's content currently lives.
type Mode uint8

const (
	// ModeInline means content lives in the fixed-size embedded buffer.
	ModeInline Mode = iota
	// ModeHeap means content lives in a separately owned heap allocation.
	ModeHeap
)

func (m Mode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	case ModeHeap:
		return "heap"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// String is a growable byte string with small-string optimization: content
// up to InlineSize-1 bytes lives in an embedded buffer, longer content moves
// to an exponentially grown heap allocation. Content is always followed by a
// zero terminator byte, so effective capacity invariantly exceeds length.
//
// A String exclusively owns its heap buffer; copying always deep-copies.
// It is not safe for concurrent use: callers sharing one String across
// goroutines must serialize all access externally.
type String struct {
	inline [InlineSize]byte
	heap   Allocator
	length int
	mode   Mode

	// reservedExp is the caller-set floor below which capacity never
	// shrinks. 0 means no floor.
	reservedExp uint8

	cfg Config
}

// New returns an empty String in inline mode using DefaultConfig.
func New() *String {
	return NewWithConfig(DefaultConfig)
}

// NewWithConfig returns an empty String using the given growth strategy.
func NewWithConfig(cfg Config) *String {
	return &String{heap: *NewAllocator(cfg), cfg: cfg}
}

// FromString returns a String holding a copy of str.
func FromString(str string) (*String, error) {
	s := New()
	if err := s.AppendString(str); err != nil {
		return nil, err
	}
	return s, nil
}

// FromBytes returns a String holding a copy of b. The source slice is not
// retained.
func FromBytes(b []byte) (*String, error) {
	return FromBytesN(b, len(b))
}

// FromBytesN returns a String holding a copy of at most max bytes of b.
func FromBytesN(b []byte, max int) (*String, error) {
	s := New()
	if err := s.AppendN(b, max); err != nil {
		return nil, err
	}
	return s, nil
}

// FromRef returns a String holding a copy of at most max bytes viewed by
// ref. The ref is re-validated against its base before being read.
func FromRef(ref Ref, max int) (*String, error) {
	b, err := ref.Bytes()
	if err != nil {
		return nil, err
	}
	return FromBytesN(b, max)
}

// Len returns the number of content bytes, excluding the terminator.
func (s *String) Len() int { return s.length }

// Mode returns where the content currently lives.
func (s *String) Mode() Mode { return s.mode }

// Cap returns the effective capacity of the active buffer in bytes.
func (s *String) Cap() int {
	if s.mode == ModeInline {
		return InlineSize
	}
	return s.heap.Cap()
}

// Bytes returns the content as a view into the active buffer. The view is
// only valid until the next mutating operation.
func (s *String) Bytes() []byte { return s.data()[:s.length] }

// CStr returns the content plus its zero terminator, mirroring the C string
// contract. Like Bytes, the view is invalidated by the next mutation.
func (s *String) CStr() []byte { return s.data()[:s.length+1] }

// String returns a copy of the content.
func (s *String) String() string { return string(s.Bytes()) }

// Equal reports byte-for-byte equality of content.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// Clone returns a deep copy sharing no storage with s. The reservation
// floor is not carried over.
func (s *String) Clone() *String {
	out := NewWithConfig(s.cfg)
	// the content already fit under the same capacity limit
	_ = out.Append(s.Bytes())
	return out
}

// Append copies b to the end of the string.
func (s *String) Append(b []byte) error { return s.AppendN(b, len(b)) }

// AppendString copies the bytes of str to the end of the string.
func (s *String) AppendString(str string) error {
	return s.AppendN([]byte(str), len(str))
}

// AppendN copies at most max bytes of b to the end. max is a length
// parameter and is clamped, never a bounds error.
func (s *String) AppendN(b []byte, max int) error {
	n := buf.ClampLen(len(b), 0, max)
	need, ok := buf.Add(s.length+1, n)
	if !ok {
		return fmt.Errorf("append %d bytes: %w", n, ErrNoSpace)
	}
	if err := s.ensure(need); err != nil {
		return err
	}
	copy(s.data()[s.length:], b[:n])
	s.length += n
	s.terminate()
	return nil
}

// AppendRef appends at most max bytes viewed by ref, re-validating the ref
// before any bytes are read. ref may view s itself.
func (s *String) AppendRef(ref Ref, max int) error {
	b, err := ref.Bytes()
	if err != nil {
		return err
	}
	return s.AppendN(b, max)
}

// Insert copies b into the string at index i, shifting the tail right.
// b must not alias the string's own storage; use InsertRef for that.
func (s *String) Insert(i int, b []byte) error { return s.InsertN(i, b, len(b)) }

// InsertString copies the bytes of str into the string at index i.
func (s *String) InsertString(i int, str string) error {
	return s.InsertN(i, []byte(str), len(str))
}

// InsertN copies at most max bytes of b into the string at index i. Fails
// with ErrOutOfBounds when i > Len(); inserting at i == Len() is equivalent
// to AppendN.
func (s *String) InsertN(i int, b []byte, max int) error {
	if i < 0 || i > s.length {
		return fmt.Errorf("insert at %d (len %d): %w", i, s.length, ErrOutOfBounds)
	}
	n := buf.ClampLen(len(b), 0, max)
	need, ok := buf.Add(s.length+1, n)
	if !ok {
		return fmt.Errorf("insert %d bytes: %w", n, ErrNoSpace)
	}
	if err := s.ensure(need); err != nil {
		return err
	}
	d := s.data()
	copy(d[i+n:], d[i:s.length])
	copy(d[i:i+n], b[:n])
	s.length += n
	s.terminate()
	return nil
}

// InsertRef inserts at most max bytes viewed by ref at index i. When ref
// views s itself the bytes are snapshotted first: the tail shift would
// otherwise overwrite the viewed range before it is copied.
func (s *String) InsertRef(i int, ref Ref, max int) error {
	b, err := ref.Bytes()
	if err != nil {
		return err
	}
	if ref.base == s {
		b = append([]byte(nil), b...)
	}
	return s.InsertN(i, b, max)
}

// Erase removes up to n bytes starting at index i, shifting the tail left.
// n is clamped to the available remainder. Fails with ErrOutOfBounds when
// i >= Len(). Drops back to inline mode, releasing the heap buffer, when
// the remaining content falls below the inline threshold.
func (s *String) Erase(i, n int) error {
	if i < 0 || i >= s.length {
		return fmt.Errorf("erase at %d (len %d): %w", i, s.length, ErrOutOfBounds)
	}
	n = buf.ClampLen(s.length, i, n)
	d := s.data()
	copy(d[i:], d[i+n:s.length])
	s.length -= n
	if err := s.ensure(s.length + 1); err != nil {
		return err
	}
	s.terminate()
	return nil
}

// Resize sets the length to n. Growth fills the new region by repeating
// fill (a single space when fill is empty), truncating the final repetition
// to land exactly on n. Shrinking truncates; abandoned content is not
// zeroed.
func (s *String) Resize(n int, fill []byte) error {
	if n < 0 {
		return fmt.Errorf("resize to %d: %w", n, ErrOutOfBounds)
	}
	need, ok := buf.Add(n, 1)
	if !ok {
		return fmt.Errorf("resize to %d: %w", n, ErrNoSpace)
	}
	if err := s.ensure(need); err != nil {
		return err
	}
	if n > s.length {
		if len(fill) == 0 {
			fill = []byte{' '}
		}
		d := s.data()
		for at := s.length; at < n; at += len(fill) {
			copy(d[at:n], fill)
		}
	}
	s.length = n
	s.terminate()
	return nil
}

// Substr returns a new owning String copied from [i, i+n), with n clamped
// to the remainder. Fails with ErrOutOfBounds when i >= Len().
func (s *String) Substr(i, n int) (*String, error) {
	if i < 0 || i >= s.length {
		return nil, fmt.Errorf("substr at %d (len %d): %w", i, s.length, ErrOutOfBounds)
	}
	n = buf.ClampLen(s.length, i, n)
	out := NewWithConfig(s.cfg)
	if err := out.Append(s.data()[i : i+n]); err != nil {
		return nil, err
	}
	return out, nil
}

// RefSubstr returns a borrowed zero-copy view over [i, i+n) of s, with n
// clamped to the remainder. Fails with ErrOutOfBounds when i >= Len(). The
// view re-validates its bounds every time it is read, because the base may
// mutate between creation and use.
func (s *String) RefSubstr(i, n int) (Ref, error) {
	if i < 0 || i >= s.length {
		return Ref{}, fmt.Errorf("refsubstr at %d (len %d): %w", i, s.length, ErrOutOfBounds)
	}
	return Ref{base: s, off: i, n: buf.ClampLen(s.length, i, n)}, nil
}

// Reserve raises the capacity floor to ExponentFor(size): no subsequent
// operation shrinks effective capacity below 1<<ExponentFor(size), even if
// the content later becomes much shorter. Reallocation happens immediately
// only when the current capacity is already insufficient.
func (s *String) Reserve(size int) error {
	if size < 0 {
		return fmt.Errorf("reserve %d: %w", size, ErrOutOfBounds)
	}
	e := ExponentFor(size)
	if e <= s.reservedExp {
		return nil
	}
	if e > maxExponent {
		return fmt.Errorf("reserve %d: %w", size, ErrNoSpace)
	}
	if s.Cap() < SizeFor(e) {
		if err := s.ensure(SizeFor(e)); err != nil {
			return err
		}
	}
	s.reservedExp = e
	return nil
}

// Release frees any heap storage and resets to the empty inline state,
// dropping any reservation.
func (s *String) Release() {
	s.heap.Free()
	s.mode = ModeInline
	s.length = 0
	s.reservedExp = 0
	s.inline[0] = 0
}

// data returns the active buffer for the current mode.
func (s *String) data() []byte {
	if s.mode == ModeInline {
		return s.inline[:]
	}
	return s.heap.Bytes()
}

func (s *String) terminate() {
	s.data()[s.length] = 0
}

// ensure makes at least n bytes (content plus terminator) addressable in
// the active buffer. The mode-transition check runs before any generic
// allocator resize, since the allocator has no notion of the inline buffer.
// Requests below the reservation floor are already satisfied and return
// immediately, which is what keeps the floor from ever shrinking away.
func (s *String) ensure(n int) error {
	if ExponentFor(n) < s.reservedExp {
		return nil
	}
	if s.mode == ModeInline {
		if n > InlineSize {
			return s.toHeap(ExponentFor(n))
		}
		return nil
	}
	if n < InlineSize {
		s.toInline()
		return nil
	}
	_, err := s.heap.Resize(n)
	return err
}

// toHeap moves inline content (terminator included) into a fresh heap
// allocation of 1<<e bytes. On allocation failure the string stays inline
// and untouched.
func (s *String) toHeap(e uint8) error {
	if err := s.heap.ReallocToExponent(e); err != nil {
		return err
	}
	copy(s.heap.Bytes(), s.inline[:s.length+1])
	s.mode = ModeHeap
	return nil
}

// toInline copies heap content (truncated to what the inline buffer can
// hold alongside the terminator) into the embedded buffer and releases the
// heap allocation. Cannot fail.
func (s *String) toInline() {
	n := s.length
	if n > InlineSize-1 {
		n = InlineSize - 1
	}
	copy(s.inline[:], s.heap.Bytes()[:n])
	s.heap.Free()
	s.mode = ModeInline
	s.length = n
	s.inline[n] = 0
}

package sso

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	s := New()

	require.Equal(t, 0, s.Len())
	require.Equal(t, "", s.String())
	require.Equal(t, ModeInline, s.Mode())
	require.Equal(t, InlineSize, s.Cap())
	require.Equal(t, []byte{0}, s.CStr())
}

func TestFromString(t *testing.T) {
	s, err := FromString("foo")
	require.NoError(t, err)
	require.Equal(t, "foo", s.String())
	require.Equal(t, 3, s.Len())
}

func TestFromBytesN_Clamp(t *testing.T) {
	s, err := FromBytesN([]byte("bar"), 2)
	require.NoError(t, err)
	require.Equal(t, "ba", s.String())
	require.Equal(t, 2, s.Len())

	// max beyond the source length is clamped, not an error
	s, err = FromBytesN([]byte("bar"), 99)
	require.NoError(t, err)
	require.Equal(t, "bar", s.String())
}

func TestAppend_Terminated(t *testing.T) {
	s := New()
	require.NoError(t, s.AppendString("hello"))
	require.NoError(t, s.Append([]byte(", world")))

	require.Equal(t, "hello, world", s.String())
	require.Equal(t, byte(0), s.CStr()[s.Len()])
}

func TestAppend_Associative(t *testing.T) {
	cases := []struct{ a, b string }{
		{"", ""},
		{"foo", "bar"},
		{"", "bar"},
		{"a", strings.Repeat("x", 40)},
		{strings.Repeat("y", 20), strings.Repeat("z", 100)},
	}
	for _, tc := range cases {
		s := New()
		require.NoError(t, s.AppendString(tc.a))
		require.NoError(t, s.AppendString(tc.b))

		whole, err := FromString(tc.a + tc.b)
		require.NoError(t, err)
		require.True(t, s.Equal(whole), "a=%q b=%q", tc.a, tc.b)
	}
}

func TestInsert_Chain(t *testing.T) {
	s := New()

	require.NoError(t, s.InsertString(0, "foo"))
	require.Equal(t, "foo", s.String())

	require.NoError(t, s.InsertString(3, "bar"))
	require.Equal(t, "foobar", s.String())

	require.NoError(t, s.InsertString(0, "  "))
	require.Equal(t, "  foobar", s.String())

	require.NoError(t, s.InsertString(5, "  "))
	require.Equal(t, "  foo  bar", s.String())
}

func TestInsert_AtLengthIsAppend(t *testing.T) {
	s, err := FromString("abc")
	require.NoError(t, err)
	require.NoError(t, s.Insert(s.Len(), []byte("def")))

	appended, err := FromString("abc")
	require.NoError(t, err)
	require.NoError(t, appended.Append([]byte("def")))

	require.True(t, s.Equal(appended))
}

func TestInsert_OutOfBounds(t *testing.T) {
	s, err := FromString("abc")
	require.NoError(t, err)

	require.ErrorIs(t, s.Insert(4, []byte("x")), ErrOutOfBounds)
	require.ErrorIs(t, s.Insert(-1, []byte("x")), ErrOutOfBounds)
	require.Equal(t, "abc", s.String())
}

func TestErase_Chain(t *testing.T) {
	s, err := FromString("##xxx##")
	require.NoError(t, err)

	require.NoError(t, s.Erase(2, 3))
	require.Equal(t, "####", s.String())

	require.NoError(t, s.Erase(0, 2))
	require.Equal(t, "##", s.String())

	require.NoError(t, s.Erase(0, 2))
	require.Equal(t, "", s.String())
}

func TestErase_ClampsLength(t *testing.T) {
	s, err := FromString("abcdef")
	require.NoError(t, err)

	require.NoError(t, s.Erase(4, 100))
	require.Equal(t, "abcd", s.String())
}

func TestErase_OutOfBounds(t *testing.T) {
	s, err := FromString("abc")
	require.NoError(t, err)

	require.ErrorIs(t, s.Erase(3, 1), ErrOutOfBounds)
	require.ErrorIs(t, s.Erase(-1, 1), ErrOutOfBounds)

	empty := New()
	require.ErrorIs(t, empty.Erase(0, 1), ErrOutOfBounds)
}

func TestErase_ThenReinsertRestores(t *testing.T) {
	s, err := FromString("the quick brown fox")
	require.NoError(t, err)

	cut := append([]byte(nil), s.Bytes()[4:9]...)
	require.NoError(t, s.Erase(4, 5))
	require.NoError(t, s.Insert(4, cut))
	require.Equal(t, "the quick brown fox", s.String())
}

func TestResize_FillScenarios(t *testing.T) {
	s := New()

	require.NoError(t, s.Resize(4, nil))
	require.Equal(t, "    ", s.String())

	// Fill repeats and the final repetition truncates to land exactly on n.
	require.NoError(t, s.Resize(11, []byte("xy")))
	require.Equal(t, "    xyxyxyx", s.String())

	require.NoError(t, s.Resize(5, nil))
	require.Equal(t, "    x", s.String())
}

func TestResize_RoundTripKeepsPrefix(t *testing.T) {
	s, err := FromString("abcdef")
	require.NoError(t, err)

	require.NoError(t, s.Resize(40, []byte("-")))
	require.NoError(t, s.Resize(6, nil))
	require.Equal(t, "abcdef", s.String())
}

func TestResize_Negative(t *testing.T) {
	s := New()
	require.ErrorIs(t, s.Resize(-1, nil), ErrOutOfBounds)
}

func TestSubstr(t *testing.T) {
	s, err := FromString("hello world")
	require.NoError(t, err)

	sub, err := s.Substr(6, 5)
	require.NoError(t, err)
	require.Equal(t, "world", sub.String())

	// Length clamps to the remainder.
	sub, err = s.Substr(6, 100)
	require.NoError(t, err)
	require.Equal(t, "world", sub.String())

	_, err = s.Substr(11, 1)
	require.ErrorIs(t, err, ErrOutOfBounds)

	// The copy owns its bytes.
	require.NoError(t, sub.Erase(0, 5))
	require.Equal(t, "hello world", s.String())
}

func TestModeTransition_InlineToHeapAndBack(t *testing.T) {
	s := New()

	require.NoError(t, s.AppendString(strings.Repeat("a", 15)))
	require.Equal(t, ModeInline, s.Mode())

	// Crossing the threshold moves content to the heap.
	require.NoError(t, s.AppendString(strings.Repeat("b", 5)))
	require.Equal(t, ModeHeap, s.Mode())
	require.Equal(t, 20, s.Len())
	require.Equal(t, strings.Repeat("a", 15)+strings.Repeat("b", 5), s.String())
	require.Equal(t, 32, s.Cap())
	require.True(t, s.heap.Allocated())

	// Shrinking back below the threshold releases the heap buffer.
	require.NoError(t, s.Erase(10, 10))
	require.Equal(t, ModeInline, s.Mode())
	require.False(t, s.heap.Allocated())
	require.Equal(t, strings.Repeat("a", 10), s.String())
	require.Equal(t, InlineSize, s.Cap())
}

func TestModeTransition_ExactThreshold(t *testing.T) {
	// 16 content bytes need 17 with the terminator, so they no longer fit
	// inline.
	s := New()
	require.NoError(t, s.AppendString(strings.Repeat("x", 16)))
	require.Equal(t, ModeHeap, s.Mode())

	s = New()
	require.NoError(t, s.AppendString(strings.Repeat("x", 15)))
	require.Equal(t, ModeInline, s.Mode())
}

func TestReserve_PinsCapacity(t *testing.T) {
	s := New()
	require.NoError(t, s.Reserve(100))
	require.Equal(t, ModeHeap, s.Mode())
	require.Equal(t, 128, s.Cap())

	require.NoError(t, s.AppendString("short"))
	require.NoError(t, s.Erase(0, 5))
	require.Equal(t, 128, s.Cap(), "erase must not shrink below the reservation")

	// A lower reservation never lowers the floor.
	require.NoError(t, s.Reserve(10))
	require.NoError(t, s.Resize(1, nil))
	require.NoError(t, s.Resize(0, nil))
	require.Equal(t, 128, s.Cap())
}

func TestReserve_HugeSizeFails(t *testing.T) {
	s := New()

	// An unrepresentable exponent must be rejected, not recorded as a
	// floor that would starve every later allocation.
	require.ErrorIs(t, s.Reserve(math.MaxInt), ErrNoSpace)

	require.NoError(t, s.AppendString(strings.Repeat("a", 18)))
	require.Equal(t, 18, s.Len())
	require.Equal(t, ModeHeap, s.Mode())
	require.GreaterOrEqual(t, s.Cap(), s.Len()+1)
}

func TestResize_HugeSizeFails(t *testing.T) {
	s, err := FromString("keep")
	require.NoError(t, err)

	// n+1 would wrap; the request fails cleanly with prior state intact.
	require.ErrorIs(t, s.Resize(math.MaxInt, nil), ErrNoSpace)
	require.Equal(t, "keep", s.String())
	require.Equal(t, ModeInline, s.Mode())
	require.GreaterOrEqual(t, s.Cap(), s.Len()+1)

	// One short of wrapping still overflows the exponent range.
	require.ErrorIs(t, s.Resize(math.MaxInt-1, nil), ErrNoSpace)
	require.Equal(t, "keep", s.String())
}

func TestReserve_NoReallocWhenSufficient(t *testing.T) {
	s := New()
	require.NoError(t, s.Reserve(8))
	require.Equal(t, ModeInline, s.Mode())
	require.Equal(t, InlineSize, s.Cap())
}

func TestEqual(t *testing.T) {
	a, err := FromString("same content")
	require.NoError(t, err)
	b, err := FromString("same content")
	require.NoError(t, err)
	c, err := FromString("other content")
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	// Equality is about content, not storage mode.
	big, err := FromString(strings.Repeat("q", 30))
	require.NoError(t, err)
	require.NoError(t, big.Erase(4, 26))
	small, err := FromString("qqqq")
	require.NoError(t, err)
	require.True(t, big.Equal(small))
}

func TestClone_DeepCopies(t *testing.T) {
	s, err := FromString(strings.Repeat("c", 25))
	require.NoError(t, err)

	c := s.Clone()
	require.True(t, s.Equal(c))

	require.NoError(t, c.Erase(0, 20))
	require.Equal(t, 25, s.Len())
}

func TestRelease(t *testing.T) {
	s, err := FromString(strings.Repeat("r", 40))
	require.NoError(t, err)
	require.NoError(t, s.Reserve(64))
	require.Equal(t, ModeHeap, s.Mode())

	s.Release()
	require.Equal(t, ModeInline, s.Mode())
	require.Equal(t, 0, s.Len())
	require.False(t, s.heap.Allocated())

	// Still usable, and the reservation floor is gone.
	require.NoError(t, s.AppendString("again"))
	require.Equal(t, "again", s.String())
	require.Equal(t, InlineSize, s.Cap())
}

func TestCapacityLimit_RollsBack(t *testing.T) {
	s := NewWithConfig(Config{ShrinkRatio: 4, MaxCapacity: 32})
	require.NoError(t, s.AppendString("keep me"))

	err := s.AppendString(strings.Repeat("x", 40))
	require.ErrorIs(t, err, ErrNoSpace)
	require.Equal(t, "keep me", s.String())
	require.Equal(t, ModeInline, s.Mode())

	require.ErrorIs(t, s.Resize(60, nil), ErrNoSpace)
	require.ErrorIs(t, s.Reserve(100), ErrNoSpace)
	require.Equal(t, "keep me", s.String())
}

func TestBytes_ViewUntilNextMutation(t *testing.T) {
	s, err := FromString("abc")
	require.NoError(t, err)

	view := s.Bytes()
	require.Equal(t, "abc", string(view))

	// After a mutation the view may be stale; the accessors are current.
	require.NoError(t, s.AppendString(strings.Repeat("z", 30)))
	require.Equal(t, "abc"+strings.Repeat("z", 30), s.String())
}

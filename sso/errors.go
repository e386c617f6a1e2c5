package sso

import "errors"

var (
	// ErrOutOfBounds indicates an index parameter outside the valid range for
	// the target operation. Length parameters are clamped instead and never
	// produce this error.
	ErrOutOfBounds = errors.New("sso: index out of bounds")

	// ErrNoSpace indicates that satisfying an allocation would exceed the
	// configured capacity limit or the addressable exponent range. The
	// container is left in its prior state.
	ErrNoSpace = errors.New("sso: allocation exceeds capacity limit")

	// ErrStaleRef indicates a Ref whose range no longer lies within its base
	// string, typically because the base shrank after the Ref was taken.
	ErrStaleRef = errors.New("sso: reference no longer within bounds of base")
)

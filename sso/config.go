package sso

// InlineSize is the capacity of the embedded inline buffer in bytes. Content
// up to InlineSize-1 bytes (plus the terminator) is stored without any heap
// allocation. It sizes the array embedded in every String, so it is a
// compile-time constant rather than a Config field.
const InlineSize = 16

// Config defines the growth/shrink strategy for a String or a standalone
// Allocator. Different configurations trade reallocation churn against
// retained memory.
type Config struct {
	// Name for this configuration (for benchmarking and diagnostics).
	Name string

	// ShrinkRatio controls when a shrink request actually reallocates: the
	// buffer shrinks only once allocated capacity reaches ShrinkRatio times
	// the requested size. 0 disables shrinking entirely.
	ShrinkRatio int

	// MaxCapacity caps the heap buffer size in bytes. Requests beyond it
	// fail with ErrNoSpace. 0 means unlimited.
	MaxCapacity int
}

// Predefined configurations.
var (
	// ConfigDefault shrinks lazily (4x hysteresis), which avoids thrashing
	// when content length oscillates around a power-of-two boundary.
	ConfigDefault = Config{
		Name:        "Default",
		ShrinkRatio: 4,
	}

	// ConfigTight returns memory eagerly (2x hysteresis), for workloads that
	// hold many strings whose peak size far exceeds their steady state.
	ConfigTight = Config{
		Name:        "Tight",
		ShrinkRatio: 2,
	}

	// ConfigNoShrink never releases capacity short of an explicit Release.
	ConfigNoShrink = Config{
		Name: "NoShrink",
	}

	// DefaultConfig is used when no configuration is specified.
	DefaultConfig = ConfigDefault
)

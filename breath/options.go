package breath

import "time"

const (
	// DefaultDoubleClickWindow is the longest gap between two clicks that
	// still counts as a double-click.
	DefaultDoubleClickWindow = 500 * time.Millisecond

	// DefaultLockStep is added to the lock for every toggle while waiting.
	DefaultLockStep = time.Second

	// DimAlpha is the text opacity while a second click is awaited.
	DimAlpha = 0.5

	holdFactor = 4
	lockFactor = 4
)

// Option configures a Cycle.
type Option func(*Cycle)

// WithDoubleClickWindow overrides the double-click window. Non-positive
// values are ignored.
func WithDoubleClickWindow(d time.Duration) Option {
	return func(c *Cycle) {
		if d > 0 {
			c.window = d
		}
	}
}

// WithLockStep overrides the amount a toggle adds to the lock while waiting.
// Non-positive values are ignored.
func WithLockStep(d time.Duration) Option {
	return func(c *Cycle) {
		if d > 0 {
			c.lockStep = d
		}
	}
}

// WithLock starts the cycle with a preset lock, as if the lock control had
// been operated while waiting. The lock still clears when a session stops.
func WithLock(d time.Duration) Option {
	return func(c *Cycle) {
		if d > 0 {
			c.locked = d
		}
	}
}

// Package breath implements the breathing cycle behind a single panel. The
// cycle is a double-click operated state machine that moves from waiting to
// breathing, holding and exhaling, and loops back to breathing until it is
// stopped.
//
// All timestamps are offsets on a monotonic frame clock supplied by the
// caller. A Cycle is not safe for concurrent use; it is meant to be driven
// from a single render loop.
package breath

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/breathe/internal/timeutil"
)

// Cycle is the state machine of one breathing panel.
type Cycle struct {
	phase    phase
	breaths  int
	locked   time.Duration
	lastHold time.Duration

	window    time.Duration
	lockStep  time.Duration
	lastClick time.Duration
	pending   bool
}

// Frame is what a panel displays after a tick.
type Frame struct {
	State    State
	Progress float64
	Text     string
	Breaths  int
	Locked   time.Duration
	// LockLabel is empty while the lock icon should be shown, and holds the
	// lock amount in seconds otherwise.
	LockLabel     string
	LockAvailable bool
	// Dimmed is set while the first click of a potential double-click is
	// awaiting its pair.
	Dimmed bool
}

// Alpha is the opacity of the status text.
func (f Frame) Alpha() float64 {
	if f.Dimmed {
		return DimAlpha
	}

	return 1
}

// New returns a cycle in the waiting state.
func New(opts ...Option) *Cycle {
	c := &Cycle{
		phase:    waiting{},
		window:   DefaultDoubleClickWindow,
		lockStep: DefaultLockStep,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.lastClick = -c.window

	return c
}

// State returns the current phase.
func (c *Cycle) State() State {
	return c.phase.state()
}

// Breaths returns the number of completed breaths since the cycle last
// entered the waiting state.
func (c *Cycle) Breaths() int {
	return c.breaths
}

// Locked returns the fixed breathing length, or zero when unlocked.
func (c *Cycle) Locked() time.Duration {
	return c.locked
}

// Pending reports whether a single click is waiting for its pair.
func (c *Cycle) Pending() bool {
	return c.pending
}

// Activate registers a raw click at now. Two clicks less than the
// double-click window apart advance the cycle, in which case Activate
// returns true.
func (c *Cycle) Activate(now time.Duration) bool {
	if now-c.lastClick < c.window {
		c.advance(now)
		// a third rapid click must not pair with the second one
		c.lastClick = now - c.window
		c.pending = false

		return true
	}

	c.lastClick = now
	c.pending = true

	return false
}

// ToggleLock operates the lock control. While waiting it grows the lock by
// one step. Once a session runs, it releases an existing lock, or, while
// breathing, locks the breath to a quarter of the previous hold. The previous
// hold survives a stop, so a restarted session can lock straight away.
func (c *Cycle) ToggleLock() {
	switch c.phase.(type) {
	case waiting:
		c.locked += c.lockStep
	case breathing:
		if c.locked > 0 {
			c.locked = 0
			return
		}

		c.locked = c.lastHold / lockFactor
	case holding, exhaling:
		c.locked = 0
	default:
		unreachable(c.phase)
	}
}

// Tick advances the cycle to now and returns what should be displayed.
func (c *Cycle) Tick(now time.Duration) Frame {
	if c.pending && now-c.lastClick > c.window {
		c.pending = false
	}

	c.expire(now)

	return c.frame(now)
}

// Deadline returns the instant the current phase times out. Waiting and
// unlocked breathing only end on a double-click and report false. The
// transition fires on the first Tick strictly after the deadline.
func (c *Cycle) Deadline() (time.Duration, bool) {
	switch p := c.phase.(type) {
	case waiting:
	case breathing:
		if c.locked > 0 {
			return p.start + c.locked, true
		}
	case holding:
		return p.start + p.hold, true
	case exhaling:
		return p.start + p.exhale, true
	default:
		unreachable(p)
	}

	return 0, false
}

func (c *Cycle) advance(now time.Duration) {
	switch p := c.phase.(type) {
	case waiting:
		c.phase = breathing{start: now}
	case breathing:
		c.hold(p, now)
	case holding, exhaling:
		c.reset()
	default:
		unreachable(p)
	}
}

func (c *Cycle) hold(b breathing, now time.Duration) {
	h := holdFactor * (now - b.start)

	c.lastHold = h
	c.phase = holding{start: now, hold: h}
}

func (c *Cycle) reset() {
	c.phase = waiting{}
	c.breaths = 0
	c.locked = 0
}

// expire applies timeout transitions until the phase settles. Breathing
// restarts at now, so a single call completes at most one breath however
// far now has jumped.
func (c *Cycle) expire(now time.Duration) {
	for {
		switch p := c.phase.(type) {
		case waiting:
			return
		case breathing:
			if c.locked <= 0 || now <= p.start+c.locked {
				return
			}

			c.hold(p, now)
		case holding:
			if elapsed(now, p.start, p.hold) <= 1 {
				return
			}

			c.phase = exhaling{start: p.start + p.hold, exhale: p.hold / 2}
		case exhaling:
			if elapsed(now, p.start, p.exhale) <= 1 {
				return
			}

			c.breaths++
			c.phase = breathing{start: now}
		default:
			unreachable(p)
		}
	}
}

func (c *Cycle) lockAvailable() bool {
	if c.phase.state() == Waiting {
		return true
	}

	return c.locked > 0 || c.lastHold > 0
}

func (c *Cycle) frame(now time.Duration) Frame {
	f := Frame{
		State:         c.phase.state(),
		Breaths:       c.breaths,
		Locked:        c.locked,
		LockAvailable: c.lockAvailable(),
		Dimmed:        c.pending,
	}

	if c.locked > 0 {
		f.LockLabel = timeutil.FormatSeconds(c.locked)
	}

	switch p := c.phase.(type) {
	case waiting:
		f.Text = "Ready?"
	case breathing:
		if c.locked <= 0 {
			f.Text = fmt.Sprintf("Breathe\n%d", c.breaths)
			break
		}

		f.Progress = clamp(elapsed(now, p.start, c.locked))
		f.Text = fmt.Sprintf(
			"Breathe [%d]\n%d",
			c.breaths,
			timeutil.RoundSeconds(p.start+c.locked-now),
		)
	case holding:
		f.Progress = clamp(elapsed(now, p.start, p.hold))
		f.Text = fmt.Sprintf(
			"Hold! [%d]\n%d",
			c.breaths,
			timeutil.RoundSeconds(p.start+p.hold-now),
		)
	case exhaling:
		f.Progress = clamp(1 - elapsed(now, p.start, p.exhale))
		f.Text = fmt.Sprintf(
			"Exhale [%d]\n%d",
			c.breaths,
			timeutil.RoundSeconds(p.start+p.exhale-now),
		)
	default:
		unreachable(p)
	}

	return f
}

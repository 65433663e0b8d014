package breath

import (
	"fmt"
	"math"
	"time"
)

// State names the phase a cycle is in.
type State int

const (
	Waiting State = iota
	Breathing
	Holding
	Exhaling
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "Waiting"
	case Breathing:
		return "Breathing"
	case Holding:
		return "Holding"
	case Exhaling:
		return "Exhaling"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// phase holds only the timestamps that are meaningful for the current state.
type phase interface {
	state() State
}

type waiting struct{}

type breathing struct {
	start time.Duration
}

type holding struct {
	start time.Duration
	hold  time.Duration
}

// exhaling begins where the hold ends, not when the timeout is observed.
type exhaling struct {
	start  time.Duration
	exhale time.Duration
}

func (waiting) state() State   { return Waiting }
func (breathing) state() State { return Breathing }
func (holding) state() State   { return Holding }
func (exhaling) state() State  { return Exhaling }

func unreachable(p phase) {
	panic(fmt.Sprintf("breath: unreachable phase %T", p))
}

// elapsed reports the fraction of d that has passed since start. A phase
// with no length is always over.
func elapsed(now, start, d time.Duration) float64 {
	if d <= 0 {
		return math.Inf(1)
	}

	return float64(now-start) / float64(d)
}

func clamp(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}

	if f > 1 {
		return 1
	}

	return f
}

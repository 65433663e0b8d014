// Package cue plays the sounds, notifications and commands that accompany
// phase changes.
package cue

import (
	"fmt"
	"log/slog"

	"github.com/ayoisaiah/breathe/breath"
	"github.com/ayoisaiah/breathe/internal/apperr"
)

var errInvalidSessionCmd = &apperr.Error{
	Message: "unable to parse session command",
}

// Player plays a short tone.
type Player interface {
	Play(freq float64) error
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, msg string) error
}

// Runner executes the session command.
type Runner interface {
	Run(cmd string) error
}

// Event describes a state change of one panel. Completed is set when the
// change finished a breath, even if the exhale was skipped over between two
// frames.
type Event struct {
	From      breath.State
	To        breath.State
	Panel     int
	Breaths   int
	Completed bool
}

// NewEvent describes the change between two frames of a panel. When the
// session stops, the breath count is the one from before the reset.
func NewEvent(panel int, from, to breath.Frame) Event {
	breaths := to.Breaths
	if to.State == breath.Waiting {
		breaths = from.Breaths
	}

	return Event{
		From:      from.State,
		To:        to.State,
		Panel:     panel,
		Breaths:   breaths,
		Completed: to.Breaths > from.Breaths,
	}
}

// Opts controls which cues are enabled.
type Opts struct {
	SessionCmd  string
	NotifyEvery int
	Sound       bool
	Notify      bool
}

// Cues turns state changes into tones, notifications and commands.
type Cues struct {
	player   Player
	notifier Notifier
	runner   Runner
	opts     Opts
}

// New returns Cues backed by the speaker, the desktop notifier and the
// shell.
func New(opts Opts) *Cues {
	return &Cues{
		opts:     opts,
		player:   &Speaker{},
		notifier: &Desktop{},
		runner:   &Shell{},
	}
}

// phase tones, in Hz
var tones = map[breath.State]float64{
	breath.Breathing: 523.25,
	breath.Holding:   659.25,
	breath.Exhaling:  392.00,
}

// Handle fires every cue due for e. Failures are logged and otherwise
// ignored so a missing audio device never interrupts a session.
func (c *Cues) Handle(e Event) {
	if c.opts.Sound {
		if freq, ok := tones[e.To]; ok {
			if err := c.player.Play(freq); err != nil {
				slog.Warn("unable to play tone", slog.Any("error", err))
			}
		}
	}

	if c.opts.Notify && c.opts.NotifyEvery > 0 && completedBreath(e) &&
		e.Breaths%c.opts.NotifyEvery == 0 {
		title := fmt.Sprintf("Panel %d", e.Panel)
		msg := fmt.Sprintf("%d breaths completed", e.Breaths)

		if err := c.notifier.Notify(title, msg); err != nil {
			slog.Warn("unable to display notification", slog.Any("error", err))
		}
	}

	if c.opts.SessionCmd != "" && SessionEnded(e) {
		if err := c.runner.Run(c.opts.SessionCmd); err != nil {
			slog.Warn("session command failed", slog.Any("error", err))
		}
	}
}

func completedBreath(e Event) bool {
	return e.Completed
}

// SessionEnded reports whether e stops a session in which at least one
// breath was completed.
func SessionEnded(e Event) bool {
	if e.To != breath.Waiting || e.Breaths == 0 {
		return false
	}

	return e.From == breath.Holding || e.From == breath.Exhaling
}

// Package tui renders the breathing panels in the terminal and feeds them
// with frames, clicks and key presses.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/breathe/breath"
	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/cue"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/panel"
)

// frameMsg is delivered by the frame clock.
type frameMsg time.Time

// ConfigMsg carries a configuration that was reloaded from disk.
type ConfigMsg struct {
	Cfg *config.Config
	Err error
}

// Model is the bubbletea model of the panel row.
type Model struct {
	origin    time.Time
	last      time.Duration
	deck      *panel.Deck
	cues      *cue.Cues
	clock     func() time.Time
	textColor string
	help      help.Model
	interval  time.Duration
	focus     int
	debug     bool
}

// New creates the model for cfg. cues may be nil to disable all cues.
func New(cfg *config.Config, cues *cue.Cues) *Model {
	opts := []breath.Option{
		breath.WithDoubleClickWindow(cfg.Breath.DoubleClickWindow),
		breath.WithLockStep(cfg.Breath.LockStep),
		breath.WithLock(cfg.CLI.Lock),
	}

	return &Model{
		origin:    time.Now(),
		clock:     time.Now,
		deck:      panel.NewDeck(cfg.Breath.Panels, cfg.Display.Colors, opts...),
		cues:      cues,
		textColor: cfg.Display.TextColor,
		help:      help.New(),
		interval:  cfg.FrameInterval(),
		debug:     cfg.CLI.Debug,
	}
}

// Deck exposes the panels driven by the model.
func (m *Model) Deck() *panel.Deck {
	return m.deck
}

// Focus returns the position of the focused panel.
func (m *Model) Focus() int {
	return m.focus
}

// since converts a wall clock reading to the frame clock.
func (m *Model) since(t time.Time) time.Duration {
	return timeutil.Since(m.origin, t)
}

// advance moves the frame clock to t. Frame messages queued before a click
// may carry an older timestamp, so the clock never goes backwards.
func (m *Model) advance(t time.Time) time.Duration {
	m.last = max(m.last, m.since(t))

	return m.last
}

func (m *Model) now() time.Duration {
	return m.advance(m.clock())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

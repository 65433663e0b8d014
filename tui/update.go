package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/breathe/internal/cue"
	"github.com/ayoisaiah/breathe/internal/ui"
)

// handleFrame ticks every panel and schedules the cues of the panels that
// changed state.
func (m *Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.tick()}

	for _, tr := range m.deck.Tick(m.advance(t)) {
		slog.Debug(
			"phase change",
			slog.Int("panel", tr.Panel.ID),
			slog.String("from", tr.From.State.String()),
			slog.String("to", tr.Panel.Frame.State.String()),
		)

		if m.debug {
			slog.Debug(spew.Sdump(tr.Panel.Frame))
		}

		if m.cues != nil {
			e := cue.NewEvent(tr.Panel.ID, tr.From, tr.Panel.Frame)
			cmds = append(cmds, m.cueCmd(e))
		}
	}

	return m, tea.Batch(cmds...)
}

// cueCmd runs cues off the update loop.
func (m *Model) cueCmd(e cue.Event) tea.Cmd {
	c := m.cues

	return func() tea.Msg {
		c.Handle(e)
		return nil
	}
}

func (m *Model) handleConfig(msg ConfigMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		slog.Warn("ignoring invalid config change", slog.Any("error", msg.Err))
		return m, nil
	}

	m.deck.SetPalette(msg.Cfg.Display.Colors)
	m.textColor = msg.Cfg.Display.TextColor
	ui.DarkTheme = msg.Cfg.Display.DarkTheme

	slog.Info("config reloaded")

	return m, nil
}

func (m *Model) activate(i int) {
	advanced, err := m.deck.Activate(i, m.now())
	if err != nil {
		slog.Error("click on missing panel", slog.Any("error", err))
		return
	}

	if advanced {
		slog.Debug("double-click", slog.Int("panel", i))
	}
}

func (m *Model) setFocus(i int) {
	n := m.deck.Len()

	m.focus = ((i % n) + n) % n
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.click):
		m.activate(m.focus)

	case key.Matches(msg, defaultKeymap.lock):
		if err := m.deck.ToggleLock(m.focus); err != nil {
			slog.Error("lock on missing panel", slog.Any("error", err))
		}

	case key.Matches(msg, defaultKeymap.duplicate):
		p := m.deck.Duplicate()
		p.Frame = p.Cycle.Tick(m.now())
		m.setFocus(m.deck.Len() - 1)

	case key.Matches(msg, defaultKeymap.remove):
		if err := m.deck.Remove(m.focus); err != nil {
			slog.Debug("panel not removed", slog.Any("error", err))
			break
		}

		m.setFocus(min(m.focus, m.deck.Len()-1))

	case key.Matches(msg, defaultKeymap.prev):
		m.setFocus(m.focus - 1)

	case key.Matches(msg, defaultKeymap.next):
		m.setFocus(m.focus + 1)

	case key.Matches(msg, defaultKeymap.help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return m, nil
}

// handleMouse treats a left click on a panel as a click on its button.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	i, ok := panelAt(msg.X, msg.Y, m.deck.Len())
	if !ok {
		return m, nil
	}

	m.setFocus(i)
	m.activate(i)

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case ConfigMsg:
		return m.handleConfig(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil
	}

	return m, nil
}

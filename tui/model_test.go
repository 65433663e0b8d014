package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/breathe/breath"
	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/panel"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testConfig(panels int) *config.Config {
	return &config.Config{
		Breath: config.BreathConfig{
			DoubleClickWindow: breath.DefaultDoubleClickWindow,
			LockStep:          breath.DefaultLockStep,
			Panels:            panels,
		},
		Display: config.DisplayConfig{
			TextColor: "#FFFFFF",
			Colors:    panel.DefaultPalette,
			FrameRate: 30,
			DarkTheme: true,
		},
	}
}

func newTestModel(t *testing.T, panels int) (*Model, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}

	m := New(testConfig(panels), nil)
	m.origin = clock.t
	m.clock = clock.now

	return m, clock
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (m *Model) send(msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func (m *Model) frame(clock *fakeClock) {
	m.send(frameMsg(clock.t))
}

func TestDoubleClickStartsBreathing(t *testing.T) {
	m, clock := newTestModel(t, 1)

	m.send(keyPress(" "))
	clock.advance(200 * time.Millisecond)
	m.send(keyPress(" "))
	m.frame(clock)

	p, err := m.Deck().Panel(0)
	require.NoError(t, err)

	assert.Equal(t, breath.Breathing, p.Frame.State)
	assert.Equal(t, "Breathe\n0", p.Frame.Text)
}

func TestSlowClicksDoNotAdvance(t *testing.T) {
	m, clock := newTestModel(t, 1)

	m.send(keyPress(" "))
	m.frame(clock)

	p, err := m.Deck().Panel(0)
	require.NoError(t, err)

	assert.True(t, p.Frame.Dimmed)

	clock.advance(time.Second)
	m.send(keyPress("enter"))
	m.frame(clock)

	assert.Equal(t, breath.Waiting, p.Frame.State)
}

func TestClickOnlyReachesFocusedPanel(t *testing.T) {
	m, clock := newTestModel(t, 2)

	m.send(keyPress("right"))
	require.Equal(t, 1, m.Focus())

	m.send(keyPress(" "))
	clock.advance(100 * time.Millisecond)
	m.send(keyPress(" "))
	m.frame(clock)

	panels := m.Deck().Panels()

	assert.Equal(t, breath.Waiting, panels[0].Frame.State)
	assert.Equal(t, breath.Breathing, panels[1].Frame.State)
}

func TestLockKeyWhileWaiting(t *testing.T) {
	m, clock := newTestModel(t, 1)

	for i := 0; i < 3; i++ {
		m.send(keyPress("l"))
	}

	m.frame(clock)

	p, err := m.Deck().Panel(0)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, p.Frame.Locked)
	assert.Equal(t, lockedIcon+" 3", lockView(p.Frame))
}

func TestFocusWraps(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m.send(keyPress("left"))
	assert.Equal(t, 2, m.Focus())

	m.send(keyPress("tab"))
	assert.Equal(t, 0, m.Focus())
}

func TestDuplicateAndRemove(t *testing.T) {
	m, _ := newTestModel(t, 1)

	m.send(keyPress("n"))
	m.send(keyPress("n"))

	require.Equal(t, 3, m.Deck().Len())
	assert.Equal(t, 2, m.Focus())

	m.send(keyPress("x"))

	assert.Equal(t, 2, m.Deck().Len())
	assert.Equal(t, 1, m.Focus())

	m.send(keyPress("x"))
	m.send(keyPress("x"))

	assert.Equal(t, 1, m.Deck().Len())
	assert.Equal(t, 0, m.Focus())
}

func TestDuplicateDoesNotCopyState(t *testing.T) {
	m, clock := newTestModel(t, 1)

	m.send(keyPress(" "))
	m.send(keyPress(" "))
	m.frame(clock)
	m.send(keyPress("n"))
	m.frame(clock)

	panels := m.Deck().Panels()

	require.Len(t, panels, 2)
	assert.Equal(t, breath.Breathing, panels[0].Frame.State)
	assert.Equal(t, breath.Waiting, panels[1].Frame.State)
}

func TestMouseClickActivatesPanel(t *testing.T) {
	m, clock := newTestModel(t, 2)

	click := tea.MouseMsg{
		X:      panelWidth + 3,
		Y:      2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}

	m.send(click)
	clock.advance(50 * time.Millisecond)
	m.send(click)
	m.frame(clock)

	assert.Equal(t, 1, m.Focus())
	assert.Equal(t, breath.Breathing, m.Deck().Panels()[1].Frame.State)
}

func TestPanelAt(t *testing.T) {
	cases := []struct {
		x, y int
		want int
		ok   bool
	}{
		{0, 0, 0, true},
		{panelWidth - 1, 3, 0, true},
		{panelWidth, 3, 1, true},
		{2 * panelWidth, 3, 0, false},
		{1, panelHeight, 0, false},
		{-1, 0, 0, false},
	}

	for _, tc := range cases {
		got, ok := panelAt(tc.x, tc.y, 2)

		assert.Equal(t, tc.ok, ok, "x=%d y=%d", tc.x, tc.y)
		assert.Equal(t, tc.want, got, "x=%d y=%d", tc.x, tc.y)
	}
}

func TestLockView(t *testing.T) {
	assert.Empty(t, lockView(breath.Frame{}))
	assert.Equal(t, unlockedIcon, lockView(breath.Frame{LockAvailable: true}))
	assert.Equal(
		t,
		lockedIcon+" 2.5",
		lockView(breath.Frame{LockAvailable: true, LockLabel: "2.5"}),
	)
}

func TestConfigMsgUpdatesPalette(t *testing.T) {
	m, _ := newTestModel(t, 2)

	cfg := testConfig(2)
	cfg.Display.Colors = []string{"#112233"}
	cfg.Display.TextColor = "#000000"

	m.send(ConfigMsg{Cfg: cfg})

	assert.Equal(t, "#112233", m.Deck().Color(1))
	assert.Equal(t, "#000000", m.textColor)

	m.send(ConfigMsg{Err: assert.AnError})

	assert.Equal(t, "#112233", m.Deck().Color(0))
}

func TestViewRendersEveryPanel(t *testing.T) {
	m, clock := newTestModel(t, 3)

	m.frame(clock)

	out := m.View()

	assert.Equal(t, 3, strings.Count(out, "Ready?"))
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, 1)

	assert.NotNil(t, m.send(keyPress("q")))
}

func TestStaleFrameDoesNotRewindClock(t *testing.T) {
	m, clock := newTestModel(t, 1)

	m.send(keyPress("l"))

	stale := clock.t.Add(500 * time.Millisecond)

	clock.advance(time.Second)
	m.send(keyPress(" "))
	clock.advance(100 * time.Millisecond)
	m.send(keyPress(" "))

	// queued before the clicks were handled
	m.send(frameMsg(stale))

	p, err := m.Deck().Panel(0)
	require.NoError(t, err)

	require.Equal(t, breath.Breathing, p.Frame.State)
	assert.Equal(t, "Breathe [0]\n1", p.Frame.Text)
	assert.Equal(t, 1100*time.Millisecond, m.last)
}

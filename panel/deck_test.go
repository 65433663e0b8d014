package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/breathe/breath"
)

func TestNewDeckKeepsAtLeastOnePanel(t *testing.T) {
	d := NewDeck(0, nil)

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, DefaultPalette, d.Palette())
}

func TestDuplicateAppendsFreshPanel(t *testing.T) {
	d := NewDeck(1, nil)

	first, err := d.Panel(0)
	require.NoError(t, err)

	first.Cycle.Activate(0)
	first.Cycle.Activate(100 * time.Millisecond)
	require.Equal(t, breath.Breathing, first.Cycle.State())

	p := d.Duplicate()

	assert.Equal(t, 2, d.Len())
	assert.Same(t, p, d.Panels()[1])
	assert.NotEqual(t, first.ID, p.ID)
	assert.Equal(t, breath.Waiting, p.Cycle.State())
	assert.Equal(t, "Ready?", p.Frame.Text)
}

func TestDuplicateUsesDeckOptions(t *testing.T) {
	d := NewDeck(1, nil, breath.WithLockStep(3*time.Second))

	p := d.Duplicate()
	p.Cycle.ToggleLock()

	assert.Equal(t, 3*time.Second, p.Cycle.Locked())
}

func TestRemove(t *testing.T) {
	d := NewDeck(3, nil)
	ids := []int{d.Panels()[0].ID, d.Panels()[2].ID}

	require.NoError(t, d.Remove(1))
	assert.Equal(t, ids, []int{d.Panels()[0].ID, d.Panels()[1].ID})

	assert.ErrorIs(t, d.Remove(5), errNoSuchPanel)
	assert.ErrorIs(t, d.Remove(-1), errNoSuchPanel)

	require.NoError(t, d.Remove(0))
	assert.ErrorIs(t, d.Remove(0), errLastPanel)
	assert.Equal(t, 1, d.Len())
}

func TestColorBySiblingPosition(t *testing.T) {
	palette := []string{"#111111", "#222222", "#333333"}
	d := NewDeck(5, palette)

	want := []string{"#111111", "#222222", "#333333", "#111111", "#222222"}

	for i := 0; i < d.Len(); i++ {
		assert.Equal(t, want[i], d.Color(i), "panel %d", i)
	}
}

func TestColorFollowsPositionAfterRemoval(t *testing.T) {
	d := NewDeck(3, []string{"#111111", "#222222"})

	require.NoError(t, d.Remove(0))

	assert.Equal(t, "#111111", d.Color(0))
	assert.Equal(t, "#222222", d.Color(1))
}

func TestSetPalette(t *testing.T) {
	d := NewDeck(2, nil)

	palette := []string{"#ABCDEF"}
	d.SetPalette(palette)
	palette[0] = "#000000"

	assert.Equal(t, "#ABCDEF", d.Color(1))

	d.SetPalette(nil)
	assert.Equal(t, DefaultPalette[1], d.Color(1))
}

func TestColorAt(t *testing.T) {
	assert.Equal(t, DefaultPalette[0], ColorAt(nil, 0))
	assert.Equal(t, "#2", ColorAt([]string{"#1", "#2"}, -1))
}

func TestTickReportsTransitions(t *testing.T) {
	d := NewDeck(2, nil)

	assert.Empty(t, d.Tick(0))

	_, err := d.Activate(1, 0)
	require.NoError(t, err)

	advanced, err := d.Activate(1, 200*time.Millisecond)
	require.NoError(t, err)
	require.True(t, advanced)

	changed := d.Tick(300 * time.Millisecond)
	require.Len(t, changed, 1)
	assert.Equal(t, d.Panels()[1], changed[0].Panel)
	assert.Equal(t, breath.Waiting, changed[0].From.State)
	assert.Equal(t, breath.Breathing, changed[0].Panel.Frame.State)

	assert.Empty(t, d.Tick(400*time.Millisecond))
}

func TestRoutingToMissingPanel(t *testing.T) {
	d := NewDeck(1, nil)

	_, err := d.Activate(4, 0)
	assert.ErrorIs(t, err, errNoSuchPanel)
	assert.ErrorIs(t, d.ToggleLock(4), errNoSuchPanel)

	require.NoError(t, d.ToggleLock(0))
	assert.Equal(t, time.Second, d.Panels()[0].Cycle.Locked())
}

// Package panel manages the row of breathing panels shown side by side:
// duplicating the template panel, removing panels and assigning each one a
// colour from the palette by its position.
package panel

import (
	"time"

	"github.com/ayoisaiah/breathe/breath"
	"github.com/ayoisaiah/breathe/internal/apperr"
)

var (
	errNoSuchPanel = &apperr.Error{
		Message: "panel %d does not exist",
	}

	errLastPanel = &apperr.Error{
		Message: "the last panel cannot be removed",
	}
)

// DefaultPalette is used whenever an empty palette is supplied.
var DefaultPalette = []string{
	"#B0DB43",
	"#12EAEA",
	"#C492B1",
	"#F4D35E",
	"#EE964B",
}

// Panel is one breathing widget.
type Panel struct {
	Cycle *breath.Cycle
	// Frame is the output of the most recent tick.
	Frame breath.Frame
	ID    int
}

// Deck is an ordered set of sibling panels created from the same template.
type Deck struct {
	opts    []breath.Option
	panels  []*Panel
	palette []string
	nextID  int
}

// NewDeck returns a deck with n panels (at least one).
func NewDeck(n int, palette []string, opts ...breath.Option) *Deck {
	d := &Deck{
		opts: opts,
	}

	d.SetPalette(palette)

	if n < 1 {
		n = 1
	}

	for i := 0; i < n; i++ {
		d.Duplicate()
	}

	return d
}

// Duplicate instantiates a new panel from the template and appends it as the
// last sibling.
func (d *Deck) Duplicate() *Panel {
	d.nextID++

	p := &Panel{
		ID:    d.nextID,
		Cycle: breath.New(d.opts...),
	}

	p.Frame = p.Cycle.Tick(0)

	d.panels = append(d.panels, p)

	return p
}

// Remove drops the panel at position i. The deck always keeps one panel.
func (d *Deck) Remove(i int) error {
	if i < 0 || i >= len(d.panels) {
		return errNoSuchPanel.Fmt(i)
	}

	if len(d.panels) == 1 {
		return errLastPanel
	}

	d.panels = append(d.panels[:i], d.panels[i+1:]...)

	return nil
}

// Len returns the number of panels.
func (d *Deck) Len() int {
	return len(d.panels)
}

// Panel returns the panel at position i.
func (d *Deck) Panel(i int) (*Panel, error) {
	if i < 0 || i >= len(d.panels) {
		return nil, errNoSuchPanel.Fmt(i)
	}

	return d.panels[i], nil
}

// Panels returns the panels in sibling order.
func (d *Deck) Panels() []*Panel {
	return d.panels
}

// SetPalette replaces the colour list. Colours are recomputed on the next
// call to Color.
func (d *Deck) SetPalette(palette []string) {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	d.palette = append([]string(nil), palette...)
}

// Palette returns the colour list.
func (d *Deck) Palette() []string {
	return d.palette
}

// Color returns the colour of the panel at sibling position i.
func (d *Deck) Color(i int) string {
	return ColorAt(d.palette, i)
}

// ColorAt picks palette[i mod len(palette)].
func ColorAt(palette []string, i int) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	i %= len(palette)
	if i < 0 {
		i += len(palette)
	}

	return palette[i]
}

// Activate delivers a raw click to panel i.
func (d *Deck) Activate(i int, now time.Duration) (bool, error) {
	p, err := d.Panel(i)
	if err != nil {
		return false, err
	}

	return p.Cycle.Activate(now), nil
}

// ToggleLock operates the lock control of panel i.
func (d *Deck) ToggleLock(i int) error {
	p, err := d.Panel(i)
	if err != nil {
		return err
	}

	p.Cycle.ToggleLock()

	return nil
}

// Transition records a panel whose state changed during a tick.
type Transition struct {
	Panel *Panel
	From  breath.Frame
}

// Tick advances every panel to now and reports the panels whose state
// changed.
func (d *Deck) Tick(now time.Duration) []Transition {
	var changed []Transition

	for _, p := range d.panels {
		prev := p.Frame
		p.Frame = p.Cycle.Tick(now)

		if prev.State != p.Frame.State {
			changed = append(changed, Transition{Panel: p, From: prev})
		}
	}

	return changed
}

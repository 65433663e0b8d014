package config

import (
	"regexp"
	"time"
)

var (
	minDoubleClickWindow = 100 * time.Millisecond
	maxDoubleClickWindow = 2 * time.Second

	minLockStep = 100 * time.Millisecond
	maxLockStep = time.Minute

	minPanels    = 1
	maxPanels    = 12
	minFrameRate = 1
	maxFrameRate = 120

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateBreath(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	if c.Cues.Notify && c.Cues.NotifyEvery < 1 {
		return errInvalidRange.Fmt("notify_every", 1, 1000, c.Cues.NotifyEvery)
	}

	return nil
}

func (c *Config) validateBreath() error {
	b := c.Breath

	if b.DoubleClickWindow < minDoubleClickWindow ||
		b.DoubleClickWindow > maxDoubleClickWindow {
		return errInvalidDuration.Fmt(
			"double_click_window",
			minDoubleClickWindow,
			maxDoubleClickWindow,
			b.DoubleClickWindow,
		)
	}

	if b.LockStep < minLockStep || b.LockStep > maxLockStep {
		return errInvalidDuration.Fmt(
			"lock_step",
			minLockStep,
			maxLockStep,
			b.LockStep,
		)
	}

	if b.Panels < minPanels || b.Panels > maxPanels {
		return errInvalidRange.Fmt("panels", minPanels, maxPanels, b.Panels)
	}

	return nil
}

func (c *Config) validateDisplay() error {
	d := c.Display

	if len(d.Colors) == 0 {
		return errEmptyPalette
	}

	for _, color := range d.Colors {
		if !hexColorRegex.MatchString(color) {
			return errInvalidColor.Fmt("palette color", color)
		}
	}

	if !hexColorRegex.MatchString(d.TextColor) {
		return errInvalidColor.Fmt("text_color", d.TextColor)
	}

	if d.FrameRate < minFrameRate || d.FrameRate > maxFrameRate {
		return errInvalidRange.Fmt(
			"frame_rate",
			minFrameRate,
			maxFrameRate,
			d.FrameRate,
		)
	}

	return nil
}

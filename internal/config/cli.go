package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionCmd        string
	DoubleClickWindow time.Duration
	Lock              time.Duration
	Panels            int
	FrameRate         int
	Sound             bool
	DisableNotify     bool
	NoColor           bool
	Debug             bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Panels:            ctx.Int("panels"),
			Lock:              ctx.Duration("lock"),
			DoubleClickWindow: ctx.Duration("double-click"),
			FrameRate:         ctx.Int("fps"),
			Sound:             ctx.Bool("sound"),
			DisableNotify:     ctx.Bool("disable-notification"),
			SessionCmd:        ctx.String("session-cmd"),
			NoColor:           ctx.Bool("no-color"),
			Debug:             ctx.Bool("debug"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config. Zero values leave the
// file settings untouched.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Panels > 0 {
		c.Breath.Panels = opts.Panels
	}

	if opts.DoubleClickWindow > 0 {
		c.Breath.DoubleClickWindow = opts.DoubleClickWindow
	}

	if opts.FrameRate > 0 {
		c.Display.FrameRate = opts.FrameRate
	}

	if opts.Sound {
		c.Cues.Sound = true
	}

	if opts.DisableNotify {
		c.Cues.Notify = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	c.CLI = CLIConfig{
		Lock:    opts.Lock,
		Debug:   opts.Debug,
		NoColor: opts.NoColor,
	}
}

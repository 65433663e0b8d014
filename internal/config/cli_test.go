package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestApplyCLIOptions(t *testing.T) {
	c := &Config{
		Breath: BreathConfig{
			DoubleClickWindow: 500 * time.Millisecond,
			Panels:            1,
		},
		Display: DisplayConfig{
			FrameRate: 30,
		},
		Cues: CueConfig{
			Notify: true,
		},
		Settings: SettingsConfig{
			Cmd: "from-file",
		},
	}

	applyCLIOptions(c, CLIOptions{
		Panels:        3,
		Lock:          4 * time.Second,
		DisableNotify: true,
		Sound:         true,
		Debug:         true,
	})

	assert.Equal(t, 3, c.Breath.Panels)
	assert.Equal(t, 500*time.Millisecond, c.Breath.DoubleClickWindow)
	assert.Equal(t, 30, c.Display.FrameRate)
	assert.False(t, c.Cues.Notify)
	assert.True(t, c.Cues.Sound)
	assert.Equal(t, "from-file", c.Settings.Cmd)
	assert.Equal(t, CLIConfig{Lock: 4 * time.Second, Debug: true}, c.CLI)
}

func TestWithCLIConfig(t *testing.T) {
	flags := map[string]string{
		"panels":       "2",
		"double-click": "300ms",
		"fps":          "12",
		"session-cmd":  "notify-send done",
	}

	f := flag.NewFlagSet("breathe", flag.ContinueOnError)
	_ = f.Int("panels", 0, "")
	_ = f.Duration("double-click", 0, "")
	_ = f.Duration("lock", 0, "")
	_ = f.Int("fps", 0, "")
	_ = f.String("session-cmd", "", "")
	_ = f.Bool("sound", false, "")
	_ = f.Bool("disable-notification", false, "")
	_ = f.Bool("no-color", false, "")
	_ = f.Bool("debug", false, "")

	for k, v := range flags {
		require.NoError(t, f.Set(k, v))
	}

	ctx := cli.NewContext(&cli.App{}, f, nil)

	c := &Config{}
	require.NoError(t, WithCLIConfig(ctx)(c))

	assert.Equal(t, 2, c.Breath.Panels)
	assert.Equal(t, 300*time.Millisecond, c.Breath.DoubleClickWindow)
	assert.Equal(t, 12, c.Display.FrameRate)
	assert.Equal(t, "notify-send done", c.Settings.Cmd)
	assert.Zero(t, c.CLI.Lock)
}

func TestApplyPromptOptions(t *testing.T) {
	c := &Config{}

	applyPromptOptions(c, PromptOptions{
		Panels:            2,
		DoubleClickWindow: 800 * time.Millisecond,
		Sound:             true,
	})

	assert.Equal(t, 2, c.Breath.Panels)
	assert.Equal(t, 800*time.Millisecond, c.Breath.DoubleClickWindow)
	assert.True(t, c.Cues.Sound)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Breath: BreathConfig{
				DoubleClickWindow: 500 * time.Millisecond,
				LockStep:          time.Second,
				Panels:            1,
			},
			Display: DisplayConfig{
				Colors:    []string{"#B0DB43"},
				TextColor: "#FFFFFF",
				FrameRate: 30,
			},
			Cues: CueConfig{
				NotifyEvery: 10,
			},
		}
	}

	cases := []struct {
		mutate func(c *Config)
		want   error
		name   string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:   "window too short",
			mutate: func(c *Config) { c.Breath.DoubleClickWindow = 10 * time.Millisecond },
			want:   errInvalidDuration,
		},
		{
			name:   "zero lock step",
			mutate: func(c *Config) { c.Breath.LockStep = 0 },
			want:   errInvalidDuration,
		},
		{
			name:   "too many panels",
			mutate: func(c *Config) { c.Breath.Panels = 50 },
			want:   errInvalidRange,
		},
		{
			name:   "empty palette",
			mutate: func(c *Config) { c.Display.Colors = nil },
			want:   errEmptyPalette,
		},
		{
			name:   "bad palette color",
			mutate: func(c *Config) { c.Display.Colors = []string{"#B0DB43", "red"} },
			want:   errInvalidColor,
		},
		{
			name:   "zero frame rate",
			mutate: func(c *Config) { c.Display.FrameRate = 0 },
			want:   errInvalidRange,
		},
		{
			name: "notifications without interval",
			mutate: func(c *Config) {
				c.Cues.Notify = true
				c.Cues.NotifyEvery = 0
			},
			want: errInvalidRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)

			err := c.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

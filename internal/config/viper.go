package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/ayoisaiah/breathe/panel"
)

const (
	keyDoubleClickWindow = "breath.double_click_window"
	keyLockStep          = "breath.lock_step"
	keyPanels            = "breath.panels"
	keyColors            = "display.colors"
	keyTextColor         = "display.text_color"
	keyDarkTheme         = "display.dark_theme"
	keyFrameRate         = "display.frame_rate"
	keySound             = "cues.sound"
	keyNotify            = "cues.notify"
	keyNotifyEvery       = "cues.notify_every"
	keySessionCmd        = "settings.cmd"
)

const defaultFrameRate = 30

// WithViperConfig returns an Option that loads configuration from the file
// at configPath. A missing file is created with the defaults.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath)

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyDoubleClickWindow, "500ms")
	v.SetDefault(keyLockStep, "1s")
	v.SetDefault(keyPanels, 1)
	v.SetDefault(keyColors, panel.DefaultPalette)
	v.SetDefault(keyTextColor, "#FFFFFF")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyFrameRate, defaultFrameRate)
	v.SetDefault(keySound, false)
	v.SetDefault(keyNotify, false)
	v.SetDefault(keyNotifyEvery, 10)
	v.SetDefault(keySessionCmd, "")
}

// setupViper carries answers from the first-run prompt into the file that is
// about to be written.
func setupViper(v *viper.Viper, c *Config) {
	if c.Breath.Panels != 0 {
		v.Set(keyPanels, c.Breath.Panels)
	}

	if c.Breath.DoubleClickWindow != 0 {
		v.Set(keyDoubleClickWindow, c.Breath.DoubleClickWindow.String())
	}

	if c.Cues.Sound {
		v.Set(keySound, true)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	cli := c.CLI

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	c.CLI = cli

	return nil
}

// Watch re-reads the config file whenever it is written and hands the
// validated result to fn. fn runs on the watcher's goroutine.
func Watch(configPath string, fn func(*Config, error)) error {
	v := newViper(configPath)

	if err := v.ReadInConfig(); err != nil {
		return errReadConfig.Wrap(err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		c := &Config{}

		err := loadViperConfig(v, c)
		if err == nil {
			err = c.Validate()
		}

		fn(c, err)
	})

	v.WatchConfig()

	return nil
}

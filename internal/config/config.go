// Package config loads the breathe configuration from the config file,
// the first-run prompt and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Settings SettingsConfig `mapstructure:"settings"`
		Display  DisplayConfig  `mapstructure:"display"`
		Cues     CueConfig      `mapstructure:"cues"`
		Breath   BreathConfig   `mapstructure:"breath"`
		CLI      CLIConfig      `mapstructure:"-"`
	}

	// BreathConfig holds the settings of every breathing cycle.
	BreathConfig struct {
		DoubleClickWindow time.Duration `mapstructure:"double_click_window"`
		LockStep          time.Duration `mapstructure:"lock_step"`
		Panels            int           `mapstructure:"panels"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		TextColor string   `mapstructure:"text_color"`
		Colors    []string `mapstructure:"colors"`
		FrameRate int      `mapstructure:"frame_rate"`
		DarkTheme bool     `mapstructure:"dark_theme"`
	}

	// CueConfig holds the settings for sounds and notifications.
	CueConfig struct {
		NotifyEvery int  `mapstructure:"notify_every"`
		Sound       bool `mapstructure:"sound"`
		Notify      bool `mapstructure:"notify"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// CLIConfig holds settings that only exist for a single run.
	CLIConfig struct {
		Lock    time.Duration
		Debug   bool
		NoColor bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "breathe"
	configFileName = "config.yml"
	logFileName    = "breathe.log"
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the location of the config and log files,
// creating their parent directories. BREATHE_ENV selects an alternative set
// of files.
func InitializePaths() error {
	breatheEnv := strings.TrimSpace(os.Getenv("BREATHE_ENV"))
	if breatheEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", breatheEnv)
		logFileName = fmt.Sprintf("breathe_%s.log", breatheEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	logFilePath, err = xdg.DataFile(filepath.Join(configDir, "log", logFileName))
	if err != nil {
		return err
	}

	return nil
}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// FrameInterval is the time between two rendered frames.
func (c *Config) FrameInterval() time.Duration {
	if c.Display.FrameRate <= 0 {
		return time.Second / defaultFrameRate
	}

	return time.Second / time.Duration(c.Display.FrameRate)
}

package config

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗ ██████╗ ███████╗ █████╗ ████████╗██╗  ██╗███████╗
██╔══██╗██╔══██╗██╔════╝██╔══██╗╚══██╔══╝██║  ██║██╔════╝
██████╔╝██████╔╝█████╗  ███████║   ██║   ███████║█████╗
██╔══██╗██╔══██╗██╔══╝  ██╔══██║   ██║   ██╔══██║██╔══╝
██████╔╝██║  ██║███████╗██║  ██║   ██║   ██║  ██║███████╗
╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	DoubleClickWindow time.Duration
	Panels            int
	Sound             bool
}

// WithPromptConfig returns an Option that asks for the main settings when no
// config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure breathe for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'breathe edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Panels to show").
				Options(
					huh.NewOption("1 panel", 1).Selected(true),
					huh.NewOption("2 panels", 2),
					huh.NewOption("3 panels", 3),
					huh.NewOption("4 panels", 4),
				).
				Value(&opts.Panels),
		),
		huh.NewGroup(
			huh.NewSelect[time.Duration]().
				Title("Double-click speed").
				Options(
					huh.NewOption("Fast (300ms)", 300*time.Millisecond),
					huh.NewOption("Normal (500ms)", 500*time.Millisecond).
						Selected(true),
					huh.NewOption("Slow (800ms)", 800*time.Millisecond),
				).
				Value(&opts.DoubleClickWindow),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Play a tone when the phase changes?").
				Value(&opts.Sound),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Breath.Panels = opts.Panels
	c.Breath.DoubleClickWindow = opts.DoubleClickWindow
	c.Cues.Sound = opts.Sound
}

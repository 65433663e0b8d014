package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/cue"
	"github.com/ayoisaiah/breathe/internal/osutil"
	"github.com/ayoisaiah/breathe/internal/ui"
	"github.com/ayoisaiah/breathe/panel"
	"github.com/ayoisaiah/breathe/tui"
)

const (
	envNoColor        = "NO_COLOR"
	envBreatheNoColor = "BREATHE_NO_COLOR"
)

// setupLogger sends the default slog logger to the rotating log file.
func setupLogger(debug bool) io.Closer {
	l := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(l, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)

	return l
}

// loadConfig reads the config file and applies the command-line overrides.
// The first-run prompt is only shown when interactive is set.
func loadConfig(ctx *cli.Context, interactive bool) (*config.Config, error) {
	err := config.InitializePaths()
	if err != nil {
		return nil, err
	}

	var opts []config.Option

	if interactive {
		opts = append(opts, config.WithPromptConfig(config.ConfigFilePath()))
	}

	opts = append(
		opts,
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

// editConfigAction handles the edit-config command which opens the breathe
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	err := config.InitializePaths()
	if err != nil {
		return err
	}

	cmd := exec.Command(osutil.Editor(), config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// paletteRows lists every colour of the palette together with the panels
// that would be painted with it.
func paletteRows(palette []string, panels int) [][]string {
	rows := [][]string{{"#", "COLOUR", "SWATCH", "PANELS"}}

	if len(palette) == 0 {
		palette = panel.DefaultPalette
	}

	for i, c := range palette {
		var positions string

		for p := 0; p < panels; p++ {
			if panel.ColorAt(palette, p) != c {
				continue
			}

			if positions != "" {
				positions += ", "
			}

			positions += fmt.Sprint(p + 1)
		}

		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			c,
			ui.Swatch(c),
			positions,
		})
	}

	return rows
}

// paletteAction prints the configured palette.
func paletteAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	ui.PrintTable(
		paletteRows(cfg.Display.Colors, cfg.Breath.Panels),
		config.Stdout,
	)

	_, err = fmt.Fprintf(
		config.Stdout,
		"Edit the colours in %s\n",
		ui.Highlight(config.ConfigFilePath()),
	)

	return err
}

// showConfigAction prints the configuration that a session would run with.
func showConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	b, err := cfg.YAML()
	if err != nil {
		return err
	}

	_, err = config.Stdout.Write(b)

	return err
}

// defaultAction runs the breathing panels.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.CLI.Debug)
	defer logger.Close()

	if cfg.CLI.NoColor {
		disableStyling()
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	cues := cue.New(cue.Opts{
		SessionCmd:  cfg.Settings.Cmd,
		NotifyEvery: cfg.Cues.NotifyEvery,
		Sound:       cfg.Cues.Sound,
		Notify:      cfg.Cues.Notify,
	})

	p := tea.NewProgram(
		tui.New(cfg, cues),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	err = config.Watch(config.ConfigFilePath(), func(c *config.Config, err error) {
		p.Send(tui.ConfigMsg{Cfg: c, Err: err})
	})
	if err != nil {
		slog.Warn("config file will not be watched", slog.Any("error", err))
	}

	slog.Info(
		"starting session",
		slog.Int("panels", cfg.Breath.Panels),
		slog.Duration("lock", cfg.CLI.Lock),
	)

	_, err = p.Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/breathe/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	_, breatheNoColor := os.LookupEnv(envBreatheNoColor)
	_, noColor := os.LookupEnv(envNoColor)

	if breatheNoColor || noColor || ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

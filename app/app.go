package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/config"
)

// disableStyling disables all styling provided by pterm and lipgloss.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Get retrieves the breathe app instance.
func Get() *cli.App {
	breatheApp := &cli.App{
		Name: "breathe",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Breathe is a guided breathing exercise for the command-line. Double-press
		space to start breathing in, double-press again to hold, then follow the
		panel as it counts you through the hold and the exhale.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "palette",
				Usage:  "Print the colours assigned to the panels",
				Action: paletteAction,
			},
			{
				Name: "plan",
				Usage: `
				Simulate a locked session and print how long every phase lasts`,
				Flags: []cli.Flag{
					inhaleFlag,
					breathsFlag,
					jsonFlag,
				},
				Action: planAction,
			},
			{
				Name:   "show-config",
				Usage:  "Print the effective configuration",
				Action: showConfigAction,
			},
		},
		Flags: []cli.Flag{
			panelsFlag,
			lockFlag,
			doubleClickFlag,
			fpsFlag,
			soundFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return breatheApp
}

package app

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	panelsFlag = &cli.IntFlag{
		Name:    "panels",
		Aliases: []string{"p"},
		Usage:   "Number of breathing panels to start with (default: 1)",
	}

	lockFlag = &cli.DurationFlag{
		Name:    "lock",
		Aliases: []string{"l"},
		Usage:   "Lock every breath to a fixed length (e.g. 4s)",
	}

	doubleClickFlag = &cli.DurationFlag{
		Name:  "double-click",
		Usage: "Maximum gap between the two presses of a double-click (default: 500ms)",
	}

	fpsFlag = &cli.IntFlag{
		Name:  "fps",
		Usage: "Frames rendered per second (default: 30)",
	}

	soundFlag = &cli.BoolFlag{
		Name:  "sound",
		Usage: "Play a tone whenever a panel changes phase",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a number of breaths",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug information to the log file",
	}

	inhaleFlag = &cli.DurationFlag{
		Name:    "inhale",
		Aliases: []string{"i"},
		Usage:   "Length of each breath in",
		Value:   4 * time.Second,
	}

	breathsFlag = &cli.IntFlag{
		Name:    "breaths",
		Aliases: []string{"b"},
		Usage:   "Number of breaths to simulate",
		Value:   3,
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}
)

package cue

import (
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
)

// Desktop shows notifications through the operating system.
type Desktop struct {
	Icon string
}

func (d *Desktop) Notify(title, msg string) error {
	return beeep.Notify(title, msg, d.Icon)
}

// Shell runs the session command without a shell, splitting it with shell
// quoting rules.
type Shell struct{}

func (Shell) Run(sessionCmd string) error {
	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errInvalidSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

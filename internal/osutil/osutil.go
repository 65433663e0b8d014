// Package osutil holds the few platform differences breathe cares about.
package osutil

import (
	"os"
	"runtime"
)

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// Editor returns the editor used to open the config file: $VISUAL, then
// $EDITOR, then a platform default.
func Editor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if e := os.Getenv(env); e != "" {
			return e
		}
	}

	if runtime.GOOS == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}

// Exit terminates the process with the given code.
func Exit(code exitCode) {
	os.Exit(int(code))
}

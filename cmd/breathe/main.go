package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/app"
	"github.com/ayoisaiah/breathe/internal/osutil"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		osutil.Exit(osutil.ExitError)
	}
}

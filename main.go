package main

import (
	"os"

	"github.com/thenoetrevino/labelflair/cmd"
	"github.com/thenoetrevino/labelflair/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.ReportError(err)
		os.Exit(cli.ExitCodeFor(err))
	}
}

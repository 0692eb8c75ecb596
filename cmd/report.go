package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/rgpaul/sharedlog/logger"
)

// Report writes err to the shared logger's error output. The "error: " prefix is
// coloured only when that output is stderr attached to a terminal.
func Report(err error) {
	logger.Error(errorPrefix(colourErrors()) + err.Error())
}

func colourErrors() bool {
	if logger.Shared().ErrorFile() != "" || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func errorPrefix(colour bool) string {
	c := color.New(color.FgRed)
	if colour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint("error: ")
}

package main

import (
	"os"

	"github.com/rgpaul/sharedlog/cmd"
	"github.com/rgpaul/sharedlog/logger"
)

// Usage: sharedlog [--level off|normal|verbose] [--info-file path] [--error-file path] <command>
func main() {
	err := cmd.Execute()
	if err != nil {
		cmd.Report(err)
	}
	if closeErr := logger.Close(); closeErr != nil && err == nil {
		err = closeErr
		cmd.Report(closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}

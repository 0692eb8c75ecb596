package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgpaul/sharedlog/logger"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <text>...",
		Short: "Write a line to the info output (normal level and above)",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			logger.Print(strings.Join(args, " "))
		},
	}
}

func newPrintvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "printv <text>...",
		Short: "Write a line to the info output (verbose level only)",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			logger.Printv(strings.Join(args, " "))
		},
	}
}

func newErrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "error <text>...",
		Short: "Write a line to the error output regardless of level",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			logger.Error(strings.Join(args, " "))
		},
	}
}

func newErrnoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "errno <code> <text>...",
		Short:   "Write a line and the system description of an errno code to the error output",
		Example: "  sharedlog errno 2 open config.yaml",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil || code < 0 {
				return fmt.Errorf("errno code must be a non-negative integer, got %q", args[0])
			}
			logger.ErrorWithErrno(strings.Join(args[1:], " "), code)
			return nil
		},
	}
}

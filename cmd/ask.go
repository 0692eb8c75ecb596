package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rgpaul/sharedlog/logger"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Prompt for a line of input and echo it to the info output",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			line, err := logger.GetLine(args[0])
			if err != nil {
				return err
			}
			logger.Print(line)
			return nil
		},
	}
}

func newAskCharCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask-char <prompt>",
		Short: "Prompt for a single character and echo it to the info output",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := logger.GetChar(args[0])
			if err != nil {
				return err
			}
			logger.Print(string(c))
			return nil
		},
	}
}

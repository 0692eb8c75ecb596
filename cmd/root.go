// Package cmd implements the sharedlog command-line tool, a thin driver over the
// shared logger used for demos and shell scripting.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rgpaul/sharedlog/config"
	"github.com/rgpaul/sharedlog/logger"
)

// NewRootCmd builds a fresh command tree. Tests build one per run so flag state
// does not leak between executions.
func NewRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "sharedlog",
		Short: "Write to and read from the process-wide logger",
		Long: `sharedlog drives the shared logger from the command line.

Informational output goes to stdout and error output to stderr unless redirected
with --info-file/--error-file, a config file, or SHAREDLOG_* environment variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configureLogger(cmd, configFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.StringP("level", "l", "", "log level: off, normal or verbose")
	flags.String("info-file", "", "append informational output to this file")
	flags.String("error-file", "", "append error output to this file")

	root.AddCommand(
		newPrintCmd(),
		newPrintvCmd(),
		newErrorCmd(),
		newErrnoCmd(),
		newAskCmd(),
		newAskCharCmd(),
		newStressCmd(),
	)

	return root
}

func configureLogger(cmd *cobra.Command, configFile string) error {
	settings, err := config.Load(config.Options{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}

	l := logger.Shared()
	l.UseInput(cmd.InOrStdin())
	return config.Apply(l, settings)
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

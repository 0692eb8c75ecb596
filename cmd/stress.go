package cmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/rgpaul/sharedlog/logger"
)

type stressOptions struct {
	workers int
	lines   int
	errors  bool
}

func newStressCmd() *cobra.Command {
	opts := stressOptions{}

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Write from many goroutines at once to check lines stay intact",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if opts.workers < 1 || opts.lines < 1 {
				return errors.New("--workers and --lines must be positive")
			}
			runStress(logger.Shared(), opts)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 4, "number of concurrent writers")
	cmd.Flags().IntVarP(&opts.lines, "lines", "n", 1000, "lines per writer")
	cmd.Flags().BoolVar(&opts.errors, "errors", false, "also write every line to the error output")

	return cmd
}

func runStress(l *logger.Logger, opts stressOptions) {
	var wg sync.WaitGroup
	wg.Add(opts.workers)
	for w := range opts.workers {
		go func(id int) {
			defer wg.Done()
			for i := range opts.lines {
				line := fmt.Sprintf("worker-%d line-%d", id, i)
				l.Print(line)
				if opts.errors {
					l.Error(line)
				}
			}
		}(w)
	}
	wg.Wait()

	l.Printv(fmt.Sprintf("stress: %d workers wrote %d lines each", opts.workers, opts.lines))
}

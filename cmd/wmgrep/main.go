// Command wmgrep is a thin CLI front end over the wumanber package: it
// loads a newline-separated pattern file and a text file, scans the
// text, and reports matches, following the original wumanber driver's
// exact flag and exit-code surface.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bytematch/wumanber"
	"github.com/bytematch/wumanber/internal/patfile"
	"github.com/bytematch/wumanber/internal/stats"
)

// exitError carries the process exit code a failure should produce,
// distinguishing usage errors (1), empty-pattern errors (2) and
// file-open/file-read errors (3) per the original driver's exit(...)
// call sites.
type exitError struct {
	code   int
	err    error
	silent bool // true when the condition was already reported via stats output
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if !ee.silent {
				fmt.Fprintln(os.Stderr, ee.err)
			}
			os.Exit(ee.code)
		}
		// cobra's own argument/flag validation failures: usage error.
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, cmd.UsageString())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		nocaseI   bool
		nocaseN   bool
		countOnly bool
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:           "wmgrep patterns_file text_file",
		Short:         "scan text_file for every pattern in patterns_file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(runOptions{
				patternsPath: args[0],
				textPath:     args[1],
				nocase:       nocaseI || nocaseN,
				countOnly:    countOnly,
				quiet:        quiet,
				stdout:       cmd.OutOrStdout(),
				stderr:       cmd.ErrOrStderr(),
			})
		},
	}

	// cobra/pflag do not cleanly support two single-letter aliases for
	// one flag, so -i and -n are bound to separate booleans and ORed
	// together at RunE time instead.
	cmd.Flags().BoolVarP(&nocaseI, "insensitive", "i", false, "run case-insensitive (default: case sensitive)")
	cmd.Flags().BoolVarP(&nocaseN, "nocase", "n", false, "alias for -i")
	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print count only (default: print all offsets and keywords)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "be quiet, do not print any statistics")

	return cmd
}

type runOptions struct {
	patternsPath string
	textPath     string
	nocase       bool
	countOnly    bool
	quiet        bool
	stdout       io.Writer
	stderr       io.Writer
}

func run(o runOptions) error {
	logger := logrus.New()
	logger.SetOutput(o.stderr)
	if o.quiet {
		logger.SetLevel(logrus.ErrorLevel)
	}

	patterns, err := patfile.LoadPatterns(o.patternsPath)
	if err != nil {
		return fileErr(err)
	}
	if !o.quiet {
		fmt.Fprintf(o.stderr, "%s loaded.\n", o.patternsPath)
	}

	m, err := wumanber.New(patterns, &wumanber.Options{
		NoCase: o.nocase,
		Name:   "wmgrep",
		Logger: logger,
	})
	if err != nil {
		if errors.Is(err, wumanber.ErrEmptyPattern) || errors.Is(err, wumanber.ErrNoPatterns) {
			return &exitError{code: 2, err: err}
		}
		return err
	}

	text, err := patfile.LoadText(o.textPath)
	if err != nil {
		return fileErr(err)
	}
	if !o.quiet {
		fmt.Fprintf(o.stderr, "%s loaded.\n", o.textPath)
	}

	counters := stats.NewCounters(m.NumPatterns())
	matches := m.Scan(text, func(idx uint32, offset uint64, _ any) {
		counters.Record(idx)
		if !o.countOnly {
			fmt.Fprintf(o.stdout, "offset=%d: idx=%d, '%s'\n", offset, idx, patterns[idx-1])
		}
	}, nil)

	if !o.quiet {
		fmt.Fprintf(o.stderr, "words:%d %d\n", counters.Distinct(), counters.Total())
	}

	if matches == 0 {
		return &exitError{code: 1, err: errors.New("no matches"), silent: true}
	}
	return nil
}

func fileErr(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &exitError{code: 3, err: err}
	}
	return err
}

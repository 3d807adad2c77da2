// Package main implements find, a recursive filesystem search tool.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/taigrr/gofind/internal/config"
	"github.com/taigrr/gofind/internal/identity"
	"github.com/taigrr/gofind/internal/options"
	"github.com/taigrr/gofind/internal/types"
	"github.com/taigrr/gofind/internal/walk"
)

// errReported means the failure was already written to stderr.
var errReported = errors.New("already reported")

var (
	settings = config.Default()
	resolver = identity.OS()
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithErrorHandler(handleError),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <path> [-name <pattern>] [-iname <pattern>] [-type f|d]",
		Short: "Search a directory tree for matching entries",
		Long: `find walks the directory tree rooted at <path> depth-first and prints
every entry that satisfies all given tests.

  -name <pattern>   final path component matches pattern (* and ? wildcards)
  -iname <pattern>  like -name, ignoring case
  -type f|d         entry is a regular file (f) or a directory (d)

Symbolic links are listed but never followed; a link whose target was
already seen is skipped, so link cycles terminate.`,
		Example:            `find . -name '*.go' -type f`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		PersistentPreRunE:  setup,
		RunE:               runFind,
	}

	cmd.AddCommand(newServeCmd())
	return cmd
}

func handleError(w io.Writer, styles fang.Styles, err error) {
	if errors.Is(err, errReported) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// setup loads the configuration and points the logger at stderr.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(lvl)
	log.SetPrefix("find")
	settings = cfg
	return nil
}

func runFind(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help":
			return cmd.Help()
		case "--version":
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cmd.Version)
			return err
		}
	}

	stderr := cmd.ErrOrStderr()
	if len(args) == 0 {
		fmt.Fprintln(stderr, options.Usage)
		return errReported
	}

	parsed := options.Parse(args[1:])
	for _, d := range parsed.Diagnostics {
		fmt.Fprintln(stderr, d)
	}

	return find(cmd.OutOrStdout(), stderr, args[0], parsed.Config, settings)
}

// find prints every match below start to stdout, one per line. Traversal
// errors go to stderr as "find: <error>"; depending on cfg they either end
// the run or are skipped, and in both cases the run fails.
func find(stdout, stderr io.Writer, start string, fc types.FilterConfig, cfg config.Config) error {
	out := bufio.NewWriter(stdout)

	failed := false
	opts := []walk.Option{walk.WithResolver(resolver)}
	if cfg.ContinueOnError() {
		opts = append(opts, walk.WithErrorHandler(func(path string, err error) error {
			failed = true
			// Keep stdout and stderr roughly in order.
			_ = out.Flush()
			fmt.Fprintf(stderr, "find: %v\n", err)
			return nil
		}))
	}

	stats, err := walk.New(fc, opts...).Walk(start, func(path string) error {
		if _, err := out.WriteString(path); err != nil {
			return err
		}
		return out.WriteByte('\n')
	})
	flushErr := out.Flush()

	log.Debug("Walk finished",
		"visited", stats.Visited,
		"matched", stats.Matched,
		"cyclesSkipped", stats.CyclesSkipped,
		"errors", stats.Errors)

	if err != nil {
		fmt.Fprintf(stderr, "find: %v\n", err)
		return errReported
	}
	if flushErr != nil {
		return errors.Wrap(flushErr, "failed to write output")
	}
	if failed {
		return errReported
	}
	return nil
}

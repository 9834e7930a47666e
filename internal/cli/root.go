// Package cli provides the command-line interface for catr.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ccollicutt/catr/pkg/config"
	"github.com/ccollicutt/catr/pkg/output"
	"github.com/ccollicutt/catr/pkg/runner"
	"github.com/ccollicutt/catr/pkg/source"
)

// Exit codes.
const (
	ExitOK            = 0
	ExitSourcesFailed = 1
	ExitError         = 2
)

// errSourcesFailed signals that some sources were skipped. Their diagnostics
// have already been printed.
var errSourcesFailed = errors.New("one or more sources could not be opened")

// Options holds command-line options for the root command.
type Options struct {
	Number         bool
	NumberNonblank bool
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	return ExecuteContext(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// ExecuteContext runs catr with explicit arguments and streams.
func ExecuteContext(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errSourcesFailed) {
			return ExitSourcesFailed
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "catr [FILE]...",
		Short: "Concatenate files and print them, optionally numbering lines",
		Long: `catr concatenates FILE(s) to standard output.

With no FILE, or when FILE is -, standard input is read.

Files that cannot be opened are reported on standard error and skipped;
the remaining files are still printed.

Exit codes:
  0 - All files were read
  1 - One or more files could not be opened
  2 - Invalid arguments or output error`,
		Args:          cobra.ArbitraryArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(cmd, args, opts)
		},
	}
	rootCmd.SetVersionTemplate(versionTemplate)

	rootCmd.Flags().BoolVarP(&opts.Number, "number", "n", false, "Number lines")
	rootCmd.Flags().BoolVarP(&opts.NumberNonblank, "number-nonblank", "b", false, "Number non-blank lines")
	rootCmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")

	return rootCmd
}

func runCat(cmd *cobra.Command, args []string, opts *Options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.New(args, opts.Number, opts.NumberNonblank)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	result, err := runner.Run(ctx, cfg, runner.Options{
		Stdout:      cmd.OutOrStdout(),
		Diagnostics: output.NewDiagnostics(stderr, isTerminal(stderr)),
		Opener:      &source.Opener{Stdin: cmd.InOrStdin()},
	})
	if err != nil {
		return err
	}

	if result.HasFailures() {
		return errSourcesFailed
	}
	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

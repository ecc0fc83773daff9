// Package commands implements the lantern command tree.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lantern/feasibility"
	"github.com/katalvlaran/lantern/instance"
	"github.com/katalvlaran/lantern/radius"
)

const (
	rootCmdUse   = "lantern"
	rootCmdShort = "Minimal lantern radius that lights every outpost"
	rootCmdLong  = `lantern reads one instance from stdin

  n m k t
  a1 ... an      outposts, non-decreasing
  b1 ... bm      lanterns, non-decreasing

and prints the minimal radius s such that at most t contiguous bursts of
lanterns, switching on at most k lanterns in total, cover every outpost.

Commands:
  gen         Write test suites in canonical form
  validate    Validate a multi-case input stream
  check       Check a solver's output against its input
  coverage    Print the coverage table for a radius
  crosscheck  Compare the oracles on random instances`

	oracleFlag  = "oracle"
	strictFlag  = "strict"
	verboseFlag = "verbose"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	oracle  string
	strict  bool
	verbose bool

	logger *slog.Logger
}

// NewRootCommand builds the lantern command tree. Input and output follow
// cmd.InOrStdin, cmd.OutOrStdout and cmd.ErrOrStderr.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           rootCmdUse,
		Short:         rootCmdShort,
		Long:          rootCmdLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.oracle, oracleFlag, feasibility.KindBurstDP.String(),
		"feasibility oracle: burstdp or brute")
	cmd.PersistentFlags().BoolVar(&opts.strict, strictFlag, false,
		"reject inputs outside the puzzle constraints")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, verboseFlag, "v", false, "debug logging on stderr")

	cmd.AddCommand(
		newGenCommand(opts),
		newValidateCommand(opts),
		newCheckCommand(opts),
		newCoverageCommand(opts),
		newCrosscheckCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// oracleFunc resolves --oracle.
func (o *globalOptions) oracleFunc() (feasibility.Kind, feasibility.Func, error) {
	kind, err := feasibility.ParseKind(o.oracle)
	if err != nil {
		return 0, nil, err
	}
	fn, err := feasibility.ByKind(kind)

	return kind, fn, err
}

// readInstance reads one instance and, with --strict, validates it.
func (o *globalOptions) readInstance(r io.Reader) (instance.Instance, error) {
	in, err := instance.Read(r)
	if err != nil {
		return instance.Instance{}, err
	}
	if o.strict {
		if err = instance.Validate(in, instance.DefaultLimits()); err != nil {
			return instance.Instance{}, err
		}
	}

	return in, nil
}

func runSolve(r io.Reader, w io.Writer, opts *globalOptions) error {
	kind, oracle, err := opts.oracleFunc()
	if err != nil {
		return err
	}
	in, err := opts.readInstance(r)
	if err != nil {
		return err
	}
	if kind == feasibility.KindBrute && in.M() > feasibility.BruteLimit {
		opts.logger.Warn("brute-force oracle on a large instance", "lanterns", in.M(), "limit", feasibility.BruteLimit)
	}

	var probes int
	s, err := radius.Minimal(in, oracle, radius.WithOnProbe(func(r int64, ok bool) {
		probes++
		opts.logger.Debug("probe", "radius", r, "feasible", ok)
	}))
	if err != nil {
		return err
	}
	opts.logger.Debug("solved", "oracle", kind, "n", in.N(), "m", in.M(), "radius", s, "probes", probes)

	_, err = fmt.Fprintln(w, s)

	return err
}

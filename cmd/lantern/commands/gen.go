package commands

import (
	"bufio"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lantern/instance"
	"github.com/katalvlaran/lantern/testcase"
)

const (
	genCmdUse   = "gen"
	genCmdShort = "Write a test suite to stdout in canonical form"
	genCmdLong  = `Write every case of a suite as consecutive three-line blocks.

Suites:
  small    hand-written instances with known answers
  edge     boundary instances, including two 100000-element cases
  large    ten 100000 x 100000 stress instances
  random   --count seeded small instances (--seed)`

	defaultGenCount = 10
)

// ErrNegativeCount is returned when --count is below zero.
var ErrNegativeCount = errors.New("count must be >= 0")

type genOptions struct {
	suite string
	count int
	seed  int64
}

func newGenCommand(global *globalOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   genCmdUse,
		Short: genCmdShort,
		Long:  genCmdLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd.OutOrStdout(), opts, global)
		},
	}

	cmd.Flags().StringVar(&opts.suite, "suite", "small", "suite to write: small, edge, large or random")
	cmd.Flags().IntVar(&opts.count, "count", defaultGenCount, "number of random cases")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "seed for the random suite")

	return cmd
}

func runGen(w io.Writer, opts *genOptions, global *globalOptions) error {
	if opts.count < 0 {
		return ErrNegativeCount
	}
	cases, err := testcase.BySuite(opts.suite, opts.count, opts.seed)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, c := range cases {
		global.logger.Debug("case", "suite", opts.suite, "name", c.Name, "want", c.Want)
		if err = instance.Write(bw, c.Instance()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lantern/coverage"
	"github.com/katalvlaran/lantern/feasibility"
	"github.com/katalvlaran/lantern/instance"
)

const (
	coverageCmdUse   = "coverage"
	coverageCmdShort = "Print the coverage table of stdin's instance for --radius"

	defaultCoverageRows = 50
)

type coverageOptions struct {
	radius int64
	rows   int
}

func newCoverageCommand(global *globalOptions) *cobra.Command {
	opts := &coverageOptions{}

	cmd := &cobra.Command{
		Use:   coverageCmdUse,
		Short: coverageCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := global.readInstance(cmd.InOrStdin())
			if err != nil {
				return err
			}

			return renderCoverage(cmd.OutOrStdout(), in, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.radius, "radius", 0, "radius to build the table for")
	cmd.Flags().IntVar(&opts.rows, "rows", defaultCoverageRows, "maximum rows to print (0 = all)")

	return cmd
}

// renderCoverage prints one row per outpost with its 1-based lantern range,
// stopping at the first outpost no lantern reaches, and a footer with the
// minimum effort and the verdict.
func renderCoverage(w io.Writer, in instance.Instance, opts *coverageOptions) error {
	tbl, ok := coverage.Build(opts.radius, in.Outposts, in.Lanterns)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("Coverage at radius %d", opts.radius))
	tw.AppendHeader(table.Row{"#", "Outpost", "Left", "Right", "Lanterns"})

	for i := 1; i <= in.N(); i++ {
		if opts.rows > 0 && i > opts.rows {
			tw.AppendRow(table.Row{"…", "", "", "", fmt.Sprintf("%d more", in.N()-opts.rows)})

			break
		}
		left, right, _ := tbl.Range(i)
		if left > right {
			tw.AppendRow(table.Row{i, in.Outposts[i-1], left, right, "none"})

			break
		}
		tw.AppendRow(table.Row{i, in.Outposts[i-1], left, right,
			fmt.Sprintf("[%d, %d]", in.Lanterns[left-1], in.Lanterns[right-1])})
	}

	tw.AppendFooter(table.Row{"", "", "", "Verdict", coverageVerdict(in, tbl, ok)})
	_, err := fmt.Fprintln(w, tw.Render())

	return err
}

func coverageVerdict(in instance.Instance, tbl coverage.Table, ok bool) string {
	if !ok {
		return "infeasible: unlit outpost"
	}
	effort, ok := feasibility.MinEffort(tbl, min(in.MaxBursts, in.MaxEffort))
	if !ok {
		return "infeasible: no bursts"
	}
	if effort > int64(in.MaxEffort) {
		return fmt.Sprintf("infeasible: effort %d > k=%d", effort, in.MaxEffort)
	}

	return fmt.Sprintf("feasible: effort %d <= k=%d", effort, in.MaxEffort)
}

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lantern/crosscheck"
)

const (
	crosscheckCmdUse   = "crosscheck"
	crosscheckCmdShort = "Compare the oracles on seeded random instances"
	crosscheckCmdLong  = `Generate --cases random instances from --seed, search each one with the
brute-force oracle and compare the --oracle candidate at every probed
radius and on the final answer. Exits non-zero when they disagree.`

	formatTable = "table"
	formatYAML  = "yaml"

	maxMismatchRows = 20
)

// ErrOraclesDisagree is returned when the report holds mismatches.
var ErrOraclesDisagree = errors.New("oracles disagree")

// ErrUnknownFormat is returned for an unsupported --format.
var ErrUnknownFormat = errors.New("unknown format (use table or yaml)")

type crosscheckOptions struct {
	cfg    crosscheck.Config
	format string
}

func newCrosscheckCommand(global *globalOptions) *cobra.Command {
	opts := &crosscheckOptions{cfg: crosscheck.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   crosscheckCmdUse,
		Short: crosscheckCmdShort,
		Long:  crosscheckCmdLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.format != formatTable && opts.format != formatYAML {
				return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.format)
			}
			_, oracle, err := global.oracleFunc()
			if err != nil {
				return err
			}
			cfg := opts.cfg
			cfg.Candidate = oracle
			cfg.Logger = global.logger

			rep, err := crosscheck.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err = writeReport(cmd.OutOrStdout(), rep, opts.format); err != nil {
				return err
			}
			if !rep.OK() {
				return fmt.Errorf("%w: %d mismatches", ErrOraclesDisagree, len(rep.Mismatches))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.cfg.Cases, "cases", opts.cfg.Cases, "number of random instances")
	cmd.Flags().Int64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "seed for instance generation")
	cmd.Flags().IntVarP(&opts.cfg.Workers, "workers", "w", opts.cfg.Workers, "parallel workers")
	cmd.Flags().IntVar(&opts.cfg.Bounds.MaxOutposts, "max-outposts", opts.cfg.Bounds.MaxOutposts, "largest n")
	cmd.Flags().IntVar(&opts.cfg.Bounds.MaxLanterns, "max-lanterns", opts.cfg.Bounds.MaxLanterns, "largest m")
	cmd.Flags().Int64Var(&opts.cfg.Bounds.CoordSpan, "span", opts.cfg.Bounds.CoordSpan, "coordinates in [-span, span]")
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "report format: table or yaml")

	return cmd
}

func writeReport(w io.Writer, rep crosscheck.Report, format string) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}

		return enc.Close()
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendRows([]table.Row{
		{"Seed", rep.Seed},
		{"Cases", humanize.Comma(int64(rep.Cases))},
		{"Workers", rep.Workers},
		{"Probes", humanize.Comma(rep.Probes)},
		{"Mismatches", humanize.Comma(int64(len(rep.Mismatches)))},
		{"Elapsed", rep.Elapsed.Round(time.Millisecond).String()},
	})
	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return err
	}

	if !rep.OK() {
		mt := table.NewWriter()
		mt.SetStyle(table.StyleLight)
		mt.AppendHeader(table.Row{"Case", "Kind", "Radius", "Brute", "Candidate", "Input"})
		for i, mm := range rep.Mismatches {
			if i == maxMismatchRows {
				mt.AppendFooter(table.Row{"", "", "", "", "", fmt.Sprintf("%d more", len(rep.Mismatches)-i)})

				break
			}
			brute, cand := fmt.Sprint(mm.Brute), fmt.Sprint(mm.Candidate)
			if mm.Kind == crosscheck.KindAnswer {
				brute, cand = fmt.Sprint(mm.Radius), fmt.Sprint(mm.Got)
			}
			mt.AppendRow(table.Row{mm.Case, mm.Kind, mm.Radius, brute, cand, strings.TrimSpace(mm.Input)})
		}
		if _, err := fmt.Fprintln(w, mt.Render()); err != nil {
			return err
		}
		_, err := color.New(color.FgRed).Fprintln(w, "FAIL")

		return err
	}

	_, err := color.New(color.FgGreen).Fprintln(w, "PASS")

	return err
}

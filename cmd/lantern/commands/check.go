package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lantern/instance"
	"github.com/katalvlaran/lantern/testcase"
)

const (
	checkCmdUse   = "check"
	checkCmdShort = "Check a solver's output against its input"
	checkCmdLong  = `Print True when --output holds exactly one integer line that is a
plausible answer for the instance in --input: non-negative and no larger
than the radius needed by the best single lantern. Print False otherwise
and log the reason on stderr.

The paths default to $INPUT_PATH and $OUTPUT_PATH.`

	inputPathEnv  = "INPUT_PATH"
	outputPathEnv = "OUTPUT_PATH"
)

// ErrMissingPath is returned when an input or output path is not set.
var ErrMissingPath = errors.New("both --input and --output are required")

// errTrailingInput is logged when the input file holds more than one instance.
var errTrailingInput = errors.New("input: unexpected tokens after the instance")

type checkOptions struct {
	inputPath  string
	outputPath string
}

func newCheckCommand(global *globalOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   checkCmdUse,
		Short: checkCmdShort,
		Long:  checkCmdLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.inputPath == "" || opts.outputPath == "" {
				return ErrMissingPath
			}
			input, err := os.ReadFile(opts.inputPath)
			if err != nil {
				return err
			}
			output, err := os.ReadFile(opts.outputPath)
			if err != nil {
				return err
			}

			err = checkOutput(input, output)
			if err != nil {
				global.logger.Warn("rejected", "error", err)
			}

			return printVerdict(cmd.OutOrStdout(), err == nil)
		},
	}

	cmd.Flags().StringVar(&opts.inputPath, "input", os.Getenv(inputPathEnv), "instance file")
	cmd.Flags().StringVar(&opts.outputPath, "output", os.Getenv(outputPathEnv), "solver output file")

	return cmd
}

// checkOutput validates input, parses output strictly and runs the
// judge-side answer checks.
func checkOutput(input, output []byte) error {
	dec := instance.NewDecoder(bytes.NewReader(input))
	in, err := dec.Next()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("input: %w", instance.ErrTruncatedInput)
	}
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if _, err = dec.Next(); !errors.Is(err, io.EOF) {
		return errTrailingInput
	}
	if err = instance.Validate(in, instance.DefaultLimits()); err != nil {
		return fmt.Errorf("input: %w", err)
	}

	answer, err := testcase.ParseAnswer(string(output))
	if err != nil {
		return err
	}

	return testcase.CheckAnswer(in, answer)
}

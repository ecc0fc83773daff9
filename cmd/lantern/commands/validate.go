package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lantern/instance"
)

const (
	validateCmdUse   = "validate"
	validateCmdShort = "Validate a multi-case input stream from stdin"
	validateCmdLong  = `Read consecutive instances from stdin and print True when there is at
least one and every instance satisfies the puzzle constraints:

  1 <= n, m <= 100000, 1 <= k <= m, 1 <= t <= 30,
  coordinates in [-1e9, 1e9], both arrays non-decreasing.

The layout is strict: three lines per instance (header, outposts,
lanterns), integers separated by single spaces, no empty lines, no
leading or trailing blanks, and exactly 4, n and m integers per line.
Otherwise print False. The reason is logged on stderr.`
)

// errNoCases is logged when the stream holds no instance.
var errNoCases = errors.New("no test cases")

// errLayout is logged when the stream is not in canonical line layout.
var errLayout = errors.New("bad line layout")

// intLine matches one or more integers separated by single spaces.
var intLine = regexp.MustCompile(`^-?[0-9]+( -?[0-9]+)*$`)

func newValidateCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   validateCmdUse,
		Short: validateCmdShort,
		Long:  validateCmdLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := validateStream(cmd.InOrStdin())
			if err != nil {
				global.logger.Warn("invalid input", "case", count+1, "error", err)
			} else {
				global.logger.Debug("valid input", "cases", count)
			}

			return printVerdict(cmd.OutOrStdout(), err == nil)
		},
	}
}

// validateStream returns the number of valid instances read before the
// first problem.
func validateStream(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if count, err := checkLayout(data); err != nil {
		return count, err
	}

	dec := instance.NewDecoder(bytes.NewReader(data))
	lim := instance.DefaultLimits()

	var count int
	for {
		in, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}
		if err = instance.Validate(in, lim); err != nil {
			return count, err
		}
		count++
	}
	if count == 0 {
		return 0, errNoCases
	}

	return count, nil
}

// checkLayout enforces the line structure of a test file. CRLF and lone
// CR count as line breaks and one final line break is optional. It returns
// the index of the offending case.
func checkLayout(data []byte) (int, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return 0, errNoCases
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !intLine.MatchString(line) {
			return i / 3, fmt.Errorf("%w: line %d: %q", errLayout, i+1, line)
		}
	}
	if len(lines)%3 != 0 {
		return len(lines) / 3, fmt.Errorf("%w: %d lines is not a multiple of 3", errLayout, len(lines))
	}

	for c := 0; c < len(lines); c += 3 {
		head := strings.Split(lines[c], " ")
		if len(head) != 4 {
			return c / 3, fmt.Errorf("%w: line %d: header needs 4 integers, got %d", errLayout, c+1, len(head))
		}
		for j, tok := range [2]string{head[0], head[1]} {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return c / 3, fmt.Errorf("%w: line %d: %q", errLayout, c+1, tok)
			}
			if got := strings.Count(lines[c+1+j], " ") + 1; got != n {
				return c / 3, fmt.Errorf("%w: line %d: want %d integers, got %d", errLayout, c+2+j, n, got)
			}
		}
	}

	return 0, nil
}

func printVerdict(w io.Writer, ok bool) error {
	verdict := "False"
	if ok {
		verdict = "True"
	}
	_, err := fmt.Fprintln(w, verdict)

	return err
}

package testcase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lantern/instance"
	"github.com/katalvlaran/lantern/radius"
)

// ParseAnswer reads a solver's output strictly: one integer, no
// surrounding whitespace, optionally followed by a single newline.
// CRLF and lone CR line endings are accepted as newlines.
func ParseAnswer(output string) (int64, error) {
	body := strings.ReplaceAll(output, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")
	body = strings.TrimSuffix(body, "\n")
	switch {
	case body == "":
		return 0, fmt.Errorf("%w: empty", ErrMalformedAnswer)
	case strings.Contains(body, "\n"):
		return 0, fmt.Errorf("%w: multiple lines", ErrMalformedAnswer)
	case body != strings.TrimSpace(body):
		return 0, fmt.Errorf("%w: surrounding whitespace", ErrMalformedAnswer)
	}
	v, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAnswer, body)
	}

	return v, nil
}

// CheckAnswer performs the sanity checks a judge can run without solving:
// the radius is non-negative and no larger than the single-lantern bound.
// An instance without outposts accepts only 0.
func CheckAnswer(inst instance.Instance, answer int64) error {
	if answer < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeAnswer, answer)
	}
	bound, ok := radius.SingleLanternBound(inst)
	if !ok {
		bound = 0
	}
	if answer > bound {
		return fmt.Errorf("%w: got %d, bound %d", ErrAnswerTooLarge, answer, bound)
	}

	return nil
}

// Verify runs CheckAnswer and, when c.Want is known, compares against it.
func (c Case) Verify(answer int64) error {
	if err := CheckAnswer(c.Instance(), answer); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	if c.Want != Unknown && answer != c.Want {
		return fmt.Errorf("%s: %w: got %d, want %d", c.Name, ErrWrongAnswer, answer, c.Want)
	}

	return nil
}

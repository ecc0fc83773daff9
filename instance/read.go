package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxTokenSize bounds a single whitespace-separated token.
const maxTokenSize = 1 << 16

// preallocCap caps the up-front slice capacity taken from an untrusted header.
const preallocCap = 1 << 16

// Decoder reads consecutive instances from a token stream.
type Decoder struct {
	sc *bufio.Scanner
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)

	return &Decoder{sc: sc}
}

// Next decodes the next instance.
//
// It returns io.EOF when the stream ends cleanly before a new header,
// ErrTruncatedInput when it ends inside an instance, and ErrMalformedInput
// (wrapped with the offending token) for non-integer tokens.
func (d *Decoder) Next() (Instance, error) {
	var (
		head [4]int64
		err  error
		i    int
	)
	for i = range head {
		head[i], err = d.int64()
		if err != nil {
			if i == 0 && errors.Is(err, io.EOF) {
				return Instance{}, io.EOF
			}

			return Instance{}, eofAsTruncated(err)
		}
	}

	n, m := head[0], head[1]
	if n < 0 || m < 0 {
		return Instance{}, fmt.Errorf("%w: n=%d m=%d", ErrNegativeCount, n, m)
	}

	inst := Instance{
		MaxEffort: int(head[2]),
		MaxBursts: int(head[3]),
	}
	if inst.Outposts, err = d.ints(n); err != nil {
		return Instance{}, err
	}
	if inst.Lanterns, err = d.ints(m); err != nil {
		return Instance{}, err
	}

	return inst, nil
}

// Read decodes exactly one instance from r. Trailing tokens are ignored.
func Read(r io.Reader) (Instance, error) {
	inst, err := NewDecoder(r).Next()
	if errors.Is(err, io.EOF) {
		return Instance{}, ErrTruncatedInput
	}

	return inst, err
}

// ints reads count integers into a fresh slice.
func (d *Decoder) ints(count int64) ([]int64, error) {
	capHint := count
	if capHint > preallocCap {
		capHint = preallocCap
	}
	out := make([]int64, 0, capHint)

	var (
		v   int64
		err error
		i   int64
	)
	for i = 0; i < count; i++ {
		if v, err = d.int64(); err != nil {
			return nil, eofAsTruncated(err)
		}
		out = append(out, v)
	}

	return out, nil
}

// int64 scans one token and parses it as a base-10 integer.
func (d *Decoder) int64() (int64, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return 0, fmt.Errorf("instance: read: %w", err)
		}

		return 0, io.EOF
	}
	tok := d.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, tok)
	}

	return v, nil
}

func eofAsTruncated(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrTruncatedInput
	}

	return err
}

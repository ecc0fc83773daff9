package instance

import (
	"bufio"
	"io"
	"strconv"
)

// Write emits inst in the canonical three-line form:
//
//	n m k t
//	a1 … an
//	b1 … bm
//
// An empty coordinate list still produces its (empty) line so the output
// stays line-aligned for multi-case files.
func Write(w io.Writer, inst Instance) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	head := [4]int64{int64(inst.N()), int64(inst.M()), int64(inst.MaxEffort), int64(inst.MaxBursts)}
	for i, v := range head {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, v, 10)
	}
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	if err := writeLine(bw, inst.Outposts); err != nil {
		return err
	}
	if err := writeLine(bw, inst.Lanterns); err != nil {
		return err
	}

	return bw.Flush()
}

func writeLine(bw *bufio.Writer, xs []int64) error {
	buf := make([]byte, 0, 24)
	for i, x := range xs {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, x, 10)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.WriteByte('\n')
}

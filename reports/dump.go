package reports

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/bftape/bfvm"
)

const rowWidth = 16

// Dump writes tape cells in [from, to) as rows of 16, marking the data pointer cell.
func Dump(w io.Writer, state *bfvm.State, from, to int) error {
	from = max(from, 0) / rowWidth * rowWidth
	to = min(to, bfvm.TapeSize)
	var b strings.Builder
	for row := from; row < to; row += rowWidth {
		fmt.Fprintf(&b, "%05d ", row)
		for i := row; i < row+rowWidth && i < to; i++ {
			if i == state.DP {
				fmt.Fprintf(&b, "[%02x]", state.Tape[i])
			} else {
				fmt.Fprintf(&b, " %02x ", state.Tape[i])
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// DumpAround dumps the rows surrounding the data pointer.
func DumpAround(w io.Writer, state *bfvm.State, rows int) error {
	start := state.DP/rowWidth*rowWidth - rows*rowWidth
	return Dump(w, state, start, start+(2*rows+1)*rowWidth)
}

package reports

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/bfrun"
	"golang.org/x/term"
)

const (
	colorHalt  = "\033[31m"
	colorReset = "\033[0m"
)

// Preamble is written before a run starts.
type Preamble func(w io.Writer, source bfrun.Source) error

func (Module) Preamble(
	verbosity bfconfigs.Verbosity,
) Preamble {
	return func(w io.Writer, source bfrun.Source) error {
		if verbosity < 2 {
			return nil
		}
		_, err := fmt.Fprintf(w, "Running program:\n%s\n\nWith input:\n%q\n\nOutput:\n",
			strings.TrimRight(source.Program, "\n"),
			source.Input,
		)
		return err
	}
}

// Report is written after a run ends.
type Report func(w io.Writer, result bfrun.Result) error

func (Module) Report(
	verbosity bfconfigs.Verbosity,
) Report {
	return func(w io.Writer, result bfrun.Result) error {
		state := result.State
		if verbosity < 1 || state == nil {
			return nil
		}
		var b strings.Builder

		if halt := state.Halt; halt != nil {
			line := fmt.Sprintf("halt: %s (ip=%d dp=%d)", halt.Error(), halt.IP, halt.DP)
			if result.Source.Name != "" {
				line = result.Source.Name + ": " + line
			}
			if isTerminal(w) {
				line = colorHalt + line + colorReset
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}

		if verbosity >= 2 {
			fmt.Fprintf(&b, "steps: %d, output bytes: %d, input consumed: %d\n",
				state.Steps,
				len(state.Output),
				state.InputPos,
			)
		}

		if verbosity >= 3 {
			fmt.Fprintf(&b, "ip=%d dp=%d open loops=%v\n", state.IP, state.DP, state.Loops)
			if err := DumpAround(&b, state, 2); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, b.String())
		return err
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

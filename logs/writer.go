package logs

import (
	"io"
	"os"
)

// Writer receives terminal log records. Stdout belongs to program output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

package bfrun

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/dscope"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func newScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(defs...)
}

func TestExecute(t *testing.T) {
	newScope(t).Call(func(
		execute Execute,
	) {
		buf := new(bytes.Buffer)
		state, err := execute(t.Context(), Source{
			Name:    "hello",
			Program: helloWorld,
		}, buf)
		if err != nil {
			t.Fatal(err)
		}
		if buf.String() != "Hello World!\n" {
			t.Fatalf("got %q", buf.String())
		}
		if state.Text() != buf.String() {
			t.Fatalf("got %q", state.Text())
		}
	})
}

func TestExecuteHalt(t *testing.T) {
	newScope(t).Call(func(
		execute Execute,
	) {
		state, err := execute(t.Context(), Source{
			Name:    "underflow",
			Program: "+.<",
		}, nil)
		if !errors.Is(err, bfvm.ErrBoundsUnderflow) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
		var halt *bfvm.Halt
		if !errors.As(err, &halt) || halt != state.Halt {
			t.Fatalf("got %v", err)
		}
		if len(state.Output) != 1 {
			t.Fatalf("got %v", state.Output)
		}
	})
}

func TestExecuteConfigured(t *testing.T) {
	newScope(t,
		dscope.Provide(bfconfigs.MaxSteps(50)),
		dscope.Provide(bfvm.CellWrap),
	).Call(func(
		execute Execute,
	) {
		state, err := execute(t.Context(), Source{
			Program: "-[+-]",
		}, nil)
		if !errors.Is(err, bfvm.ErrStepLimit) {
			t.Fatalf("got %v", err)
		}
		if state.Steps != 50 {
			t.Fatalf("got %v", state.Steps)
		}
		if state.Tape[0] == 0 {
			t.Fatal("wrap policy not applied")
		}
	})
}

func TestSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "echo.bf")
	if err := os.WriteFile(path, []byte("read one byte ,\nprint it .\n"), 0644); err != nil {
		t.Fatal(err)
	}
	source, err := SourceFile(path, []byte("Z"))
	if err != nil {
		t.Fatal(err)
	}
	state := bfvm.Interpret(bfvm.Tokenize(source.Program), source.Input)
	if state.Text() != "Z" {
		t.Fatalf("got %q", state.Text())
	}

	_, err = SourceFile(filepath.Join(t.TempDir(), "missing.bf"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

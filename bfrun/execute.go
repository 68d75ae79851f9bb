package bfrun

import (
	"context"
	"io"

	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/bftape/logs"
)

type Source struct {
	Name    string
	Program string
	Input   []byte
}

type Result struct {
	Source Source
	State  *bfvm.State
	Err    error
}

// Execute tokenizes and runs one source with the configured settings.
// The returned error is the halt descriptor joined with the run span, or nil.
type Execute func(ctx context.Context, source Source, sink io.Writer) (*bfvm.State, error)

func (Module) Execute(
	logger logs.Logger,
	newSpan logs.NewSpan,
	configure bfconfigs.Configure,
) Execute {
	return func(ctx context.Context, source Source, sink io.Writer) (*bfvm.State, error) {
		ctx, _ = newSpan(ctx, "", "run "+source.Name)

		program := bfvm.Tokenize(source.Program)
		vm := bfvm.NewVM(program, source.Input)
		configure(vm)
		vm.Sink = sink

		logger.DebugContext(ctx, "run",
			"name", source.Name,
			"operators", len(program),
			"input", len(source.Input),
			"cell_policy", vm.CellPolicy.String(),
		)

		state := vm.RunContext(ctx)

		if halt := state.Halt; halt != nil {
			logger.InfoContext(ctx, "halt",
				"name", source.Name,
				"kind", halt.Kind.String(),
				"ip", halt.IP,
				"dp", halt.DP,
				"steps", state.Steps,
			)
			return state, logs.WrapSpan(ctx, halt)
		}

		logger.DebugContext(ctx, "done",
			"name", source.Name,
			"steps", state.Steps,
			"output", len(state.Output),
		)
		return state, nil
	}
}

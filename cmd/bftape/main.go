package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/bftape/bfrun"
	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/debugs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/bftape/reports"
	"github.com/reusee/dscope"
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		loader configs.Loader,
	) {
		ce(loader.Err())
	})

	if checkDir != "" {
		var failed int
		scope.Call(func(
			check Check,
		) {
			failed = check(ctx, checkDir, checkRun)
		})
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	var sources []bfrun.Source
	data := getInput()
	if *sourceFlag != "" {
		sources = append(sources, bfrun.Source{
			Name:    "-source",
			Program: *sourceFlag,
			Input:   data,
		})
	}
	for _, path := range *files {
		source, err := bfrun.SourceFile(path, data)
		ce(err)
		sources = append(sources, source)
	}
	if len(sources) == 0 {
		fmt.Fprintf(os.Stderr, "no program given\n\n")
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	var halted bool
	if len(sources) == 1 {
		scope.Call(func(
			runOne RunOne,
		) {
			halted = runOne(ctx, sources[0])
		})
	} else {
		scope.Call(func(
			runMany RunMany,
		) {
			halted = runMany(ctx, sources)
		})
	}
	if halted {
		os.Exit(1)
	}
}

// RunOne streams the program output to stdout, returning true if the machine halted.
type RunOne func(ctx context.Context, source bfrun.Source) bool

func (Module) RunOne(
	execute bfrun.Execute,
	preamble reports.Preamble,
	report reports.Report,
	tap debugs.Tap,
	logger logs.Logger,
) RunOne {
	return func(ctx context.Context, source bfrun.Source) bool {
		stdout := bufio.NewWriter(os.Stdout)
		ce(preamble(stdout, source))
		state, err := execute(ctx, source, stdout)
		if out := state.Output; len(out) > 0 && out[len(out)-1] != '\n' {
			fmt.Fprintln(stdout)
		}
		ce(stdout.Flush())
		if err := report(os.Stderr, bfrun.Result{
			Source: source,
			State:  state,
			Err:    err,
		}); err != nil {
			logger.Error("report", "err", err)
		}
		if *tapFlag {
			tap(ctx, "halt", debugs.StateGlobals(bfvm.Tokenize(source.Program), state))
		}
		return err != nil
	}
}

// RunMany runs sources concurrently and prints each output under its name.
type RunMany func(ctx context.Context, sources []bfrun.Source) bool

func (Module) RunMany(
	batch bfrun.Batch,
	preamble reports.Preamble,
	report reports.Report,
) RunMany {
	return func(ctx context.Context, sources []bfrun.Source) bool {
		var halted bool
		for _, result := range batch(ctx, sources) {
			fmt.Fprintf(os.Stdout, "== %s ==\n", result.Source.Name)
			ce(preamble(os.Stdout, result.Source))
			if result.State != nil {
				fmt.Fprintln(os.Stdout, result.State.Text())
			}
			ce(report(os.Stderr, result))
			if result.Err != nil {
				halted = true
			}
		}
		return halted
	}
}

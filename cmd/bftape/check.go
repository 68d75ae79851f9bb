package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/reusee/bftape/bfcases"
	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/logs"
)

// Check runs the cases under dir whose names contain run, returning the number of failures.
type Check func(ctx context.Context, dir string, run string) int

func (Module) Check(
	parallelism bfconfigs.Parallelism,
	logger logs.Logger,
) Check {
	return func(ctx context.Context, dir string, run string) int {
		cases, err := bfcases.LoadDir(dir)
		ce(err)
		cases = slices.DeleteFunc(cases, func(c bfcases.Case) bool {
			return !strings.Contains(c.Name, run)
		})
		logger.InfoContext(ctx, "cases loaded",
			"dir", dir,
			"count", len(cases),
		)

		var failed int
		for _, outcome := range bfcases.CheckAll(ctx, cases, int(parallelism)) {
			if outcome.Err != nil {
				failed++
				fmt.Fprintf(os.Stdout, "FAIL %s\n%v\n", outcome.Case.Name, outcome.Err)
				continue
			}
			fmt.Fprintf(os.Stdout, "ok   %s\n", outcome.Case.Name)
		}
		fmt.Fprintf(os.Stdout, "%d/%d passed\n", len(cases)-failed, len(cases))
		return failed
	}
}

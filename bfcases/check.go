package bfcases

import (
	"context"
	"sync"

	"github.com/reusee/bftape/syncs"
)

type Outcome struct {
	Case Case
	Err  error
}

// CheckAll runs cases concurrently, at most parallelism at a time.
// Outcomes keep the order of cases.
func CheckAll(ctx context.Context, cases []Case, parallelism int) []Outcome {
	outcomes := make([]Outcome, len(cases))
	sem := syncs.NewSemaphore(parallelism)
	wg := new(sync.WaitGroup)
	for i, c := range cases {
		outcomes[i].Case = c
		if err := sem.AcquireContext(ctx); err != nil {
			outcomes[i].Err = err
			continue
		}
		wg.Go(func() {
			defer sem.Release()
			outcomes[i].Err = c.Check(c.Run(ctx))
		})
	}
	wg.Wait()
	return outcomes
}

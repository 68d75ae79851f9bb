package bfrun

import (
	"context"
	"sync"

	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/syncs"
)

// Batch runs sources concurrently, each on its own machine.
// Results keep the order of sources; output is not streamed.
type Batch func(ctx context.Context, sources []Source) []Result

func (Module) Batch(
	execute Execute,
	parallelism bfconfigs.Parallelism,
) Batch {
	return func(ctx context.Context, sources []Source) []Result {
		results := make([]Result, len(sources))
		sem := syncs.NewSemaphore(int(parallelism))
		wg := new(sync.WaitGroup)
		for i, source := range sources {
			results[i].Source = source
			if err := sem.AcquireContext(ctx); err != nil {
				results[i].Err = err
				continue
			}
			wg.Go(func() {
				defer sem.Release()
				results[i].State, results[i].Err = execute(ctx, source, nil)
			})
		}
		wg.Wait()
		return results
	}
}

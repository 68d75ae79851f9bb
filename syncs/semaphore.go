package syncs

import "context"

type Semaphore chan struct{}

// NewSemaphore returns a semaphore admitting n holders. n below 1 admits one.
func NewSemaphore(n int) Semaphore {
	return make(Semaphore, max(n, 1))
}

// AcquireContext blocks until a slot is free or ctx is done.
func (s Semaphore) AcquireContext(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}

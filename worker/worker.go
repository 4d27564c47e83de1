package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	defer sentry.Recover()

	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		f()
	}
}

// Submit queues f to run on the worker pool. To be used by a function that may be CPU intensive.
func Submit(f func()) {
	workerQueue <- f
}

// Parallel runs fn for every i in [0, n) on the worker pool and blocks until all calls have returned.
// Parallel must not be called from a function running on the pool.
func Parallel(n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		Submit(func() {
			defer wg.Done()
			fn(i)
		})
	}
	wg.Wait()
}

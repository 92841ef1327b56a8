// Package parallel splits index ranges across a bounded set of goroutines.
package parallel

import "golang.org/x/sync/errgroup"

// minPerWorker keeps tiny ranges on the calling goroutine.
const minPerWorker = 2

// Range calls fn over contiguous chunks covering [0, count). With workers <= 1
// fn runs once on the caller. Range returns only after every chunk is done,
// so callers can use it as a barrier between dependent passes.
func Range(count, workers int, fn func(from, to int)) {
	if count <= 0 {
		return
	}
	if workers <= 1 || count < minPerWorker*workers {
		fn(0, count)
		return
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	chunk := (count + workers - 1) / workers
	for from := 0; from < count; from += chunk {
		to := min(from+chunk, count)
		eg.Go(func() error {
			fn(from, to)
			return nil
		})
	}
	_ = eg.Wait()
}

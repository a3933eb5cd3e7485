package parallel

import (
	"runtime"
	"sync"
)

// MinRows is the smallest band handed to one goroutine. Images with fewer
// rows than this run on the calling goroutine.
const MinRows = 64

// Rows calls fn over disjoint half-open row ranges [lo, hi) that together
// cover [lo, hi) of the input, and returns once every call has finished.
// At most workers goroutines run; workers <= 0 uses GOMAXPROCS.
//
// fn must only touch rows inside its own range.
func Rows(lo, hi, workers int, fn func(lo, hi int)) {
	n := hi - lo
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, (n+MinRows-1)/MinRows)
	if workers <= 1 {
		fn(lo, hi)
		return
	}

	band := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := lo; start < hi; start += band {
		end := min(start+band, hi)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(start, end)
		}()
	}
	wg.Wait()
}

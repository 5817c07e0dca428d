package universe

import "sync"

// minParallelChunk is the smallest per-goroutine slice of work worth the
// scheduling overhead.
const minParallelChunk = 16

// parallelFor executes fn over [0, n) split into contiguous chunks, one per
// worker goroutine. Small ranges and worker counts below two run inline.
func parallelFor(n, workers, minChunk int, fn func(start, end int)) {
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

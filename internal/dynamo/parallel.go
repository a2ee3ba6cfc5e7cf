package dynamo

import "sync"

// ParallelFor partitions [0, n) into contiguous blocks and runs fn on
// each block in its own goroutine, joining before returning. Worker w
// owns [w*floor(n/workers), (w+1)*floor(n/workers)); the last worker
// absorbs whatever remainder that floor division drops. workers below
// 1 or a range too small to split runs fn inline on the whole range.
func ParallelFor(n, minChunk, workers int, fn func(start, end int)) {
	if workers < 1 {
		workers = 1
	}
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

	chunk := n / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if w == workers-1 {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

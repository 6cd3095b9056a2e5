package stats

import "sync"

// chunkBounds returns the half-open range of chunk w when n elements are
// split across workers chunks. Chunking is deterministic, so a parallel
// reduction always combines the same partials in the same order.
func chunkBounds(n, workers, w int) (lo, hi int) {
	size := (n + workers - 1) / workers
	lo = w * size
	hi = min(lo+size, n)

	return lo, hi
}

// parallelSum reduces data to its sum with one goroutine per chunk.
// Each worker reads a disjoint sub-slice and writes a single partial,
// so no synchronization beyond the WaitGroup is needed.
func parallelSum[T Float](data []T, workers int) T {
	partials := make([]T, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := chunkBounds(len(data), workers, w)
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			var sum T
			for _, v := range data[lo:hi] {
				sum += v
			}
			partials[w] = sum
		}(w, lo, hi)
	}
	wg.Wait()

	var total T
	for _, s := range partials {
		total += s
	}

	return total
}

// parallelDot reduces a and b to their dot product with one goroutine
// per chunk. Both slices must have equal length; the caller checks.
func parallelDot[T Float](a, b []T, workers int) T {
	partials := make([]T, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := chunkBounds(len(a), workers, w)
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			var sum T
			for i := lo; i < hi; i++ {
				sum += a[i] * b[i]
			}
			partials[w] = sum
		}(w, lo, hi)
	}
	wg.Wait()

	var total T
	for _, s := range partials {
		total += s
	}

	return total
}

// parallelShift writes data[i]-m into out[i] with one goroutine per
// chunk. Workers write disjoint ranges of out.
func parallelShift[T Float](out, data []T, m T, workers int) {
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := chunkBounds(len(data), workers, w)
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				out[i] = data[i] - m
			}
		}(lo, hi)
	}
	wg.Wait()
}

// Package parallel splits row ranges across goroutines for elementwise work
// whose result does not depend on evaluation order.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultThreshold is the row count below which ParallelizeWithThreshold
// stays on the calling goroutine.
const DefaultThreshold = 1000

// Parallelize calls fn on disjoint [start, end) ranges covering [0, items),
// one range per available CPU, and waits for all of them.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > items {
		workers = items
	}
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) directly when items <= threshold
// and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

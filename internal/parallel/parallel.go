// Package parallel provides data-parallel fan-out over index ranges.
//
// Propagation code dispatches independent per-unit work either sequentially
// or across a bounded set of goroutines, depending on a runtime flag. Every
// dispatch is synchronous: the caller blocks until all sub-tasks for the
// fan-out complete.
package parallel

import (
	"runtime"
	"sync"
)

// Range is a contiguous half-open index interval [Begin, End).
type Range struct {
	Begin int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Begin
}

// ForRangeN partitions [begin, end) into blocks contiguous, disjoint
// sub-ranges that together cover the interval, and executes task once per
// sub-range. With more than one block, each sub-range runs on its own
// goroutine; ForRangeN returns only after all of them complete.
//
// Concurrent tasks must write only within their own sub-range's slice of any
// shared buffer. That disjoint-write contract is what makes lock-free
// gradient accumulation safe.
func ForRangeN(blocks, begin, end int, task func(Range)) {
	n := end - begin
	if n <= 0 {
		return
	}
	blocks = min(blocks, n)
	if blocks <= 1 {
		task(Range{Begin: begin, End: end})
		return
	}

	var wg sync.WaitGroup
	wg.Add(blocks)

	size := n / blocks
	rem := n % blocks

	start := begin
	for b := 0; b < blocks; b++ {
		stop := start + size
		if b < rem {
			stop++
		}
		r := Range{Begin: start, End: stop}
		start = stop

		go func() {
			defer wg.Done()
			task(r)
		}()
	}

	wg.Wait()
}

// ForRange executes task once per contiguous block of [begin, end). When
// parallelize is true the range is split into one block per logical CPU;
// otherwise the whole range is handed to task in a single call.
func ForRange(parallelize bool, begin, end int, task func(Range)) {
	blocks := 1
	if parallelize {
		blocks = runtime.GOMAXPROCS(0)
	}
	ForRangeN(blocks, begin, end, task)
}

// For executes task(i) for i in [0, n), in parallel across CPU-count blocks
// when parallelize is true. Tasks for distinct indices must be independent.
func For(parallelize bool, n int, task func(i int)) {
	ForRange(parallelize, 0, n, func(r Range) {
		for i := r.Begin; i < r.End; i++ {
			task(i)
		}
	})
}

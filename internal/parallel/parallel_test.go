package parallel_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-ml/cascade/internal/parallel"
)

// TestForRangeN_DisjointCoverage checks the partitioning contract: for any
// block count, the sub-ranges cover [begin, end) exactly once.
func TestForRangeN_DisjointCoverage(t *testing.T) {
	const begin, end = 3, 20

	for _, blocks := range []int{1, 2, 3, 7, 16, 64} {
		hits := make([]int32, end)

		parallel.ForRangeN(blocks, begin, end, func(r parallel.Range) {
			require.LessOrEqual(t, begin, r.Begin)
			require.LessOrEqual(t, r.End, end)
			require.Positive(t, r.Len())
			for i := r.Begin; i < r.End; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})

		for i := 0; i < begin; i++ {
			assert.Zero(t, hits[i], "blocks=%d index=%d outside range was touched", blocks, i)
		}
		for i := begin; i < end; i++ {
			assert.Equal(t, int32(1), hits[i], "blocks=%d index=%d", blocks, i)
		}
	}
}

// TestForRangeN_EmptyRange checks that an empty or inverted range dispatches
// nothing.
func TestForRangeN_EmptyRange(t *testing.T) {
	calls := 0
	parallel.ForRangeN(4, 5, 5, func(parallel.Range) { calls++ })
	parallel.ForRangeN(4, 7, 3, func(parallel.Range) { calls++ })
	assert.Zero(t, calls)
}

// TestForRange_SequentialSingleBlock checks that the sequential path hands
// the whole range to one task on the caller's goroutine.
func TestForRange_SequentialSingleBlock(t *testing.T) {
	var got []parallel.Range
	parallel.ForRange(false, 2, 11, func(r parallel.Range) {
		got = append(got, r)
	})

	require.Len(t, got, 1)
	assert.Equal(t, parallel.Range{Begin: 2, End: 11}, got[0])
}

// TestFor_ParallelMatchesSequential checks that per-index dispatch produces
// the same writes with the parallel flag on and off.
func TestFor_ParallelMatchesSequential(t *testing.T) {
	const n = 1000

	seq := make([]int, n)
	parallel.For(false, n, func(i int) { seq[i] = i * i })

	par := make([]int, n)
	parallel.For(true, n, func(i int) { par[i] = i * i })

	assert.Equal(t, seq, par)
}

// TestForRangeN_BlocksExceedRange checks that the block count is clamped so
// no task ever receives an empty range.
func TestForRangeN_BlocksExceedRange(t *testing.T) {
	var calls int32
	parallel.ForRangeN(100, 0, 5, func(r parallel.Range) {
		require.Positive(t, r.Len())
		atomic.AddInt32(&calls, 1)
	})
	assert.LessOrEqual(t, calls, int32(5))
}

// TestForRangeN_BlocksUntilCompletion checks that the dispatch is
// synchronous: every sub-task has finished when the call returns.
func TestForRangeN_BlocksUntilCompletion(t *testing.T) {
	var mu sync.Mutex
	done := 0

	parallel.ForRangeN(8, 0, 64, func(r parallel.Range) {
		mu.Lock()
		done += r.Len()
		mu.Unlock()
	})

	assert.Equal(t, 64, done)
}

package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// MapReduce applies mapFn to every index in [0,n) across one worker per
// CPU and merges the per-worker partials with merge, starting each worker
// from identity. merge must be associative and commutative; mapFn must be
// safe to call concurrently for distinct indices. Complexity: O(n) work,
// O(workers) extra memory.
func MapReduce[R any](n int, identity R, mapFn func(i int) R, merge func(a, b R) R) R {
	if n <= 0 {
		return identity
	}
	workers := min(runtime.NumCPU(), n)
	partials := make([]R, workers)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, n)
		g.Go(func() error {
			acc := identity
			for i := lo; i < hi; i++ {
				acc = merge(acc, mapFn(i))
			}
			partials[w] = acc
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	out := identity
	for _, p := range partials {
		out = merge(out, p)
	}
	return out
}

// ForEach runs fn for every index in [0,n) across one worker per CPU.
// fn must be safe to call concurrently for distinct indices.
func ForEach(n int, fn func(i int)) {
	MapReduce(n, struct{}{}, func(i int) struct{} {
		fn(i)
		return struct{}{}
	}, func(a, _ struct{}) struct{} { return a })
}

// Sum maps every index in [0,n) to a number and returns the total.
func Sum[T constraints.Integer | constraints.Float](n int, mapF func(i int) T) T {
	return MapReduce(n, T(0), mapF, func(a, b T) T { return a + b })
}

// Max maps every index in [0,n) to an ordered value and returns the
// largest, merging with identity as the floor.
func Max[T constraints.Ordered](n int, identity T, mapF func(i int) T) T {
	return MapReduce(n, identity, mapF, func(a, b T) T { return max(a, b) })
}

// Count reports how many indices in [0,n) satisfy pred.
func Count(n int, pred func(i int) bool) int {
	return Sum(n, func(i int) int {
		if pred(i) {
			return 1
		}
		return 0
	})
}

// FirstMatch returns the lowest index in [0,n) satisfying pred, scanning
// chunks concurrently, or -1 if none does.
func FirstMatch(n int, pred func(i int) bool) int {
	if n <= 0 {
		return -1
	}
	workers := min(runtime.NumCPU(), n)
	chunk := (n + workers - 1) / workers
	found := make([]int, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, n)
		found[w] = -1
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if pred(i) {
					found[w] = i
					return
				}
			}
		}()
	}
	wg.Wait()

	for _, idx := range found {
		if idx >= 0 {
			return idx
		}
	}
	return -1
}

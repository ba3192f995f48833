// Package parallel is a small worker-pool-with-reduction abstraction for
// embarrassingly parallel per-element work: map an index range across one
// worker per CPU, then merge the partial results. Solvers use it for
// per-row and per-pair fan-out; the benchmarking harness stays entirely
// agnostic to it.
package parallel

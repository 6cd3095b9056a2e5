// Package stats provides the numerically stable reduction primitives that
// the linreg fit engine is built from: arithmetic mean, mean-centering,
// and dot product.
//
// All primitives are generic over the floating-point element type and
// operate on read-only slices. They never mutate their inputs and every
// result is freshly allocated, so concurrent callers need no
// synchronization.
//
// # Execution Strategy
//
// Each primitive accepts functional options selecting between a
// sequential reduction (the default) and a data-parallel fork-join
// reduction for large inputs:
//
//	m, err := stats.Mean(values, stats.WithParallel())
//
// The parallel strategy splits the input into per-worker chunks, reduces
// each chunk independently, and combines the partial results. Workers
// only ever read disjoint sub-slices of immutable input, so no locking
// is involved. The only observable difference from the sequential
// strategy is floating-point reassociation: parallel sums may differ
// from sequential ones by a few ULPs. This is accepted non-determinism,
// and comparisons against parallel results should use a tolerance rather
// than bit-exact equality.
//
// WithParallel is a request, not a command: inputs shorter than the
// parallel threshold (see WithParallelThreshold) still run sequentially,
// since goroutine fan-out costs more than it saves on small slices.
package stats

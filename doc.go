// Package cleave provides divide-and-conquer parallel iteration for Go.
//
// A parallel computation is described lazily as a chain of [Iter]
// combinators, then executed by a terminal operation that recursively
// splits the underlying data in half, runs the halves on separate
// goroutines when capacity allows, and recombines partial results in
// source order.
//
// # Building Pipelines
//
// Pipelines start from an indexed source and are extended with pure
// combinators. No element is touched until a terminal operation runs:
//
//	it := cleave.Map(cleave.Slice(nums), func(v int) int { return v * 2 })
//	sum, err := cleave.Reduce(ctx, it, 0,
//	    func(acc, v int) int { return acc + v },
//	    func(a, b int) int { return a + b },
//	)
//
// [Slice] wraps a contiguous buffer, [Map] applies a transform to every
// element, and [Zip] pairs two equal-length pipelines element-by-element.
// Combinators only describe work; each returns a new [Iter] wrapping the
// previous one.
//
// Every combinator here preserves the element count of its input, which
// is what makes midpoint splitting possible. Combinators that cannot be
// split at an arbitrary index (filter, flat-map) are intentionally
// absent; they require a push-based consumer model instead.
//
// # Execution Model
//
// A terminal operation ([Reduce], [Collect], [ForEach]) materializes a
// [Producer] for the pipeline and drives it with a recursive bridge:
// while the remaining length exceeds the split threshold, the producer is
// split at its midpoint and the two halves are handed to a fork-join
// step; at or below the threshold the producer is drained sequentially
// through a [seq.Stream] on the current goroutine.
//
// Whether a forked half actually runs on another goroutine is decided by
// a [Workers] limiter: when no slot is free the half runs inline on the
// calling goroutine. Either way the recombination tree is fixed by the
// midpoint choices, so for an associative combine function the result is
// independent of the threshold and of scheduling.
//
// Element order of the source is always preserved in the final result.
// The combine function must be associative but need not be commutative.
//
// # Sharing and Ownership
//
// The transform passed to [Map] is owned by the pipeline node and shared,
// read-only, by every producer split from it. It may be called from
// multiple goroutines at once and must not mutate shared state; cleave
// does not detect violations. Producers are split into disjoint index
// ranges before any concurrent access begins, so no two branches ever
// touch overlapping elements.
//
// # Errors and Panics
//
// Out-of-range split indices, unequal [Zip] lengths, and nil arguments
// are programmer errors and panic. A panic inside a user-supplied
// transform, fold, or combine function is captured with its stack as a
// [*PanicError] and re-raised exactly once at the terminal call; with
// [WithPanicAsError] it is returned as a regular error instead. Errors
// from the underlying streams (including context cancellation) propagate
// to the terminal caller untouched; partial results from sibling branches
// are discarded.
//
// # Tuning and Observability
//
//   - [WithThreshold]: sequential cutoff length (default 64).
//   - [WithLimit]: maximum goroutines per terminal operation
//     (default runtime.NumCPU()).
//   - [WithOnSplit]: hook invoked for every split decision.
//   - [WithLogger]: zerolog trace logging of split and drain decisions.
//
// # Sequential Side
//
// The [github.com/cleave-go/cleave/seq] subpackage provides the lazy,
// pull-based [seq.Stream] that producers drain into. It is usable on its
// own for ordinary sequential pipelines.
package cleave

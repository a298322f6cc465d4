package cleave

import "github.com/cleave-go/cleave/seq"

// Iter is a lazy description of a parallel iteration pipeline: an
// element count plus a recipe for materializing a [Producer]. Building
// an Iter performs no work; execution starts only when a terminal
// operation ([Reduce], [Collect], [ForEach]) is invoked.
//
// An Iter owns any resource its eventual producer will borrow (for
// example a Map transform) and must outlive the terminal operation.
type Iter[T any] struct {
	length int

	// produce materializes a producer and hands it to yield. The
	// producer borrows state owned by this node and is valid only for
	// the duration of the yield call; it is never returned by value.
	// yield receives the Producer interface rather than any concrete
	// producer type, so nested combinators can materialize whatever
	// producer kind they need.
	produce func(yield func(Producer[T]))
}

// Len returns the number of elements the pipeline will produce.
func (it *Iter[T]) Len() int { return it.length }

// Slice creates a pipeline over the elements of a contiguous buffer.
// The slice is not copied; it must not be mutated while a terminal
// operation is running.
func Slice[T any](items []T) *Iter[T] {
	return &Iter[T]{
		length: len(items),
		produce: func(yield func(Producer[T])) {
			yield(&sliceProducer[T]{items: items})
		},
	}
}

// Map returns a pipeline applying fn to every element of it. fn is
// shared, read-only, by all goroutines executing the terminal operation
// and must be safe to call concurrently.
//
// Note: This is a function and not a method because Go does not support
// generic methods on generic types.
//
// Panics if it or fn is nil.
func Map[A, B any](it *Iter[A], fn func(A) B) *Iter[B] {
	if it == nil {
		panic("cleave: Map requires non-nil iterator")
	}
	if fn == nil {
		panic("cleave: Map requires non-nil transform")
	}
	return &Iter[B]{
		length: it.length,
		produce: func(yield func(Producer[B])) {
			it.produce(func(base Producer[A]) {
				yield(&mapProducer[A, B]{base: base, fn: fn})
			})
		},
	}
}

// Zip returns a pipeline pairing the elements of a and b positionally,
// producing [seq.Pair] values. Both pipelines must have the same length;
// unequal lengths are a programmer error.
//
// Panics if a or b is nil, or if their lengths differ.
func Zip[A, B any](a *Iter[A], b *Iter[B]) *Iter[seq.Pair[A, B]] {
	if a == nil || b == nil {
		panic("cleave: Zip requires non-nil iterators")
	}
	if a.length != b.length {
		panic("cleave: Zip requires equal-length iterators")
	}
	return &Iter[seq.Pair[A, B]]{
		length: a.length,
		produce: func(yield func(Producer[seq.Pair[A, B]])) {
			a.produce(func(pa Producer[A]) {
				b.produce(func(pb Producer[B]) {
					yield(&zipProducer[A, B]{a: pa, b: pb})
				})
			})
		},
	}
}

package cleave

import "github.com/cleave-go/cleave/seq"

// Producer is a splittable, drain-once handle over a contiguous logical
// range of elements. The bridge obtains one from a pipeline, splits it
// recursively, and drains the pieces sequentially.
//
// A producer does not store its own length; the caller tracks it across
// splits. Producers borrow any shared state (such as a Map transform)
// from the pipeline node that created them and must not be retained
// beyond the terminal operation that produced them.
type Producer[T any] interface {
	// SplitAt divides the producer into two producers covering the
	// element ranges [0, mid) and [mid, len). It is a pure structural
	// operation: no element is computed. The concatenation of the two
	// halves, drained in order, equals the original sequence.
	//
	// Requires 0 <= mid <= len; violating this is a programmer error
	// and panics.
	SplitAt(mid int) (Producer[T], Producer[T])

	// Sequential consumes the producer, yielding a single-pass stream
	// over exactly its elements, in order. A producer is drained at
	// most once.
	Sequential() *seq.Stream[T]
}

// sliceProducer is the base producer over a contiguous indexed buffer.
// It holds a borrowed sub-slice view, never a copy.
type sliceProducer[T any] struct {
	items []T
}

func (p *sliceProducer[T]) SplitAt(mid int) (Producer[T], Producer[T]) {
	if mid < 0 || mid > len(p.items) {
		panic("cleave: SplitAt index out of range")
	}
	return &sliceProducer[T]{items: p.items[:mid]},
		&sliceProducer[T]{items: p.items[mid:]}
}

func (p *sliceProducer[T]) Sequential() *seq.Stream[T] {
	return seq.FromSlice(p.items)
}

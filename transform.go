package cleave

import (
	"context"

	"github.com/cleave-go/cleave/seq"
)

// mapProducer applies a transform to every element of a base producer.
//
// The transform is owned by the pipeline node, not by the producer:
// every producer split from this one holds the same shared, read-only
// reference, so a pipeline can fan out across many goroutines without
// cloning or reference-counting the transform. The transform must be
// safe to call concurrently; mutating shared state from it is a caller
// error that this layer does not detect.
type mapProducer[A, B any] struct {
	base Producer[A]
	fn   func(A) B
}

func (p *mapProducer[A, B]) SplitAt(mid int) (Producer[B], Producer[B]) {
	left, right := p.base.SplitAt(mid)
	return &mapProducer[A, B]{base: left, fn: p.fn},
		&mapProducer[A, B]{base: right, fn: p.fn}
}

func (p *mapProducer[A, B]) Sequential() *seq.Stream[B] {
	fn := p.fn
	return seq.Map(p.base.Sequential(), func(_ context.Context, v A) (B, error) {
		return fn(v), nil
	})
}

// zipProducer pairs two producers of equal length in lock step.
//
// SplitAt applies the identical index to both sides — never an
// independently chosen one — otherwise positional pairing would be
// corrupted. Both sides have equal length by construction, so their
// sequential drains exhaust together.
type zipProducer[A, B any] struct {
	a Producer[A]
	b Producer[B]
}

func (p *zipProducer[A, B]) SplitAt(mid int) (Producer[seq.Pair[A, B]], Producer[seq.Pair[A, B]]) {
	aLeft, aRight := p.a.SplitAt(mid)
	bLeft, bRight := p.b.SplitAt(mid)
	return &zipProducer[A, B]{a: aLeft, b: bLeft},
		&zipProducer[A, B]{a: aRight, b: bRight}
}

func (p *zipProducer[A, B]) Sequential() *seq.Stream[seq.Pair[A, B]] {
	return seq.Zip(p.a.Sequential(), p.b.Sequential())
}

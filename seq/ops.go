package seq

import "context"

// Pair holds two values paired from two streams.
// It is produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs values from two streams element-by-element. The resulting
// stream emits [Pair] values and ends as soon as either input stream is
// exhausted.
//
// Both streams are read sequentially (a first, then b) within each Next
// call — this is safe because streams are single-consumer.
//
// Panics if a or b is nil.
func Zip[A, B any](a *Stream[A], b *Stream[B]) *Stream[Pair[A, B]] {
	if a == nil {
		panic("seq: Zip requires non-nil first stream")
	}
	if b == nil {
		panic("seq: Zip requires non-nil second stream")
	}
	return NewStream(func(ctx context.Context) (Pair[A, B], error) {
		va, err := a.Next(ctx)
		if err != nil {
			var zero Pair[A, B]
			return zero, err
		}
		vb, err := b.Next(ctx)
		if err != nil {
			var zero Pair[A, B]
			return zero, err
		}
		return Pair[A, B]{First: va, Second: vb}, nil
	})
}

package cleave

import (
	"context"
	"io"
)

// bridge is the divide-and-conquer driver. While length exceeds the
// threshold it splits the producer at its midpoint, runs the halves
// through forkJoin, and combines the partial results left-then-right;
// at or below the threshold it drains the producer sequentially.
//
// The recombination tree is fixed by the midpoint choices, so an
// associative combine yields the same result for every threshold and
// every scheduling of the halves. A fault in either half propagates to
// the caller; the sibling's partial result is discarded.
func bridge[T, R any](
	ctx context.Context,
	cfg *config,
	w *Workers,
	p Producer[T],
	length int,
	zero R,
	fold func(R, T) R,
	combine func(R, R) R,
) (R, error) {
	if length <= cfg.threshold {
		cfg.logger.Trace().Int("len", length).Msg("drain")
		return drainFold(ctx, p, zero, fold)
	}

	mid := length / 2
	cfg.logger.Trace().Int("len", length).Int("mid", mid).Msg("split")
	if cfg.onSplit != nil {
		cfg.onSplit(SplitInfo{Len: length, Mid: mid})
	}

	left, right := p.SplitAt(mid)
	leftVal, rightVal, err := forkJoin(w,
		func() (R, error) {
			return bridge(ctx, cfg, w, left, mid, zero, fold, combine)
		},
		func() (R, error) {
			return bridge(ctx, cfg, w, right, length-mid, zero, fold, combine)
		},
	)
	if err != nil {
		var zeroR R
		return zeroR, err
	}
	return combine(leftVal, rightVal), nil
}

// drainFold consumes the producer on the current goroutine, folding
// every element into an accumulator seeded with zero.
func drainFold[T, R any](ctx context.Context, p Producer[T], zero R, fold func(R, T) R) (R, error) {
	s := p.Sequential()
	acc := zero
	for {
		val, err := s.Next(ctx)
		if err == io.EOF {
			return acc, s.Err()
		}
		if err != nil {
			var zeroR R
			return zeroR, err
		}
		acc = fold(acc, val)
	}
}

package cleave

import (
	"context"
	"errors"
)

// Reduce executes the pipeline and folds every element into a single
// result. Leaves of the divide-and-conquer tree fold elements with
// fold, seeded with zero; partial results are merged left-then-right
// with combine.
//
// zero must be the identity of combine, and combine must be
// associative; it need not be commutative, since source order is always
// preserved. A zero-length pipeline reduces to zero.
//
// A panic in fold, combine, or an upstream transform is re-raised here
// as a [*PanicError], or returned as an error under [WithPanicAsError].
//
// Panics if it, fold, or combine is nil.
func Reduce[T, R any](
	ctx context.Context,
	it *Iter[T],
	zero R,
	fold func(R, T) R,
	combine func(R, R) R,
	opts ...Option,
) (R, error) {
	if it == nil {
		panic("cleave: Reduce requires non-nil iterator")
	}
	if fold == nil {
		panic("cleave: Reduce requires non-nil fold")
	}
	if combine == nil {
		panic("cleave: Reduce requires non-nil combine")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	w := newWorkers(cfg.limit)

	var (
		out R
		err error
	)
	// The producer exists only inside this callback; the bridge fully
	// consumes it before the pipeline's resources may go away.
	it.produce(func(p Producer[T]) {
		out, err = runRecovered(func() (R, error) {
			return bridge(ctx, &cfg, w, p, it.length, zero, fold, combine)
		})
	})

	if err != nil {
		var pe *PanicError
		if !cfg.panicAsErr && errors.As(err, &pe) {
			panic(pe)
		}
		var zeroR R
		return zeroR, err
	}
	return out, nil
}

// Collect executes the pipeline and materializes its elements into a
// slice, preserving source order.
func Collect[T any](ctx context.Context, it *Iter[T], opts ...Option) ([]T, error) {
	return Reduce(ctx, it, nil,
		func(acc []T, v T) []T {
			return append(acc, v)
		},
		func(left, right []T) []T {
			if left == nil {
				return right
			}
			// left is an exclusively owned partial result; appending in
			// place is race-free.
			return append(left, right...)
		},
		opts...)
}

// ForEach executes the pipeline, calling fn once per element. fn runs
// concurrently across branches and must be safe for concurrent
// invocation; per-branch, elements arrive in source order.
//
// Panics if fn is nil.
func ForEach[T any](ctx context.Context, it *Iter[T], fn func(T), opts ...Option) error {
	if fn == nil {
		panic("cleave: ForEach requires non-nil function")
	}
	_, err := Reduce(ctx, it, struct{}{},
		func(acc struct{}, v T) struct{} {
			fn(v)
			return acc
		},
		func(a, _ struct{}) struct{} {
			return a
		},
		opts...)
	return err
}

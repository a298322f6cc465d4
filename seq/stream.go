package seq

import (
	"context"
	"io"
	"sync"
)

// Stream represents a lazy, pull-based sequence of values.
//
// Note: Streams are single-consumer and single-pass. Next() and terminal
// methods must not be called concurrently, and a drained stream cannot
// be restarted.
type Stream[T any] struct {
	next func(ctx context.Context) (T, error)
	err  error
	mu   sync.Mutex
}

// Next returns the next value in the stream.
// Returns io.EOF when the stream is exhausted.
func (s *Stream[T]) Next(ctx context.Context) (T, error) {
	val, err := s.next(ctx)
	if err != nil && err != io.EOF {
		s.setError(err)
	}
	return val, err
}

// Err returns the first non-EOF error observed while pulling from the
// stream, or nil.
func (s *Stream[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Stream[T]) setError(err error) {
	if err == nil || err == io.EOF {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// NewStream creates a stream from an iterator function.
func NewStream[T any](next func(context.Context) (T, error)) *Stream[T] {
	return &Stream[T]{next: next}
}

// FromSlice creates a stream over the elements of a slice, in order.
func FromSlice[T any](items []T) *Stream[T] {
	var idx int
	return NewStream(func(ctx context.Context) (T, error) {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		default:
		}
		if idx >= len(items) {
			var zero T
			return zero, io.EOF
		}
		val := items[idx]
		idx++
		return val, nil
	})
}

// FromFunc creates a stream from a function.
func FromFunc[T any](fn func(context.Context) (T, error)) *Stream[T] {
	return NewStream(fn)
}

// FromChan creates a stream that pulls from a channel until it is closed.
func FromChan[T any](ch <-chan T) *Stream[T] {
	return NewStream(func(ctx context.Context) (T, error) {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case v, ok := <-ch:
			if !ok {
				var zero T
				return zero, io.EOF
			}
			return v, nil
		}
	})
}

// Filter returns a stream yielding only values for which fn returns true.
func (s *Stream[T]) Filter(fn func(T) bool) *Stream[T] {
	return NewStream(func(ctx context.Context) (T, error) {
		for {
			val, err := s.Next(ctx)
			if err != nil {
				return val, err
			}
			if fn(val) {
				return val, nil
			}
		}
	})
}

// Take limits the stream to n values.
func (s *Stream[T]) Take(n int) *Stream[T] {
	var idx int
	return NewStream(func(ctx context.Context) (T, error) {
		if idx >= n {
			var zero T
			return zero, io.EOF
		}
		val, err := s.Next(ctx)
		if err != nil {
			return val, err
		}
		idx++
		return val, nil
	})
}

// Skip skips the first n values of the stream.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	var skipped int
	return NewStream(func(ctx context.Context) (T, error) {
		for skipped < n {
			_, err := s.Next(ctx)
			if err != nil {
				var zero T
				return zero, err
			}
			skipped++
		}
		return s.Next(ctx)
	})
}

// Peek allows inspecting values as they pass through the stream.
func (s *Stream[T]) Peek(fn func(T)) *Stream[T] {
	return NewStream(func(ctx context.Context) (T, error) {
		val, err := s.Next(ctx)
		if err == nil {
			fn(val)
		}
		return val, err
	})
}

// Map transforms a stream using a function.
// Note: This is a function and not a method because Go does not support
// generic methods on generic types.
func Map[A, B any](s *Stream[A], fn func(context.Context, A) (B, error)) *Stream[B] {
	return NewStream(func(ctx context.Context) (B, error) {
		val, err := s.Next(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return fn(ctx, val)
	})
}

// Reduce drains the stream, folding every value into an accumulator
// seeded with initial. It returns the final accumulator and the first
// error encountered, if any.
func Reduce[T, R any](ctx context.Context, s *Stream[T], initial R, fn func(R, T) R) (R, error) {
	acc := initial
	for {
		val, err := s.Next(ctx)
		if err == io.EOF {
			return acc, s.Err()
		}
		if err != nil {
			return acc, err
		}
		acc = fn(acc, val)
	}
}

// ToSlice collects all values in the stream into a slice.
func (s *Stream[T]) ToSlice(ctx context.Context) ([]T, error) {
	var items []T
	for {
		val, err := s.Next(ctx)
		if err == io.EOF {
			return items, s.Err()
		}
		if err != nil {
			return nil, err
		}
		items = append(items, val)
	}
}

// Collect is an alias for ToSlice.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	return s.ToSlice(ctx)
}

// ForEach applies a function to each value in the stream.
func (s *Stream[T]) ForEach(ctx context.Context, fn func(T) error) error {
	for {
		val, err := s.Next(ctx)
		if err == io.EOF {
			return s.Err()
		}
		if err != nil {
			return err
		}
		if err := fn(val); err != nil {
			return err
		}
	}
}

// Count counts the number of values in the stream.
func (s *Stream[T]) Count(ctx context.Context) (int, error) {
	var count int
	for {
		_, err := s.Next(ctx)
		if err == io.EOF {
			return count, s.Err()
		}
		if err != nil {
			return 0, err
		}
		count++
	}
}

// Package seq provides a lazy, pull-based sequence abstraction.
//
// A [Stream] yields values one at a time via [Stream.Next], returning
// [io.EOF] once exhausted. Streams are finite, single-pass, and
// single-consumer: a drained stream cannot be restarted, and Next must
// not be called concurrently.
//
// Streams are created with [NewStream], [FromSlice], [FromFunc], or
// [FromChan]. Chains of [Stream.Filter], [Stream.Take], [Stream.Skip],
// [Stream.Peek], [Map], and [Zip] are evaluated lazily; no value is
// produced until a terminal method ([Stream.ToSlice], [Stream.ForEach],
// [Stream.Count], [Reduce]) pulls it.
//
// The parent cleave package drains streams obtained from producers; see
// its documentation for the parallel side of the picture.
package seq

package parallel

import (
	"sync/atomic"

	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// Equal reports whether a and b have the same length and equal elements at
// every index. The comparison terminates early once a differing pair has
// been found.
func Equal[T comparable](a, b []T) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b have the same length and elements for
// which eq holds at every index. The comparison terminates early once a
// differing pair has been found.
func EqualFunc[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	count := len(a)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.EqualFunc(a, b, eq)
	}
	op := &equalOp[T]{p: newPartition(count, chunks), a: a, b: b, eq: eq}
	internal.Apply(chunks, op.run)
	return !op.done.Load()
}

type equalOp[T any] struct {
	p    partition
	a, b []T
	eq   func(T, T) bool
	done atomic.Bool
}

func (op *equalOp[T]) run(chunk int) {
	if op.done.Load() {
		return
	}
	low, high := op.p.at(chunk)
	for i := low; i < high; i++ {
		if i%doneCheckStride == 0 && op.done.Load() {
			return
		}
		if !op.eq(op.a[i], op.b[i]) {
			op.done.Store(true)
			return
		}
	}
}

// Mismatch returns the first index at which a and b differ, comparing up to
// the length of the shorter slice. If one slice is a prefix of the other,
// the result is that shorter length.
func Mismatch[T comparable](a, b []T) int {
	return MismatchFunc(a, b, func(x, y T) bool { return x == y })
}

// MismatchFunc is like Mismatch, with elements compared by eq.
func MismatchFunc[T any](a, b []T, eq func(T, T) bool) int {
	count := min(len(a), len(b))
	a, b = a[:count], b[:count]
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.MismatchFunc(a, b, eq)
	}
	op := &mismatchOp[T]{
		p:      newPartition(count, chunks),
		a:      a,
		b:      b,
		eq:     eq,
		result: newMinIndex(count),
	}
	internal.Apply(chunks, op.run)
	return op.result.get(count)
}

type mismatchOp[T any] struct {
	p      partition
	a, b   []T
	eq     func(T, T) bool
	result minIndex
}

func (op *mismatchOp[T]) run(chunk int) {
	if op.result.stale(chunk) {
		return
	}
	low, high := op.p.at(chunk)
	if i := sequential.MismatchFunc(op.a[low:high], op.b[low:high], op.eq); i < high-low {
		op.result.report(chunk, low+i)
	}
}

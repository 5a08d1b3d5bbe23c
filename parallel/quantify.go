package parallel

import (
	"sync/atomic"

	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// AllOf reports whether pred is true for every element of s. It is true for
// an empty slice. The scan terminates early once a failing element has been
// found.
func AllOf[T any](s []T, pred func(T) bool) bool {
	return quantify(s, pred, true, true)
}

// AnyOf reports whether pred is true for at least one element of s. It is
// false for an empty slice. The scan terminates early once a satisfying
// element has been found.
func AnyOf[T any](s []T, pred func(T) bool) bool {
	return quantify(s, pred, false, false)
}

// NoneOf reports whether pred is false for every element of s. It is true
// for an empty slice. The scan terminates early once a satisfying element
// has been found.
func NoneOf[T any](s []T, pred func(T) bool) bool {
	return quantify(s, pred, false, true)
}

// quantify realises all three quantifier algorithms: the answer is init
// unless some element's predicate value differs from expected, in which
// case it is !init.
func quantify[T any](s []T, pred func(T) bool, expected, init bool) bool {
	count := len(s)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		if sequential.FindFunc(s, func(v T) bool { return pred(v) != expected }) >= 0 {
			return !init
		}
		return init
	}
	op := &quantifyOp[T]{p: newPartition(count, chunks), s: s, pred: pred, expected: expected}
	internal.Apply(chunks, op.run)
	if op.done.Load() {
		return !init
	}
	return init
}

type quantifyOp[T any] struct {
	p        partition
	s        []T
	pred     func(T) bool
	expected bool
	done     atomic.Bool
}

func (op *quantifyOp[T]) run(chunk int) {
	if op.done.Load() {
		return
	}
	low, high := op.p.at(chunk)
	for i := low; i < high; i++ {
		if i%doneCheckStride == 0 && op.done.Load() {
			return
		}
		if op.pred(op.s[i]) != op.expected {
			op.done.Store(true)
			return
		}
	}
}

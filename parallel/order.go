package parallel

import (
	"cmp"
	"sync/atomic"

	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// The pair-scanning algorithms chunk the first len(s)-1 indices, so that a
// chunk examining the pair (s[i], s[i+1]) never reads past the end of s,
// and pairs straddling a chunk boundary belong to exactly one chunk.

// AdjacentFind returns the smallest index i such that s[i] == s[i+1], or -1
// if there is no such pair.
func AdjacentFind[T comparable](s []T) int {
	return AdjacentFindFunc(s, func(a, b T) bool { return a == b })
}

// AdjacentFindFunc returns the smallest index i such that eq(s[i], s[i+1]),
// or -1 if there is no such pair.
func AdjacentFindFunc[T any](s []T, eq func(T, T) bool) int {
	count := len(s) - 1
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.AdjacentFindFunc(s, eq)
	}
	op := &adjacentFindOp[T]{
		p:      newPartition(count, chunks),
		s:      s,
		eq:     eq,
		result: newMinIndex(count),
	}
	internal.Apply(chunks, op.run)
	return op.result.get(-1)
}

type adjacentFindOp[T any] struct {
	p      partition
	s      []T
	eq     func(T, T) bool
	result minIndex
}

func (op *adjacentFindOp[T]) run(chunk int) {
	if op.result.stale(chunk) {
		return
	}
	low, high := op.p.at(chunk)
	for i := low; i < high; i++ {
		if op.eq(op.s[i], op.s[i+1]) {
			op.result.report(chunk, i)
			return
		}
	}
}

// IsSorted reports whether s is sorted in non-decreasing order. The scan
// terminates early once an out-of-order pair has been found.
func IsSorted[T cmp.Ordered](s []T) bool {
	return IsSortedFunc(s, func(a, b T) bool { return a < b })
}

// IsSortedFunc reports whether s is sorted with respect to the strict weak
// order less. The scan terminates early once an out-of-order pair has been
// found.
func IsSortedFunc[T any](s []T, less func(a, b T) bool) bool {
	count := len(s) - 1
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.IsSortedFunc(s, less)
	}
	op := &isSortedOp[T]{p: newPartition(count, chunks), s: s, less: less}
	internal.Apply(chunks, op.run)
	return !op.done.Load()
}

type isSortedOp[T any] struct {
	p    partition
	s    []T
	less func(a, b T) bool
	done atomic.Bool
}

func (op *isSortedOp[T]) run(chunk int) {
	if op.done.Load() {
		return
	}
	low, high := op.p.at(chunk)
	for i := low; i < high; i++ {
		if i%doneCheckStride == 0 && op.done.Load() {
			return
		}
		if op.less(op.s[i+1], op.s[i]) {
			op.done.Store(true)
			return
		}
	}
}

// IsSortedUntil returns the length of the longest sorted prefix of s, which
// is len(s) iff s is sorted.
func IsSortedUntil[T cmp.Ordered](s []T) int {
	return IsSortedUntilFunc(s, func(a, b T) bool { return a < b })
}

// IsSortedUntilFunc returns the length of the longest prefix of s that is
// sorted with respect to the strict weak order less.
func IsSortedUntilFunc[T any](s []T, less func(a, b T) bool) int {
	count := len(s) - 1
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.IsSortedUntilFunc(s, less)
	}
	op := &sortedUntilOp[T]{
		p:      newPartition(count, chunks),
		s:      s,
		less:   less,
		result: newMinIndex(count),
	}
	internal.Apply(chunks, op.run)
	return op.result.get(len(op.s))
}

type sortedUntilOp[T any] struct {
	p      partition
	s      []T
	less   func(a, b T) bool
	result minIndex
}

func (op *sortedUntilOp[T]) run(chunk int) {
	if op.result.stale(chunk) {
		return
	}
	low, high := op.p.at(chunk)
	for i := low; i < high; i++ {
		if op.less(op.s[i+1], op.s[i]) {
			// The prefix ends at the second element of the offending pair.
			op.result.report(chunk, i+1)
			return
		}
	}
}

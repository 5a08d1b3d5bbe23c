package parallel

import (
	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// Find returns the index of the first element of s equal to v, or -1 if
// there is no such element.
func Find[T comparable](s []T, v T) int {
	return FindFunc(s, func(w T) bool { return w == v })
}

// FindFunc returns the index of the first element of s for which pred is
// true, or -1 if there is no such element. Chunks whose work can no longer
// affect the result are skipped once an earlier chunk has found a match.
func FindFunc[T any](s []T, pred func(T) bool) int {
	count := len(s)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.FindFunc(s, pred)
	}
	op := &findOp[T]{
		p:      newPartition(count, chunks),
		s:      s,
		pred:   pred,
		result: newMinIndex(count),
	}
	internal.Apply(chunks, op.run)
	return op.result.get(-1)
}

// FindNotFunc returns the index of the first element of s for which pred is
// false, or -1 if there is no such element.
func FindNotFunc[T any](s []T, pred func(T) bool) int {
	return FindFunc(s, func(v T) bool { return !pred(v) })
}

// FindFirstOf returns the index of the first element of s that is equal to
// any element of set, or -1 if there is no such element.
func FindFirstOf[T comparable](s, set []T) int {
	return FindFunc(s, func(v T) bool {
		return sequential.Find(set, v) >= 0
	})
}

// FindFirstOfFunc returns the index of the first element of s for which eq
// holds with some element of set, or -1 if there is no such element.
func FindFirstOfFunc[T any](s, set []T, eq func(T, T) bool) int {
	return FindFunc(s, func(v T) bool {
		return sequential.AnyOf(set, func(w T) bool { return eq(v, w) })
	})
}

type findOp[T any] struct {
	p      partition
	s      []T
	pred   func(T) bool
	result minIndex
}

func (op *findOp[T]) run(chunk int) {
	if op.result.stale(chunk) {
		return
	}
	low, high := op.p.at(chunk)
	if i := sequential.FindFunc(op.s[low:high], op.pred); i >= 0 {
		op.result.report(chunk, low+i)
	}
}

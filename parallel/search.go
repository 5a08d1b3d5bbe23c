package parallel

import (
	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// The subsequence searches chunk the candidate start positions, of which
// there are len(haystack)-len(needle)+1. A chunk hands its window of the
// haystack, extended by len(needle)-1 elements so that matches starting
// near its right edge are fully visible, to the sequential reference.
// Degenerate inputs are decided before any parallel dispatch.

// Search returns the index of the first occurrence of needle as a
// contiguous subsequence of haystack, or -1 if there is no occurrence. An
// empty needle occurs at index 0.
func Search[T comparable](haystack, needle []T) int {
	return SearchFunc(haystack, needle, func(a, b T) bool { return a == b })
}

// SearchFunc is like Search, with elements compared by eq.
func SearchFunc[T any](haystack, needle []T, eq func(T, T) bool) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(haystack) < len(needle):
		return -1
	case len(haystack) == len(needle):
		if sequential.EqualFunc(haystack, needle, eq) {
			return 0
		}
		return -1
	}
	starts := len(haystack) - len(needle) + 1
	chunks := internal.WorkChunks(starts)
	if chunks <= 1 {
		return sequential.SearchFunc(haystack, needle, eq)
	}
	op := &searchOp[T]{
		p:        newPartition(starts, chunks),
		haystack: haystack,
		needle:   needle,
		eq:       eq,
		result:   newMinIndex(starts),
	}
	internal.Apply(chunks, op.run)
	return op.result.get(-1)
}

type searchOp[T any] struct {
	p        partition
	haystack []T
	needle   []T
	eq       func(T, T) bool
	result   minIndex
}

func (op *searchOp[T]) run(chunk int) {
	if op.result.stale(chunk) {
		return
	}
	low, high := op.p.at(chunk)
	window := op.haystack[low : high-1+len(op.needle)]
	if i := sequential.SearchFunc(window, op.needle, op.eq); i >= 0 {
		op.result.report(chunk, low+i)
	}
}

// SearchN returns the smallest index at which s contains n consecutive
// elements equal to v, or -1 if there is no such run. A run of length zero
// occurs at index 0.
func SearchN[T comparable](s []T, n int, v T) int {
	return SearchNFunc(s, n, v, func(a, b T) bool { return a == b })
}

// SearchNFunc is like SearchN, with elements compared to v by eq.
func SearchNFunc[T any](s []T, n int, v T, eq func(T, T) bool) int {
	switch {
	case n <= 0:
		return 0
	case len(s) < n:
		return -1
	}
	starts := len(s) - n + 1
	chunks := internal.WorkChunks(starts)
	if chunks <= 1 {
		return sequential.SearchNFunc(s, n, v, eq)
	}
	op := &searchNOp[T]{
		p:      newPartition(starts, chunks),
		s:      s,
		n:      n,
		v:      v,
		eq:     eq,
		result: newMinIndex(starts),
	}
	internal.Apply(chunks, op.run)
	return op.result.get(-1)
}

type searchNOp[T any] struct {
	p      partition
	s      []T
	n      int
	v      T
	eq     func(T, T) bool
	result minIndex
}

func (op *searchNOp[T]) run(chunk int) {
	if op.result.stale(chunk) {
		return
	}
	low, high := op.p.at(chunk)
	window := op.s[low : high-1+op.n]
	if i := sequential.SearchNFunc(window, op.n, op.v, op.eq); i >= 0 {
		op.result.report(chunk, low+i)
	}
}

// FindEnd returns the index of the last occurrence of needle as a
// contiguous subsequence of haystack, or -1 if there is no occurrence or
// needle is empty.
func FindEnd[T comparable](haystack, needle []T) int {
	return FindEndFunc(haystack, needle, func(a, b T) bool { return a == b })
}

// FindEndFunc is like FindEnd, with elements compared by eq. Chunks scan
// their candidate start positions from the back, so the first hit within a
// chunk is that chunk's latest, and the latest reporting chunk wins.
func FindEndFunc[T any](haystack, needle []T, eq func(T, T) bool) int {
	switch {
	case len(needle) == 0:
		return -1
	case len(haystack) < len(needle):
		return -1
	case len(haystack) == len(needle):
		if sequential.EqualFunc(haystack, needle, eq) {
			return 0
		}
		return -1
	}
	starts := len(haystack) - len(needle) + 1
	chunks := internal.WorkChunks(starts)
	if chunks <= 1 {
		return sequential.FindEndFunc(haystack, needle, eq)
	}
	op := &findEndOp[T]{
		p:        newPartition(starts, chunks),
		haystack: haystack,
		needle:   needle,
		eq:       eq,
		result:   newMaxIndex(starts),
	}
	internal.Apply(chunks, op.run)
	return op.result.get(-1)
}

type findEndOp[T any] struct {
	p        partition
	haystack []T
	needle   []T
	eq       func(T, T) bool
	result   maxIndex
}

func (op *findEndOp[T]) run(chunk int) {
	if op.result.stale(chunk) {
		return
	}
	low, high := op.p.at(chunk)
	window := op.haystack[low : high-1+len(op.needle)]
	if i := sequential.FindEndFunc(window, op.needle, op.eq); i >= 0 {
		op.result.report(chunk, low+i)
	}
}

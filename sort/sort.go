// Package sort provides a parallel, unstable sorting algorithm over slices.
//
// The implementation is a fork-join quicksort with per-worker queues and
// work stealing: partitioning a sub-range yields two smaller sub-ranges, of
// which one is processed in place while the other is enqueued for any idle
// worker to pick up. Equal elements are collected in the middle band of a
// three-way partition and never looked at again, so heavily repeated keys
// cost no extra work.
package sort

import (
	"cmp"
	"sync/atomic"

	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

const (
	// insertionCutoff is the sub-range size up to which insertion sort
	// beats further partitioning.
	insertionCutoff = 32

	// sequentialCutoff is the input size up to which the coordination cost
	// of the parallel path cannot be amortised.
	sequentialCutoff = 0x200

	// ninesCutoff is the sub-range size from which pivot selection spends
	// nine comparisons instead of three.
	ninesCutoff = 128

	// stealRounds bounds the non-blocking steal attempts per queue before
	// a worker falls back to a blocking pop on its own queue.
	stealRounds = 32
)

// Sort sorts s in non-decreasing order. The sort is not stable.
func Sort[T cmp.Ordered](s []T) {
	SortFunc(s, func(a, b T) bool { return a < b })
}

// SortFunc sorts s with respect to the strict weak order less. The sort is
// not stable: equal elements may end up in any order.
//
// less is invoked concurrently from multiple goroutines and must be safe
// for that; it must not panic, and it must implement a strict weak order
// consistently throughout the call.
func SortFunc[T any](s []T, less func(a, b T) bool) {
	workers := internal.MaxHwThreads()
	if workers < 2 || len(s) <= sequentialCutoff {
		sequential.SortFunc(s, less)
		return
	}
	op := &sorter[T]{
		s:      s,
		less:   less,
		queues: make([]workQueue, workers),
	}
	for i := range op.queues {
		op.queues[i].init()
	}
	op.pending.Store(1)
	op.queues[0].push(span{0, len(s)})
	var g internal.Group
	for i := 1; i < workers; i++ {
		i := i
		g.Dispatch(func() { op.work(i) })
	}
	// The calling goroutine participates as worker 0.
	op.work(0)
	g.Wait()
}

type sorter[T any] struct {
	s       []T
	less    func(a, b T) bool
	queues  []workQueue
	pending atomic.Int64
	rotor   atomic.Uint64
}

// work is the per-worker loop: obtain a span, process it to completion,
// and account for it. The worker that retires the last outstanding span
// closes all queues to release its blocked peers.
func (op *sorter[T]) work(self int) {
	for {
		it, ok := op.next(self)
		if !ok {
			return
		}
		op.process(it)
		if op.pending.Add(-1) == 0 {
			for i := range op.queues {
				op.queues[i].close()
			}
		}
	}
}

// next obtains the next span, first by polling all queues non-blocking,
// starting at the worker's own, then by a blocking pop on its own queue.
func (op *sorter[T]) next(self int) (span, bool) {
	w := len(op.queues)
	for attempt := 0; attempt < stealRounds*w; attempt++ {
		if it, ok := op.queues[(self+attempt)%w].tryPop(); ok {
			return it, true
		}
	}
	return op.queues[self].pop()
}

// process sorts the span completely: it keeps partitioning in place on the
// left sub-range while forking off the right one, until the remainder is
// small enough for insertion sort.
func (op *sorter[T]) process(it span) {
	low, high := it.low, it.high
	for high-low > insertionCutoff {
		pv := op.s[op.pivot(low, high)]
		lt, gt := op.partition(low, high, pv)
		if gt < high {
			op.fork(span{gt, high})
		}
		high = lt
	}
	insertionSort(op.s[low:high], op.less)
}

// fork enqueues a new span, preferring whichever queue accepts it without
// blocking, rotating the starting queue so spans spread over all workers.
func (op *sorter[T]) fork(it span) {
	op.pending.Add(1)
	w := uint64(len(op.queues))
	r := op.rotor.Add(1)
	for i := uint64(0); i < w; i++ {
		if op.queues[(r+i)%w].tryPush(it) {
			return
		}
	}
	op.queues[r%w].push(it)
}

// partition performs a three-way partition of [low, high) around the pivot
// value pv. On return, elements in [low, lt) are less than pv, elements in
// [lt, gt) are equivalent to pv, and elements in [gt, high) are greater.
func (op *sorter[T]) partition(low, high int, pv T) (lt, gt int) {
	s := op.s
	lt, gt = low, high
	for i := low; i < gt; {
		switch {
		case op.less(s[i], pv):
			s[i], s[lt] = s[lt], s[i]
			lt++
			i++
		case op.less(pv, s[i]):
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}
	return lt, gt
}

func (op *sorter[T]) pivot(low, high int) int {
	if high-low >= ninesCutoff {
		return op.pseudoMedianOfNine(low, high)
	}
	return op.medianOfThree(low, low+(high-low)/2, high-1)
}

func (op *sorter[T]) medianOfThree(l, m, r int) int {
	s, less := op.s, op.less
	if less(s[l], s[m]) {
		if less(s[m], s[r]) {
			return m
		} else if less(s[l], s[r]) {
			return r
		}
	} else if less(s[r], s[m]) {
		return m
	} else if less(s[r], s[l]) {
		return r
	}
	return l
}

func (op *sorter[T]) pseudoMedianOfNine(low, high int) int {
	offset := (high - low) / 8
	return op.medianOfThree(
		op.medianOfThree(low, low+offset, low+offset*2),
		op.medianOfThree(low+offset*3, low+offset*4, low+offset*5),
		op.medianOfThree(low+offset*6, low+offset*7, high-1),
	)
}

func insertionSort[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

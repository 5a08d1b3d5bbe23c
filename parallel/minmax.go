package parallel

import (
	"cmp"

	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// The extremum algorithms let every chunk record its local extremum in a
// per-chunk slot and resolve the global answer in a sequential pass over
// the slots, in chunk order, so that ties break exactly as in the
// sequential reference.

// MinElement returns the index of the leftmost smallest element of s, or -1
// if s is empty.
func MinElement[T cmp.Ordered](s []T) int {
	return MinElementFunc(s, func(a, b T) bool { return a < b })
}

// MinElementFunc returns the index of the leftmost smallest element of s
// with respect to less, or -1 if s is empty.
func MinElementFunc[T any](s []T, less func(a, b T) bool) int {
	count := len(s)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.MinElementFunc(s, less)
	}
	op := &extremumOp[T]{
		p:     newPartition(count, chunks),
		s:     s,
		less:  less,
		local: sequential.MinElementFunc[T],
		slots: make([]int, chunks),
	}
	internal.Apply(chunks, op.run)
	best := op.slots[0]
	for _, cand := range op.slots[1:] {
		if less(s[cand], s[best]) {
			best = cand
		}
	}
	return best
}

// MaxElement returns the index of the leftmost largest element of s, or -1
// if s is empty.
func MaxElement[T cmp.Ordered](s []T) int {
	return MaxElementFunc(s, func(a, b T) bool { return a < b })
}

// MaxElementFunc returns the index of the leftmost largest element of s
// with respect to less, or -1 if s is empty.
func MaxElementFunc[T any](s []T, less func(a, b T) bool) int {
	count := len(s)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.MaxElementFunc(s, less)
	}
	op := &extremumOp[T]{
		p:     newPartition(count, chunks),
		s:     s,
		less:  less,
		local: sequential.MaxElementFunc[T],
		slots: make([]int, chunks),
	}
	internal.Apply(chunks, op.run)
	best := op.slots[0]
	for _, cand := range op.slots[1:] {
		if less(s[best], s[cand]) {
			best = cand
		}
	}
	return best
}

type extremumOp[T any] struct {
	p     partition
	s     []T
	less  func(a, b T) bool
	local func([]T, func(a, b T) bool) int
	slots []int
}

func (op *extremumOp[T]) run(chunk int) {
	low, high := op.p.at(chunk)
	op.slots[chunk] = low + op.local(op.s[low:high], op.less)
}

// MinMaxElement returns the indices of the leftmost smallest and the
// rightmost largest element of s, or (-1, -1) if s is empty.
func MinMaxElement[T cmp.Ordered](s []T) (minIndex, maxIndex int) {
	return MinMaxElementFunc(s, func(a, b T) bool { return a < b })
}

// MinMaxElementFunc returns the indices of the leftmost smallest and the
// rightmost largest element of s with respect to less, or (-1, -1) if s is
// empty. As in the sequential reference, the smallest element is the
// leftmost one and the largest the rightmost one.
func MinMaxElementFunc[T any](s []T, less func(a, b T) bool) (minIndex, maxIndex int) {
	count := len(s)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.MinMaxElementFunc(s, less)
	}
	op := &minMaxOp[T]{
		p:     newPartition(count, chunks),
		s:     s,
		less:  less,
		slots: make([]minMaxSlot, chunks),
	}
	internal.Apply(chunks, op.run)
	best := op.slots[0]
	for _, cand := range op.slots[1:] {
		if less(s[cand.min], s[best.min]) {
			best.min = cand.min
		}
		if !less(s[cand.max], s[best.max]) {
			best.max = cand.max
		}
	}
	return best.min, best.max
}

type minMaxSlot struct {
	min, max int
}

type minMaxOp[T any] struct {
	p     partition
	s     []T
	less  func(a, b T) bool
	slots []minMaxSlot
}

func (op *minMaxOp[T]) run(chunk int) {
	low, high := op.p.at(chunk)
	mi, ma := sequential.MinMaxElementFunc(op.s[low:high], op.less)
	op.slots[chunk] = minMaxSlot{min: low + mi, max: low + ma}
}

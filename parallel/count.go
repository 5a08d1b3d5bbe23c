package parallel

import (
	"sync/atomic"

	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// Count returns the number of elements of s equal to v.
func Count[T comparable](s []T, v T) int {
	return CountFunc(s, func(w T) bool { return w == v })
}

// CountFunc returns the number of elements of s for which pred is true.
func CountFunc[T any](s []T, pred func(T) bool) int {
	count := len(s)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		return sequential.CountFunc(s, pred)
	}
	op := &countOp[T]{p: newPartition(count, chunks), s: s, pred: pred}
	internal.Apply(chunks, op.run)
	return int(op.n.Load())
}

type countOp[T any] struct {
	p    partition
	s    []T
	pred func(T) bool
	n    atomic.Int64
}

func (op *countOp[T]) run(chunk int) {
	low, high := op.p.at(chunk)
	op.n.Add(int64(sequential.CountFunc(op.s[low:high], op.pred)))
}

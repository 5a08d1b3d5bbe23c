package parallel

import (
	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// ForEach invokes f on a pointer to every element of s. f may mutate the
// element through the pointer. Elements are visited in no particular order;
// f must not rely on effects across elements.
func ForEach[T any](s []T, f func(*T)) {
	count := len(s)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		sequential.ForEach(s, f)
		return
	}
	op := &forEachOp[T]{p: newPartition(count, chunks), s: s, f: f}
	internal.Apply(chunks, op.run)
}

// ForEachN invokes f on a pointer to each of the first n elements of s. It
// panics if n is negative or greater than len(s).
func ForEachN[T any](s []T, n int, f func(*T)) {
	if n < 0 || n > len(s) {
		panic("parallel: for-each count out of range")
	}
	ForEach(s[:n], f)
}

type forEachOp[T any] struct {
	p partition
	s []T
	f func(*T)
}

func (op *forEachOp[T]) run(chunk int) {
	low, high := op.p.at(chunk)
	sequential.ForEach(op.s[low:high], op.f)
}

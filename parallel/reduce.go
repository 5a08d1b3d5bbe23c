package parallel

import (
	"github.com/exascience/parseq"
	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// The reductions bound their chunk count by count/2 so that every chunk
// holds at least two elements and can seed its accumulator from its first
// element pair, without requiring a neutral element from the caller.
// Chunk results are folded into the caller's initial value in chunk order.
//
// The grouping of reduce operations is therefore different from the
// sequential left fold. For associative, commutative operations the result
// is identical; for floating-point addition and similar almost-associative
// operations the result may differ in low bits, and may differ between
// runs with different thread counts.

// Reduce folds the elements of s into v with op. op must be associative
// and commutative up to the accuracy the caller requires.
func Reduce[T any](s []T, v T, op func(T, T) T) T {
	return TransformReduce(s, v, op, identity[T])
}

// Sum returns the sum of the elements of s, starting from the zero value.
func Sum[T parseq.Addable](s []T) T {
	var v T
	return Reduce(s, v, func(x, y T) T { return x + y })
}

// TransformReduce folds transform(s[i]) for every element of s into v with
// reduce. reduce must be associative and commutative up to the accuracy
// the caller requires; transform is invoked exactly once per element.
func TransformReduce[T, U any](s []T, v U, reduce func(U, U) U, transform func(T) U) U {
	count := len(s)
	chunks := internal.WorkChunksHalf(count)
	if chunks <= 1 {
		return sequential.TransformReduce(s, v, reduce, transform)
	}
	op := &transformReduceOp[T, U]{
		p:         newPartition(count, chunks),
		s:         s,
		reduce:    reduce,
		transform: transform,
		slots:     make([]U, chunks),
	}
	internal.Apply(chunks, op.run)
	for i := range op.slots {
		v = reduce(v, op.slots[i])
	}
	return v
}

type transformReduceOp[T, U any] struct {
	p         partition
	s         []T
	reduce    func(U, U) U
	transform func(T) U
	slots     []U
}

func (op *transformReduceOp[T, U]) run(chunk int) {
	low, high := op.p.at(chunk)
	// Every chunk holds at least two elements.
	acc := op.reduce(op.transform(op.s[low]), op.transform(op.s[low+1]))
	for i := low + 2; i < high; i++ {
		acc = op.reduce(acc, op.transform(op.s[i]))
	}
	op.slots[chunk] = acc
}

// TransformReduce2 folds transform(a[i], b[i]) for every index of a into v
// with reduce. It panics if b is shorter than a.
func TransformReduce2[T1, T2, U any](a []T1, b []T2, v U, reduce func(U, U) U, transform func(T1, T2) U) U {
	if len(b) < len(a) {
		panic("parallel: reduce inputs of mismatched length")
	}
	count := len(a)
	chunks := internal.WorkChunksHalf(count)
	if chunks <= 1 {
		return sequential.TransformReduce2(a, b, v, reduce, transform)
	}
	op := &transformReduce2Op[T1, T2, U]{
		p:         newPartition(count, chunks),
		a:         a,
		b:         b,
		reduce:    reduce,
		transform: transform,
		slots:     make([]U, chunks),
	}
	internal.Apply(chunks, op.run)
	for i := range op.slots {
		v = reduce(v, op.slots[i])
	}
	return v
}

type transformReduce2Op[T1, T2, U any] struct {
	p         partition
	a         []T1
	b         []T2
	reduce    func(U, U) U
	transform func(T1, T2) U
	slots     []U
}

func (op *transformReduce2Op[T1, T2, U]) run(chunk int) {
	low, high := op.p.at(chunk)
	acc := op.reduce(op.transform(op.a[low], op.b[low]), op.transform(op.a[low+1], op.b[low+1]))
	for i := low + 2; i < high; i++ {
		acc = op.reduce(acc, op.transform(op.a[i], op.b[i]))
	}
	op.slots[chunk] = acc
}

// Dot returns the inner product of a and b, starting from the zero value.
// It panics if b is shorter than a.
func Dot[T parseq.Numeric](a, b []T) T {
	var v T
	return TransformReduce2(a, b, v,
		func(x, y T) T { return x + y },
		func(x, y T) T { return x * y })
}

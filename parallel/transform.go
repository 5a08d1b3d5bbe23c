package parallel

import (
	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/sequential"
)

// Transform stores op(s[i]) into dst[i] for every index of s. The
// destination is partitioned congruently with the source, so chunks write
// disjoint ranges. It panics if dst is shorter than s. dst may be s itself;
// any other overlap between dst and s is the caller's responsibility.
func Transform[T, U any](dst []U, s []T, op func(T) U) {
	if len(dst) < len(s) {
		panic("parallel: transform destination shorter than source")
	}
	count := len(s)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		sequential.Transform(dst, s, op)
		return
	}
	t := &transformOp[T, U]{p: newPartition(count, chunks), dst: dst, s: s, op: op}
	internal.Apply(chunks, t.run)
}

type transformOp[T, U any] struct {
	p   partition
	dst []U
	s   []T
	op  func(T) U
}

func (t *transformOp[T, U]) run(chunk int) {
	low, high := t.p.at(chunk)
	sequential.Transform(t.dst[low:high], t.s[low:high], t.op)
}

// Transform2 stores op(a[i], b[i]) into dst[i] for every index of a. All
// three slices are partitioned congruently, so chunks write disjoint
// ranges. It panics if b or dst is shorter than a.
func Transform2[T1, T2, U any](dst []U, a []T1, b []T2, op func(T1, T2) U) {
	if len(dst) < len(a) || len(b) < len(a) {
		panic("parallel: transform input or destination shorter than source")
	}
	count := len(a)
	chunks := internal.WorkChunks(count)
	if chunks <= 1 {
		sequential.Transform2(dst, a, b, op)
		return
	}
	t := &transform2Op[T1, T2, U]{p: newPartition(count, chunks), dst: dst, a: a, b: b, op: op}
	internal.Apply(chunks, t.run)
}

type transform2Op[T1, T2, U any] struct {
	p   partition
	dst []U
	a   []T1
	b   []T2
	op  func(T1, T2) U
}

func (t *transform2Op[T1, T2, U]) run(chunk int) {
	low, high := t.p.at(chunk)
	sequential.Transform2(t.dst[low:high], t.a[low:high], t.b[low:high], t.op)
}

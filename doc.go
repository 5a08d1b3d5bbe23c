// Package parseq provides parallel implementations of the standard family of
// sequence algorithms over slices, dispatched over the goroutines of the Go
// runtime. While Go is primarily designed for concurrent programming, it is
// also usable to some extent for parallel programming, and this library
// provides drop-in parallel versions of otherwise sequential algorithms,
// with the goal to improve performance on large inputs.
//
// Every algorithm returns the same result as its sequential reference
// implementation, computed in parallel whenever the input is large enough to
// amortise coordination cost. The only documented exception is reductions
// over non-associative operators such as floating-point addition, whose
// results depend on chunking and may differ from the sequential result in
// low bits.
//
// Parseq provides the following subpackages:
//
// parseq/parallel provides the parallel iteration algorithms: searches,
// counts, quantifier predicates, element-wise transformations, equality and
// order checks, and reductions.
//
// parseq/sequential provides sequential implementations of all algorithms
// from parseq/parallel. They serve as the fallback for small inputs and as
// the reference for testing and debugging.
//
// parseq/sort provides a parallel, unstable sorting algorithm based on
// fork-join quicksort with work stealing.
//
// User-supplied functions are invoked concurrently from multiple goroutines
// and must be safe for that; they must not panic, and they must not mutate
// the input sequence while a call is in flight.
//
// Parseq has been influenced to various extents by ideas from Cilk,
// Threading Building Blocks, and the parallel algorithms of the C++17
// standard library. See http://supertech.csail.mit.edu/papers/steal.pdf for
// some theoretical background.
package parseq

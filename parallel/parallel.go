// Package parallel provides parallel implementations of the standard family
// of sequence algorithms over slices.
//
// Every function computes the same result as its counterpart in the
// sequential package, including tie-breaks of position-returning algorithms,
// with one documented exception: reductions over non-associative operators
// (such as floating-point addition) combine chunk results in an order that
// depends on the chunking, so their results may differ from the sequential
// reference in low bits.
//
// Inputs are divided into contiguous chunks, up to a small multiple of the
// number of available threads, and the chunks are processed on separate
// goroutines. Inputs too small to amortise the coordination cost are handed
// to the sequential reference directly.
//
// User-supplied functions are invoked concurrently and must be safe for
// that. They must not panic, and they must not mutate the input slice while
// a call is in flight. Predicates and comparators must produce consistent
// results for the same arguments throughout a call.
package parallel

// doneCheckStride is the number of elements a chunk processes between
// samples of a short-circuit flag.
const doneCheckStride = 1024

func identity[T any](v T) T { return v }

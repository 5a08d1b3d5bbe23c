// Package sequential provides sequential implementations of the algorithms
// provided by the parallel package. They are the reference semantics for
// those algorithms: the parallel package falls back to them for inputs too
// small to parallelise, runs them on sub-ranges inside its chunked kernels,
// and is tested against them.
//
// It is not recommended to use this package for anything but small inputs,
// testing, and debugging; for large inputs the parallel package is intended
// to be faster.
package sequential

import (
	"cmp"
	"slices"

	"github.com/exascience/parseq"
)

// ForEach invokes f on a pointer to every element of s, in order. f may
// mutate the element through the pointer.
func ForEach[T any](s []T, f func(*T)) {
	for i := range s {
		f(&s[i])
	}
}

// ForEachN invokes f on a pointer to each of the first n elements of s, in
// order. It panics if n is negative or greater than len(s).
func ForEachN[T any](s []T, n int, f func(*T)) {
	if n < 0 || n > len(s) {
		panic("sequential: for-each count out of range")
	}
	ForEach(s[:n], f)
}

// AllOf reports whether pred is true for every element of s. It is true for
// an empty slice.
func AllOf[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// AnyOf reports whether pred is true for at least one element of s. It is
// false for an empty slice.
func AnyOf[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// NoneOf reports whether pred is false for every element of s. It is true
// for an empty slice.
func NoneOf[T any](s []T, pred func(T) bool) bool {
	return !AnyOf(s, pred)
}

// Count returns the number of elements of s equal to v.
func Count[T comparable](s []T, v T) int {
	var n int
	for i := range s {
		if s[i] == v {
			n++
		}
	}
	return n
}

// CountFunc returns the number of elements of s for which pred is true.
func CountFunc[T any](s []T, pred func(T) bool) int {
	var n int
	for _, v := range s {
		if pred(v) {
			n++
		}
	}
	return n
}

// Find returns the index of the first element of s equal to v, or -1 if
// there is no such element.
func Find[T comparable](s []T, v T) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// FindFunc returns the index of the first element of s for which pred is
// true, or -1 if there is no such element.
func FindFunc[T any](s []T, pred func(T) bool) int {
	for i, v := range s {
		if pred(v) {
			return i
		}
	}
	return -1
}

// FindNotFunc returns the index of the first element of s for which pred is
// false, or -1 if there is no such element.
func FindNotFunc[T any](s []T, pred func(T) bool) int {
	for i, v := range s {
		if !pred(v) {
			return i
		}
	}
	return -1
}

// FindFirstOf returns the index of the first element of s that is equal to
// any element of set, or -1 if there is no such element.
func FindFirstOf[T comparable](s, set []T) int {
	return FindFunc(s, func(v T) bool {
		return Find(set, v) >= 0
	})
}

// FindFirstOfFunc returns the index of the first element of s for which eq
// holds with some element of set, or -1 if there is no such element.
func FindFirstOfFunc[T any](s, set []T, eq func(T, T) bool) int {
	return FindFunc(s, func(v T) bool {
		return AnyOf(set, func(w T) bool { return eq(v, w) })
	})
}

// AdjacentFind returns the smallest index i such that s[i] == s[i+1], or -1
// if there is no such pair.
func AdjacentFind[T comparable](s []T) int {
	return AdjacentFindFunc(s, func(a, b T) bool { return a == b })
}

// AdjacentFindFunc returns the smallest index i such that eq(s[i], s[i+1]),
// or -1 if there is no such pair.
func AdjacentFindFunc[T any](s []T, eq func(T, T) bool) int {
	for i := 0; i+1 < len(s); i++ {
		if eq(s[i], s[i+1]) {
			return i
		}
	}
	return -1
}

// Search returns the index of the first occurrence of needle as a
// contiguous subsequence of haystack, or -1 if there is no occurrence. An
// empty needle occurs at index 0.
func Search[T comparable](haystack, needle []T) int {
	return SearchFunc(haystack, needle, func(a, b T) bool { return a == b })
}

// SearchFunc is like Search, with elements compared by eq.
func SearchFunc[T any](haystack, needle []T, eq func(T, T) bool) int {
	if len(needle) == 0 {
		return 0
	}
	for start := 0; start <= len(haystack)-len(needle); start++ {
		if matchesAt(haystack, needle, start, eq) {
			return start
		}
	}
	return -1
}

// SearchN returns the smallest index at which s contains n consecutive
// elements equal to v, or -1 if there is no such run. A run of length zero
// occurs at index 0.
func SearchN[T comparable](s []T, n int, v T) int {
	return SearchNFunc(s, n, v, func(a, b T) bool { return a == b })
}

// SearchNFunc is like SearchN, with elements compared to v by eq.
func SearchNFunc[T any](s []T, n int, v T, eq func(T, T) bool) int {
	if n <= 0 {
		return 0
	}
	for start := 0; start <= len(s)-n; start++ {
		if runAt(s, n, v, start, eq) {
			return start
		}
	}
	return -1
}

// FindEnd returns the index of the last occurrence of needle as a
// contiguous subsequence of haystack, or -1 if there is no occurrence or
// needle is empty.
func FindEnd[T comparable](haystack, needle []T) int {
	return FindEndFunc(haystack, needle, func(a, b T) bool { return a == b })
}

// FindEndFunc is like FindEnd, with elements compared by eq.
func FindEndFunc[T any](haystack, needle []T, eq func(T, T) bool) int {
	if len(needle) == 0 {
		return -1
	}
	for start := len(haystack) - len(needle); start >= 0; start-- {
		if matchesAt(haystack, needle, start, eq) {
			return start
		}
	}
	return -1
}

func matchesAt[T any](haystack, needle []T, start int, eq func(T, T) bool) bool {
	for i := range needle {
		if !eq(haystack[start+i], needle[i]) {
			return false
		}
	}
	return true
}

func runAt[T any](s []T, n int, v T, start int, eq func(T, T) bool) bool {
	for i := 0; i < n; i++ {
		if !eq(s[start+i], v) {
			return false
		}
	}
	return true
}

// IsSorted reports whether s is sorted in non-decreasing order.
func IsSorted[T cmp.Ordered](s []T) bool {
	return IsSortedFunc(s, func(a, b T) bool { return a < b })
}

// IsSortedFunc reports whether s is sorted with respect to the strict weak
// order less.
func IsSortedFunc[T any](s []T, less func(a, b T) bool) bool {
	return IsSortedUntilFunc(s, less) == len(s)
}

// IsSortedUntil returns the length of the longest sorted prefix of s, which
// is len(s) iff s is sorted.
func IsSortedUntil[T cmp.Ordered](s []T) int {
	return IsSortedUntilFunc(s, func(a, b T) bool { return a < b })
}

// IsSortedUntilFunc returns the length of the longest prefix of s that is
// sorted with respect to the strict weak order less.
func IsSortedUntilFunc[T any](s []T, less func(a, b T) bool) int {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return i
		}
	}
	return len(s)
}

// MinElement returns the index of the leftmost smallest element of s, or -1
// if s is empty.
func MinElement[T cmp.Ordered](s []T) int {
	return MinElementFunc(s, func(a, b T) bool { return a < b })
}

// MinElementFunc returns the index of the leftmost smallest element of s
// with respect to less, or -1 if s is empty.
func MinElementFunc[T any](s []T, less func(a, b T) bool) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if less(s[i], s[best]) {
			best = i
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
	if len(s) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if less(s[best], s[i]) {
			best = i
		}
	}
	return best
}

// MinMaxElement returns the indices of the leftmost smallest and the
// rightmost largest element of s, or (-1, -1) if s is empty.
func MinMaxElement[T cmp.Ordered](s []T) (minIndex, maxIndex int) {
	return MinMaxElementFunc(s, func(a, b T) bool { return a < b })
}

// MinMaxElementFunc returns the indices of the leftmost smallest and the
// rightmost largest element of s with respect to less, or (-1, -1) if s is
// empty. Note the asymmetric tie-breaks: the smallest element is the
// leftmost one, the largest the rightmost one.
func MinMaxElementFunc[T any](s []T, less func(a, b T) bool) (minIndex, maxIndex int) {
	if len(s) == 0 {
		return -1, -1
	}
	minIndex, maxIndex = 0, 0
	for i := 1; i < len(s); i++ {
		if less(s[i], s[minIndex]) {
			minIndex = i
		}
		if !less(s[i], s[maxIndex]) {
			maxIndex = i
		}
	}
	return minIndex, maxIndex
}

// Transform stores op(s[i]) into dst[i] for every index of s. It panics if
// dst is shorter than s.
func Transform[T, U any](dst []U, s []T, op func(T) U) {
	for i := range s {
		dst[i] = op(s[i])
	}
}

// Transform2 stores op(a[i], b[i]) into dst[i] for every index of a. It
// panics if b or dst is shorter than a.
func Transform2[T1, T2, U any](dst []U, a []T1, b []T2, op func(T1, T2) U) {
	for i := range a {
		dst[i] = op(a[i], b[i])
	}
}

// Equal reports whether a and b have the same length and equal elements at
// every index.
func Equal[T comparable](a, b []T) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b have the same length and elements for
// which eq holds at every index.
func EqualFunc[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	return MismatchFunc(a, b, eq) == len(a)
}

// Mismatch returns the first index at which a and b differ, comparing up to
// the length of the shorter slice. If one slice is a prefix of the other,
// the result is that shorter length.
func Mismatch[T comparable](a, b []T) int {
	return MismatchFunc(a, b, func(x, y T) bool { return x == y })
}

// MismatchFunc is like Mismatch, with elements compared by eq.
func MismatchFunc[T any](a, b []T, eq func(T, T) bool) int {
	count := min(len(a), len(b))
	for i := 0; i < count; i++ {
		if !eq(a[i], b[i]) {
			return i
		}
	}
	return count
}

// Reduce folds the elements of s into v, applying op left to right.
func Reduce[T any](s []T, v T, op func(T, T) T) T {
	for i := range s {
		v = op(v, s[i])
	}
	return v
}

// Sum returns the sum of the elements of s, left to right, starting from
// the zero value.
func Sum[T parseq.Addable](s []T) T {
	var v T
	return Reduce(s, v, func(x, y T) T { return x + y })
}

// TransformReduce folds transform(s[i]) for every element of s into v,
// applying reduce left to right.
func TransformReduce[T, U any](s []T, v U, reduce func(U, U) U, transform func(T) U) U {
	for i := range s {
		v = reduce(v, transform(s[i]))
	}
	return v
}

// TransformReduce2 folds transform(a[i], b[i]) for every index of a into v,
// applying reduce left to right. It panics if b is shorter than a.
func TransformReduce2[T1, T2, U any](a []T1, b []T2, v U, reduce func(U, U) U, transform func(T1, T2) U) U {
	for i := range a {
		v = reduce(v, transform(a[i], b[i]))
	}
	return v
}

// Dot returns the inner product of a and b, starting from the zero value.
// It panics if b is shorter than a.
func Dot[T parseq.Numeric](a, b []T) T {
	var v T
	return TransformReduce2(a, b, v,
		func(x, y T) T { return x + y },
		func(x, y T) T { return x * y })
}

// Sort sorts s in non-decreasing order. It delegates to the standard
// library.
func Sort[T cmp.Ordered](s []T) {
	slices.Sort(s)
}

// SortFunc sorts s with respect to the strict weak order less. It delegates
// to the standard library and is not stable.
func SortFunc[T any](s []T, less func(a, b T) bool) {
	slices.SortFunc(s, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
}

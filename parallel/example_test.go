package parallel_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/exascience/parseq/parallel"
)

func ExampleCountFunc() {
	primes := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	odd := parallel.CountFunc(primes, func(v int) bool { return v%2 == 1 })
	fmt.Println(odd)
	// Output:
	// 9
}

func ExampleFindFunc() {
	words := []string{"cherry", "apple", "blueberry", "fig", "plum"}
	short := parallel.FindFunc(words, func(w string) bool { return len(w) <= 4 })
	fmt.Println(short, words[short])
	// Output:
	// 3 fig
}

// The Frobenius norm of a matrix is the square root of the sum of squares
// of its entries, a transform-reduce over the raw data.
func ExampleTransformReduce() {
	const rows, cols = 300, 200
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64(i%17) - 8
	}
	m := mat.NewDense(rows, cols, data)

	norm := math.Sqrt(parallel.TransformReduce(data, 0.0,
		func(x, y float64) float64 { return x + y },
		func(x float64) float64 { return x * x }))

	fmt.Println(scalar.EqualWithinAbsOrRel(norm, mat.Norm(m, 2), 1e-10, 1e-12))
	// Output:
	// true
}

// Parallel floating-point sums regroup additions, so they are compared to
// the sequential reference within accumulated rounding, not bitwise.
func TestSumFloat64(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	xs := make([]float64, 1000000)
	for i := range xs {
		xs[i] = r.Float64()*2 - 1
	}
	want := floats.Sum(xs)
	got := parallel.Sum(xs)
	if !scalar.EqualWithinAbsOrRel(got, want, 1e-7, 1e-10) {
		t.Errorf("Sum = %v, sequential reference = %v", got, want)
	}
}

func TestDotFloat64(t *testing.T) {
	r := rand.New(rand.NewSource(14))
	xs := make([]float64, 500000)
	ys := make([]float64, 500000)
	for i := range xs {
		xs[i] = r.Float64()
		ys[i] = r.Float64()*2 - 1
	}
	want := floats.Dot(xs, ys)
	got := parallel.Dot(xs, ys)
	if !scalar.EqualWithinAbsOrRel(got, want, 1e-7, 1e-10) {
		t.Errorf("Dot = %v, sequential reference = %v", got, want)
	}
}

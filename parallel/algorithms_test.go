package parallel_test

import (
	"bytes"
	"math/rand"
	"reflect"
	"testing"

	"github.com/exascience/parseq/internal"
	"github.com/exascience/parseq/parallel"
	"github.com/exascience/parseq/sequential"
)

// Sizes exercising the sequential fallback (0, 1), tiny parallel inputs,
// inputs not divisible by the chunk count, and one chunk per element.
func testSizes() []int {
	return []int{0, 1, 2, 3, 4, 7, 17, 100, 1000, 65536,
		internal.MaxHwThreads() * 8}
}

func makeRandomSlice(r *rand.Rand, size, limit int) []int {
	result := make([]int, size)
	for i := range result {
		result[i] = r.Intn(limit)
	}
	return result
}

func TestForEach(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, size := range testSizes() {
		org := makeRandomSlice(r, size, 1000)
		s1 := make([]int, size)
		s2 := make([]int, size)
		copy(s1, org)
		copy(s2, org)
		parallel.ForEach(s1, func(v *int) { *v = *v*2 + 1 })
		sequential.ForEach(s2, func(v *int) { *v = *v*2 + 1 })
		if !reflect.DeepEqual(s1, s2) {
			t.Errorf("size %v: parallel and sequential for-each disagree", size)
		}
		copy(s1, org)
		parallel.ForEach(s1, func(*int) {})
		if !reflect.DeepEqual(s1, org) {
			t.Errorf("size %v: for-each with identity mutated the slice", size)
		}
	}
}

func TestForEachN(t *testing.T) {
	s := make([]int, 100000)
	parallel.ForEachN(s, 70000, func(v *int) { *v = 1 })
	if got := parallel.Count(s, 1); got != 70000 {
		t.Errorf("for-each-n touched %v elements, want 70000", got)
	}
}

func TestQuantifiers(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	even := func(v int) bool { return v%2 == 0 }
	for _, size := range testSizes() {
		inputs := [][]int{
			makeRandomSlice(r, size, 2),
			makeRandomSlice(r, size, 1), // all zero: uniformly even
		}
		for _, s := range inputs {
			if got, want := parallel.AllOf(s, even), sequential.AllOf(s, even); got != want {
				t.Errorf("size %v: AllOf = %v, want %v", size, got, want)
			}
			if got, want := parallel.AnyOf(s, even), sequential.AnyOf(s, even); got != want {
				t.Errorf("size %v: AnyOf = %v, want %v", size, got, want)
			}
			if got, want := parallel.NoneOf(s, even), sequential.NoneOf(s, even); got != want {
				t.Errorf("size %v: NoneOf = %v, want %v", size, got, want)
			}
			if parallel.AnyOf(s, even) == parallel.NoneOf(s, even) {
				t.Errorf("size %v: AnyOf == NoneOf", size)
			}
			odd := func(v int) bool { return !even(v) }
			if parallel.AllOf(s, even) != parallel.NoneOf(s, odd) {
				t.Errorf("size %v: AllOf(even) != NoneOf(odd)", size)
			}
		}
	}
}

func TestAllOfDeepFailure(t *testing.T) {
	s := make([]int, 1000000)
	for i := range s {
		s[i] = 1
	}
	s[900000] = 0
	one := func(v int) bool { return v == 1 }
	if parallel.AllOf(s, one) {
		t.Error("AllOf missed the failing element")
	}
	s[900000] = 1
	if !parallel.AllOf(s, one) {
		t.Error("AllOf = false on an all-ones input")
	}
}

func TestCount(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, size := range testSizes() {
		s := makeRandomSlice(r, size, 10)
		if got, want := parallel.Count(s, 7), sequential.Count(s, 7); got != want {
			t.Errorf("size %v: Count = %v, want %v", size, got, want)
		}
		notSeven := func(v int) bool { return v != 7 }
		if parallel.Count(s, 7) != len(s)-parallel.CountFunc(s, notSeven) {
			t.Errorf("size %v: Count and complementary CountFunc disagree", size)
		}
	}
}

func TestFind(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, size := range testSizes() {
		s := makeRandomSlice(r, size, 50)
		for _, v := range []int{0, 25, 49, 50} { // 50 never occurs
			got, want := parallel.Find(s, v), sequential.Find(s, v)
			if got != want {
				t.Errorf("size %v: Find(%v) = %v, want %v", size, v, got, want)
			}
			if got >= 0 && s[got] != v {
				t.Errorf("size %v: Find(%v) returned index of %v", size, v, s[got])
			}
		}
		pred := func(v int) bool { return v >= 45 }
		if got, want := parallel.FindFunc(s, pred), sequential.FindFunc(s, pred); got != want {
			t.Errorf("size %v: FindFunc = %v, want %v", size, got, want)
		}
		if got, want := parallel.FindNotFunc(s, pred), sequential.FindNotFunc(s, pred); got != want {
			t.Errorf("size %v: FindNotFunc = %v, want %v", size, got, want)
		}
		set := []int{48, 49}
		if got, want := parallel.FindFirstOf(s, set), sequential.FindFirstOf(s, set); got != want {
			t.Errorf("size %v: FindFirstOf = %v, want %v", size, got, want)
		}
	}
}

func TestFindDeepTarget(t *testing.T) {
	s := make([]int, 1000000)
	s[500000] = 42
	if got := parallel.Find(s, 42); got != 500000 {
		t.Errorf("Find = %v, want 500000", got)
	}
	if got := parallel.Find(s, 43); got != -1 {
		t.Errorf("Find of an absent value = %v, want -1", got)
	}
}

func TestFindEarliestOfMany(t *testing.T) {
	// Every chunk contains matches; only the overall earliest may win.
	s := make([]int, 1000000)
	for i := 3; i < len(s); i += 10 {
		s[i] = 1
	}
	if got := parallel.Find(s, 1); got != 3 {
		t.Errorf("Find = %v, want 3", got)
	}
}

func TestAdjacentFind(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, size := range testSizes() {
		s := makeRandomSlice(r, size, 20)
		if got, want := parallel.AdjacentFind(s), sequential.AdjacentFind(s); got != want {
			t.Errorf("size %v: AdjacentFind = %v, want %v", size, got, want)
		}
		increasing := func(a, b int) bool { return a < b }
		got := parallel.AdjacentFindFunc(s, increasing)
		want := sequential.AdjacentFindFunc(s, increasing)
		if got != want {
			t.Errorf("size %v: AdjacentFindFunc = %v, want %v", size, got, want)
		}
	}
	// A pair straddling a chunk boundary must still be found.
	s := make([]int, internal.MaxHwThreads()*8*4)
	for i := range s {
		s[i] = i
	}
	s[len(s)/2] = s[len(s)/2-1]
	if got := parallel.AdjacentFind(s); got != len(s)/2-1 {
		t.Errorf("AdjacentFind across a chunk boundary = %v, want %v", got, len(s)/2-1)
	}
}

func TestSearch(t *testing.T) {
	haystack := bytes.Repeat([]byte("abcabcabd"), 10000)
	needle := []byte("abcabd")
	got := parallel.Search(haystack, needle)
	want := sequential.Search(haystack, needle)
	if got != want || got != 3 {
		t.Errorf("Search = %v, want %v (sequential %v)", got, 3, want)
	}

	if got := parallel.Search(haystack, []byte{}); got != 0 {
		t.Errorf("Search with empty needle = %v, want 0", got)
	}
	if got := parallel.Search([]byte{}, needle); got != -1 {
		t.Errorf("Search in empty haystack = %v, want -1", got)
	}
	if got := parallel.Search(needle, haystack); got != -1 {
		t.Errorf("Search with needle longer than haystack = %v, want -1", got)
	}
	if got := parallel.Search(needle, needle); got != 0 {
		t.Errorf("Search of a slice in itself = %v, want 0", got)
	}
	if got := parallel.Search(needle, []byte("abcabe")); got != -1 {
		t.Errorf("Search of an equal-length non-match = %v, want -1", got)
	}

	r := rand.New(rand.NewSource(6))
	for _, size := range testSizes() {
		s := makeRandomSlice(r, size, 3)
		sub := []int{1, 2, 0, 1}
		if got, want := parallel.Search(s, sub), sequential.Search(s, sub); got != want {
			t.Errorf("size %v: Search = %v, want %v", size, got, want)
		}
	}
}

func TestSearchN(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, size := range testSizes() {
		s := makeRandomSlice(r, size, 2)
		for _, n := range []int{0, 1, 2, 3, 8} {
			got, want := parallel.SearchN(s, n, 1), sequential.SearchN(s, n, 1)
			if got != want {
				t.Errorf("size %v: SearchN(%v) = %v, want %v", size, n, got, want)
			}
		}
	}
	s := make([]int, 1000000)
	for i := 600000; i < 600032; i++ {
		s[i] = 1
	}
	if got := parallel.SearchN(s, 32, 1); got != 600000 {
		t.Errorf("SearchN = %v, want 600000", got)
	}
}

func TestFindEnd(t *testing.T) {
	haystack := bytes.Repeat([]byte("ab"), 500000)
	if got := parallel.FindEnd(haystack, []byte("ab")); got != 999998 {
		t.Errorf("FindEnd = %v, want 999998", got)
	}
	if got := parallel.FindEnd(haystack, []byte{}); got != -1 {
		t.Errorf("FindEnd with empty needle = %v, want -1", got)
	}

	r := rand.New(rand.NewSource(8))
	for _, size := range testSizes() {
		s := makeRandomSlice(r, size, 3)
		sub := []int{1, 2, 0}
		got, want := parallel.FindEnd(s, sub), sequential.FindEnd(s, sub)
		if got != want {
			t.Errorf("size %v: FindEnd = %v, want %v", size, got, want)
		}
	}
}

func TestIsSorted(t *testing.T) {
	for _, size := range testSizes() {
		s := make([]int, size)
		for i := range s {
			s[i] = i
		}
		if !parallel.IsSorted(s) {
			t.Errorf("size %v: IsSorted = false on a sorted slice", size)
		}
		if got, want := parallel.IsSortedUntil(s), len(s); got != want {
			t.Errorf("size %v: IsSortedUntil = %v, want %v", size, got, want)
		}
		if size < 2 {
			continue
		}
		for _, breakAt := range []int{1, size / 2, size - 1} {
			broken := make([]int, size)
			copy(broken, s)
			broken[breakAt] = -1
			if parallel.IsSorted(broken) {
				t.Errorf("size %v: IsSorted = true with a break at %v", size, breakAt)
			}
			got := parallel.IsSortedUntil(broken)
			want := sequential.IsSortedUntil(broken)
			if got != want || got != breakAt {
				t.Errorf("size %v: IsSortedUntil = %v, want %v", size, got, breakAt)
			}
			if parallel.IsSorted(broken) != (parallel.IsSortedUntil(broken) == len(broken)) {
				t.Errorf("size %v: IsSorted and IsSortedUntil disagree", size)
			}
		}
	}
}

func TestMinMaxElement(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for _, size := range testSizes() {
		s := makeRandomSlice(r, size, 100)
		gotMin := parallel.MinElement(s)
		if want := sequential.MinElement(s); gotMin != want {
			t.Errorf("size %v: MinElement = %v, want %v", size, gotMin, want)
		}
		gotMax := parallel.MaxElement(s)
		if want := sequential.MaxElement(s); gotMax != want {
			t.Errorf("size %v: MaxElement = %v, want %v", size, gotMax, want)
		}
		mmMin, mmMax := parallel.MinMaxElement(s)
		wantMin, wantMax := sequential.MinMaxElement(s)
		if mmMin != wantMin || mmMax != wantMax {
			t.Errorf("size %v: MinMaxElement = (%v, %v), want (%v, %v)",
				size, mmMin, mmMax, wantMin, wantMax)
		}
		for _, v := range s {
			if v < s[mmMin] || v > s[mmMax] {
				t.Fatalf("size %v: element %v outside [%v, %v]", size, v, s[mmMin], s[mmMax])
			}
		}
	}
}

func TestMinMaxElementTies(t *testing.T) {
	// A slice of constants: min must resolve leftmost; MaxElement leftmost,
	// the max of MinMaxElement rightmost.
	s := make([]int, 100000)
	if got := parallel.MinElement(s); got != 0 {
		t.Errorf("MinElement = %v, want 0", got)
	}
	if got := parallel.MaxElement(s); got != 0 {
		t.Errorf("MaxElement = %v, want 0", got)
	}
	mi, ma := parallel.MinMaxElement(s)
	if mi != 0 || ma != len(s)-1 {
		t.Errorf("MinMaxElement = (%v, %v), want (0, %v)", mi, ma, len(s)-1)
	}
}

func TestTransform(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for _, size := range testSizes() {
		s := makeRandomSlice(r, size, 1000)
		d1 := make([]int, size)
		d2 := make([]int, size)
		square := func(v int) int { return v * v }
		parallel.Transform(d1, s, square)
		sequential.Transform(d2, s, square)
		if !reflect.DeepEqual(d1, d2) {
			t.Errorf("size %v: parallel and sequential transform disagree", size)
		}

		b := makeRandomSlice(r, size, 1000)
		e1 := make([]int, size)
		e2 := make([]int, size)
		add := func(x, y int) int { return x + y }
		parallel.Transform2(e1, s, b, add)
		sequential.Transform2(e2, s, b, add)
		if !reflect.DeepEqual(e1, e2) {
			t.Errorf("size %v: parallel and sequential transform2 disagree", size)
		}
	}
}

func TestTransformInPlace(t *testing.T) {
	s := make([]int, 100000)
	for i := range s {
		s[i] = i
	}
	parallel.Transform(s, s, func(v int) int { return -v })
	for i := range s {
		if s[i] != -i {
			t.Fatalf("element %v is %v after in-place transform", i, s[i])
		}
	}
}

func TestEqualMismatch(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, size := range testSizes() {
		a := makeRandomSlice(r, size, 1000)
		b := make([]int, size)
		copy(b, a)
		if !parallel.Equal(a, b) {
			t.Errorf("size %v: Equal = false on identical slices", size)
		}
		if got, want := parallel.Mismatch(a, b), size; got != want {
			t.Errorf("size %v: Mismatch = %v, want %v", size, got, want)
		}
		if size == 0 {
			continue
		}
		for _, diffAt := range []int{0, size / 2, size - 1} {
			copy(b, a)
			b[diffAt] = -1
			if parallel.Equal(a, b) {
				t.Errorf("size %v: Equal = true with difference at %v", size, diffAt)
			}
			got := parallel.Mismatch(a, b)
			if got != diffAt {
				t.Errorf("size %v: Mismatch = %v, want %v", size, got, diffAt)
			}
			if got != sequential.Mismatch(a, b) {
				t.Errorf("size %v: parallel and sequential mismatch disagree", size)
			}
		}
	}
	if parallel.Equal([]int{1, 2}, []int{1, 2, 3}) {
		t.Error("Equal = true for slices of different length")
	}
	if got := parallel.Mismatch([]int{1, 2}, []int{1, 2, 3}); got != 2 {
		t.Errorf("Mismatch of a strict prefix = %v, want 2", got)
	}
}

func TestReduce(t *testing.T) {
	if got := parallel.Reduce([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0,
		func(x, y int) int { return x + y }); got != 55 {
		t.Errorf("Reduce = %v, want 55", got)
	}
	r := rand.New(rand.NewSource(12))
	for _, size := range testSizes() {
		s := makeRandomSlice(r, size, 1000)
		if got, want := parallel.Sum(s), sequential.Sum(s); got != want {
			t.Errorf("size %v: Sum = %v, want %v", size, got, want)
		}
		got := parallel.TransformReduce(s, 17,
			func(x, y int) int { return x + y },
			func(v int) int { return v * v })
		want := sequential.TransformReduce(s, 17,
			func(x, y int) int { return x + y },
			func(v int) int { return v * v })
		if got != want {
			t.Errorf("size %v: TransformReduce = %v, want %v", size, got, want)
		}
		b := makeRandomSlice(r, size, 1000)
		if got, want := parallel.Dot(s, b), sequential.Dot(s, b); got != want {
			t.Errorf("size %v: Dot = %v, want %v", size, got, want)
		}
	}
}

func TestTransformReduceEachElementOnce(t *testing.T) {
	for _, size := range testSizes() {
		s := make([]int, size)
		for i := range s {
			s[i] = 1
		}
		got := parallel.TransformReduce(s, 0,
			func(x, y int) int { return x + y },
			func(v int) int { return v })
		if got != size {
			t.Errorf("size %v: elements contributed %v times", size, got)
		}
	}
}

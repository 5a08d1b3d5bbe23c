package parallel

import "testing"

func TestPartition(t *testing.T) {
	for _, count := range []int{1, 2, 3, 7, 8, 100, 101, 1023, 1 << 20} {
		for _, chunks := range []int{1, 2, 3, 7, 8, 64} {
			if chunks > count {
				continue
			}
			p := newPartition(count, chunks)
			fraction, leftover := count/chunks, count%chunks
			next := 0
			for c := 0; c < chunks; c++ {
				low, high := p.at(c)
				if low != next {
					t.Fatalf("count=%v chunks=%v: chunk %v starts at %v, want %v",
						count, chunks, c, low, next)
				}
				// The leftover larger chunks must be the leftmost ones.
				want := fraction
				if c < leftover {
					want++
				}
				if high-low != want {
					t.Errorf("count=%v chunks=%v: chunk %v has size %v, want %v",
						count, chunks, c, high-low, want)
				}
				next = high
			}
			if next != count {
				t.Errorf("count=%v chunks=%v: chunks end at %v", count, chunks, next)
			}
		}
	}
}

func TestPartitionSingletons(t *testing.T) {
	const count = 37
	p := newPartition(count, count)
	for c := 0; c < count; c++ {
		if low, high := p.at(c); low != c || high != c+1 {
			t.Errorf("chunk %v is [%v, %v), want [%v, %v)", c, low, high, c, c+1)
		}
	}
}

package parallel

import (
	"math"
	"sync"
	"sync/atomic"
)

// Position-returning kernels let every chunk report at most one candidate
// index, and the chunk number decides between candidates: the earliest
// reporting chunk wins for find-like algorithms, the latest for
// find_end-like ones. Using the chunk number rather than the index itself
// as the tiebreak means a reducer never regresses: a candidate from a
// worse chunk can arrive arbitrarily late and must not clobber an earlier
// winner.
//
// Two implementations exist per direction. When both the chunk number and
// the index fit in 32 bits, the pair is packed into a single 64-bit word,
// chunk in the high half, and maintained with a strictly-improving
// compare-and-swap: numeric comparison of the packed word is exactly
// lexicographic comparison of (chunk, index). For wider inputs the chunk
// number is maintained in its own atomic word and the index is published
// under a mutex, guarded by a re-check of the chunk word.

// minIndex selects the candidate of the earliest reporting chunk.
type minIndex interface {
	// report proposes index as the candidate of the given chunk. Each chunk
	// reports at most once.
	report(chunk, index int)
	// stale reports whether an earlier chunk has already reported, in which
	// case the given chunk's work cannot affect the result.
	stale(chunk int) bool
	// get returns the winning index, or miss if no chunk reported. It must
	// only be called after all chunks have completed.
	get(miss int) int
}

// maxIndex selects the candidate of the latest reporting chunk.
type maxIndex interface {
	report(chunk, index int)
	stale(chunk int) bool
	get(miss int) int
}

func newMinIndex(count int) minIndex {
	if fitsPacked(count) {
		m := &minIndexPacked{}
		m.state.Store(math.MaxUint64)
		return m
	}
	m := &minIndexLocked{}
	m.chunk.Store(math.MaxInt64)
	return m
}

func newMaxIndex(count int) maxIndex {
	if fitsPacked(count) {
		return &maxIndexPacked{}
	}
	m := &maxIndexLocked{}
	m.chunk.Store(-1)
	return m
}

func fitsPacked(count int) bool {
	return uint64(count) <= math.MaxUint32
}

type minIndexPacked struct {
	state atomic.Uint64
}

func (m *minIndexPacked) report(chunk, index int) {
	pack := uint64(chunk)<<32 | uint64(index)
	for {
		cur := m.state.Load()
		if pack >= cur {
			return
		}
		if m.state.CompareAndSwap(cur, pack) {
			return
		}
	}
}

func (m *minIndexPacked) stale(chunk int) bool {
	return m.state.Load()>>32 < uint64(chunk)
}

func (m *minIndexPacked) get(miss int) int {
	cur := m.state.Load()
	if cur == math.MaxUint64 {
		return miss
	}
	return int(cur & math.MaxUint32)
}

type maxIndexPacked struct {
	state atomic.Uint64 // zero means no chunk has reported
}

func (m *maxIndexPacked) report(chunk, index int) {
	pack := (uint64(chunk)+1)<<32 | uint64(index)
	for {
		cur := m.state.Load()
		if pack <= cur {
			return
		}
		if m.state.CompareAndSwap(cur, pack) {
			return
		}
	}
}

func (m *maxIndexPacked) stale(chunk int) bool {
	return m.state.Load()>>32 > uint64(chunk)+1
}

func (m *maxIndexPacked) get(miss int) int {
	cur := m.state.Load()
	if cur == 0 {
		return miss
	}
	return int(cur & math.MaxUint32)
}

type minIndexLocked struct {
	chunk atomic.Int64
	mu    sync.Mutex
	index int
}

func (m *minIndexLocked) report(chunk, index int) {
	for {
		cur := m.chunk.Load()
		if int64(chunk) >= cur {
			return
		}
		if m.chunk.CompareAndSwap(cur, int64(chunk)) {
			break
		}
	}
	m.mu.Lock()
	// Publish only while still the best chunk; an earlier chunk may have
	// installed itself between the swap and the lock.
	if m.chunk.Load() == int64(chunk) {
		m.index = index
	}
	m.mu.Unlock()
}

func (m *minIndexLocked) stale(chunk int) bool {
	return m.chunk.Load() < int64(chunk)
}

func (m *minIndexLocked) get(miss int) int {
	if m.chunk.Load() == math.MaxInt64 {
		return miss
	}
	return m.index
}

type maxIndexLocked struct {
	chunk atomic.Int64
	mu    sync.Mutex
	index int
}

func (m *maxIndexLocked) report(chunk, index int) {
	for {
		cur := m.chunk.Load()
		if int64(chunk) <= cur {
			return
		}
		if m.chunk.CompareAndSwap(cur, int64(chunk)) {
			break
		}
	}
	m.mu.Lock()
	if m.chunk.Load() == int64(chunk) {
		m.index = index
	}
	m.mu.Unlock()
}

func (m *maxIndexLocked) stale(chunk int) bool {
	return m.chunk.Load() > int64(chunk)
}

func (m *maxIndexLocked) get(miss int) int {
	if m.chunk.Load() == -1 {
		return miss
	}
	return m.index
}

package internal

import (
	"runtime"
	"sync"
)

var maxHwThreads = sync.OnceValue(func() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
})

// MaxHwThreads returns the number of threads available for parallel work.
// The value is determined once per process and is strictly positive.
func MaxHwThreads() int {
	return maxHwThreads()
}

// Apply invokes fn(i) for every i in [0, n) in parallel and returns only
// when all invocations have terminated. The calling goroutine participates
// in the work.
//
// If one or more invocations panic, the corresponding goroutines recover
// the panics, and Apply eventually panics with the left-most recovered
// panic value.
func Apply(n int, fn func(int)) {
	var recur func(low, high int)
	recur = func(low, high int) {
		if high-low == 1 {
			fn(low)
			return
		}
		mid := low + (high-low)/2
		var p interface{}
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer func() {
				p = WrapPanic(recover())
				wg.Done()
			}()
			recur(mid, high)
		}()
		recur(low, mid)
		wg.Wait()
		if p != nil {
			panic(p)
		}
	}
	if n > 0 {
		recur(0, n)
	}
}

// A Group batches asynchronous invocations and offers a barrier that waits
// for all of them. The zero Group is ready for use. A Group must not be
// reused after Wait has returned.
type Group struct {
	wg   sync.WaitGroup
	once sync.Once
	p    interface{}
}

// Dispatch runs fn asynchronously on its own goroutine and records it with
// the group. If fn panics, the goroutine recovers the panic, and the first
// recovered panic value is re-raised by Wait.
func (g *Group) Dispatch(fn func()) {
	g.wg.Add(1)
	go func() {
		defer func() {
			if p := WrapPanic(recover()); p != nil {
				g.once.Do(func() { g.p = p })
			}
			g.wg.Done()
		}()
		fn()
	}()
}

// Wait blocks until all dispatched invocations have terminated, then
// re-raises the first panic recovered by any of them.
func (g *Group) Wait() {
	g.wg.Wait()
	if g.p != nil {
		panic(g.p)
	}
}

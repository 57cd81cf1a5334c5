// Package multiply provides implementations of exact big-integer multiplication.
// This file contains the shared goroutine budget for parallel sub-products.
package multiply

import (
	"runtime"
	"sync"
)

var (
	mulSemaphore     chan struct{}
	mulSemaphoreOnce sync.Once
)

// getSemaphore returns the semaphore bounding the number of goroutines the
// recursive multipliers may fork. The independent sub-products of a
// recursion step are pure functions of their inputs, so running them
// concurrently never changes results; the semaphore only caps the fan-out.
func getSemaphore() chan struct{} {
	mulSemaphoreOnce.Do(func() {
		n := runtime.GOMAXPROCS(0)
		if n < 1 {
			n = 1
		}
		mulSemaphore = make(chan struct{}, n)
	})
	return mulSemaphore
}

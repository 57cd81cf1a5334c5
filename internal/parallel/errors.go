// Package parallel holds small concurrency helpers shared by the
// multiplication cores.
package parallel

import "sync"

// ErrorCollector keeps the first non-nil error reported by a group of
// goroutines. The Toom-3 core uses one per recursion level when the three
// sub-products of an evaluation round run concurrently: each goroutine
// reports its outcome and the parent inspects Err once the whole round has
// joined.
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records err if it is the first non-nil error seen. Later calls
// are no-ops. Safe for concurrent use.
func (c *ErrorCollector) SetError(err error) {
	if err != nil {
		c.once.Do(func() {
			c.err = err
		})
	}
}

// Err returns the recorded error, or nil. Callers must not invoke it until
// every goroutine that may call SetError has finished.
func (c *ErrorCollector) Err() error {
	return c.err
}

// Reset clears the collector for reuse. Not safe to call while goroutines
// still hold a reference.
func (c *ErrorCollector) Reset() {
	c.once = sync.Once{}
	c.err = nil
}

// Package multiply provides implementations of exact big-integer multiplication.
// This file contains progress reporting types used by the multipliers.
package multiply

// ProgressUpdate is a data transfer object that encapsulates the progress
// state of one multiplication. It is sent over a channel from the multiplier
// to the user interface to provide asynchronous progress updates.
type ProgressUpdate struct {
	// MultiplierIndex is a unique identifier for the multiplier instance,
	// allowing the UI to distinguish between multiple concurrent runs.
	MultiplierIndex int
	// Value represents the normalized progress of the run, from 0.0 to 1.0.
	Value float64
}

// ProgressReporter defines the functional type for a progress reporting
// callback. Core algorithms report through it without being coupled to the
// channel-based communication mechanism of the broader application.
//
// The recursive multipliers report coarse progress only: once after each
// completed sub-product of the top-level recursion step. The sub-products of
// a step are of comparable size, so equal weighting is a fair model.
type ProgressReporter func(progress float64)

// stepReporter returns a reporter suitable for a top-level recursion step
// with the given number of sub-products. Each call advances progress by one
// step; non-top-level recursion passes a nil reporter and reports nothing.
func stepReporter(reporter ProgressReporter, steps int) func() {
	if reporter == nil || steps <= 0 {
		return func() {}
	}
	done := 0
	return func() {
		done++
		reporter(float64(done) / float64(steps))
	}
}

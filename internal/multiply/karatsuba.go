// Package multiply provides implementations of exact big-integer multiplication.
package multiply

import (
	"context"
	"math/big"
	"sync"
)

// recurseFunc is the recursion contract shared by the divide-and-conquer
// steps. Each algorithm step computes its sub-products through a
// recurseFunc, so the same step logic serves both the dedicated algorithms
// (which recurse into themselves until their own base case) and the adaptive
// selector (which re-decides the algorithm at every level).
//
// Implementations must return a freshly allocated product and must not
// retain or mutate the operands.
type recurseFunc func(ctx context.Context, x, y *big.Int, depth int) (*big.Int, error)

// KaratsubaMultiplier implements two-way divide-and-conquer multiplication.
//
// Formula Derivation:
// Splitting both operands under a base b = 10^⌊n/2⌋ gives
//
//	x = x1·b + x0,  y = y1·b + y0
//	x·y = x1·y1·b² + (x1·y0 + x0·y1)·b + x0·y0
//
// The middle term is recovered from a single extra product instead of two:
//
//	x1·y0 + x0·y1 = (x0 + x1)(y0 + y1) − x1·y1 − x0·y0
//
// reducing the four naive sub-products to three. With three sub-products on
// operands of half the digit length, the cost recurrence T(n) = 3·T(n/2)
// solves to O(n^log₂3) ≈ O(n^1.585).
//
// The recursion depth is O(log n), so the call stack needs no explicit
// management even for very large operands.
type KaratsubaMultiplier struct{}

// Name returns the descriptive name of the algorithm.
func (m *KaratsubaMultiplier) Name() string {
	return "Karatsuba (2-way, O(n^1.585))"
}

// MultiplyCore computes x·y using the Karatsuba recursion. Both operands
// must be non-negative; sign handling is the responsibility of the wrapping
// MulCalculator. Operands below the configured base-case digit count are
// multiplied directly.
func (m *KaratsubaMultiplier) MultiplyCore(ctx context.Context, reporter ProgressReporter, x, y *big.Int, opts Options) (*big.Int, error) {
	opts = normalizeOptions(opts)

	var rec recurseFunc
	rec = func(ctx context.Context, x, y *big.Int, depth int) (*big.Int, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if digitLen(x) < opts.KaratsubaBaseDigits || digitLen(y) < opts.KaratsubaBaseDigits {
			return schoolbook(x, y), nil
		}
		var rep ProgressReporter
		if depth == 0 {
			rep = reporter
		}
		return karatsubaStep(ctx, x, y, opts, depth, rec, rep)
	}
	return rec(ctx, x, y, 0)
}

// karatsubaStep performs one two-way split-and-recombine step:
//
//	z0 = x0·y0
//	z2 = x1·y1
//	z1 = (x0+x1)(y0+y1) − z2 − z0
//	result = z2·b² + z1·b + z0
//
// Sub-products are computed through rec. z0 and z2 are independent and run
// on separate goroutines for sufficiently large operands; z1 needs the part
// sums only, so the results remain identical either way.
func karatsubaStep(ctx context.Context, x, y *big.Int, opts Options, depth int, rec recurseFunc, reporter ProgressReporter) (*big.Int, error) {
	advance := stepReporter(reporter, 3)

	n := digitLen(x)
	if d := digitLen(y); d > n {
		n = d
	}
	b := pow10(n / 2)

	x0, x1 := SplitTwo(x, b)
	y0, y1 := SplitTwo(y, b)

	var z0, z2 *big.Int
	var err0, err2 error

	if opts.parallelAllowed(depth, n) {
		select {
		case getSemaphore() <- struct{}{}:
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-getSemaphore() }()
				z2, err2 = rec(ctx, x1, y1, depth+1)
			}()
			z0, err0 = rec(ctx, x0, y0, depth+1)
			wg.Wait()
		default:
			z0, err0 = rec(ctx, x0, y0, depth+1)
			z2, err2 = rec(ctx, x1, y1, depth+1)
		}
	} else {
		z0, err0 = rec(ctx, x0, y0, depth+1)
		z2, err2 = rec(ctx, x1, y1, depth+1)
	}
	if err0 != nil {
		return nil, err0
	}
	if err2 != nil {
		return nil, err2
	}
	advance()
	advance()

	sumX := acquireBigInt().Add(x0, x1)
	sumY := acquireBigInt().Add(y0, y1)
	z1, err := rec(ctx, sumX, sumY, depth+1)
	releaseBigInt(sumX)
	releaseBigInt(sumY)
	if err != nil {
		return nil, err
	}
	z1.Sub(z1, z2)
	z1.Sub(z1, z0)
	advance()

	return Recombine([]*big.Int{z0, z1, z2}, b), nil
}

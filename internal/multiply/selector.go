// Package multiply provides implementations of exact big-integer multiplication.
// This file contains the magnitude-based algorithm selector.
package multiply

import (
	"context"
	"math/big"
)

// algorithmChoice identifies the algorithm the selector dispatches to.
type algorithmChoice int

const (
	chooseSchoolbook algorithmChoice = iota
	chooseKaratsuba
	chooseToom3
)

// selectAlgorithm is the pure dispatch at the heart of the adaptive
// multiplier: given the decimal digit lengths of two non-negative operands,
// it picks the algorithm by magnitude alone. It is stateless and
// deterministic.
//
// If either operand is below the schoolbook cutover, the product is a
// base case regardless of the other operand's size. Direct multiplication
// of a huge by a tiny operand is exact and cheaper than any split, so the
// mixed path terminates here.
func selectAlgorithm(dx, dy int, opts Options) algorithmChoice {
	minDigits, maxDigits := dx, dy
	if minDigits > maxDigits {
		minDigits, maxDigits = maxDigits, minDigits
	}
	switch {
	case minDigits < opts.SchoolbookCutoverDigits:
		return chooseSchoolbook
	case maxDigits < opts.Toom3CutoverDigits:
		return chooseKaratsuba
	default:
		return chooseToom3
	}
}

// AdaptiveMultiplier selects between schoolbook, Karatsuba, and Toom-3 by
// operand magnitude, re-deciding at every recursion level. Sub-products of
// a Karatsuba or Toom-3 step re-enter the selector, so a multiplication may
// descend from Toom-3 through Karatsuba into schoolbook as the operands
// shrink.
type AdaptiveMultiplier struct{}

// Name returns the descriptive name of the algorithm.
func (m *AdaptiveMultiplier) Name() string {
	return "Adaptive (Schoolbook/Karatsuba/Toom-3)"
}

// MultiplyCore computes x·y, dispatching by magnitude at every recursion
// level. Both operands must be non-negative; sign handling is the
// responsibility of the wrapping MulCalculator.
func (m *AdaptiveMultiplier) MultiplyCore(ctx context.Context, reporter ProgressReporter, x, y *big.Int, opts Options) (*big.Int, error) {
	opts = normalizeOptions(opts)

	var rec recurseFunc
	rec = func(ctx context.Context, x, y *big.Int, depth int) (*big.Int, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var rep ProgressReporter
		if depth == 0 {
			rep = reporter
		}
		switch selectAlgorithm(digitLen(x), digitLen(y), opts) {
		case chooseSchoolbook:
			if rep != nil {
				rep(1.0)
			}
			return schoolbook(x, y), nil
		case chooseKaratsuba:
			return karatsubaStep(ctx, x, y, opts, depth, rec, rep)
		default:
			return toom3Step(ctx, x, y, opts, depth, rec, rep)
		}
	}
	return rec(ctx, x, y, 0)
}

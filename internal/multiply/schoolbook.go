// Package multiply provides implementations of exact big-integer multiplication.
// This file contains the schoolbook multiplier, the terminal state of every
// recursion, and the trusted reference product.
package multiply

import (
	"context"
	"math/big"
)

// schoolbook returns the exact product x·y by direct multiplication.
// It is the base case all recursive multipliers terminate in. The direct
// product is delegated to big.Int, whose quadratic multiplication is optimal
// at base-case sizes.
func schoolbook(x, y *big.Int) *big.Int {
	return new(big.Int).Mul(x, y)
}

// Reference returns the exact product x·y computed by the standard library.
// It is the trusted comparator the orchestration layer validates the
// divide-and-conquer algorithms against.
func Reference(x, y *big.Int) *big.Int {
	return new(big.Int).Mul(x, y)
}

// SchoolbookMultiplier exposes direct multiplication as a standalone
// algorithm. It exists so the comparison harness can run the recursion's
// base case as a peer of the recursive algorithms.
type SchoolbookMultiplier struct{}

// Name returns the descriptive name of the algorithm.
func (m *SchoolbookMultiplier) Name() string {
	return "Schoolbook (direct, quadratic)"
}

// MultiplyCore computes x·y directly. Both operands must be non-negative;
// sign handling is the responsibility of the wrapping MulCalculator.
func (m *SchoolbookMultiplier) MultiplyCore(ctx context.Context, reporter ProgressReporter, x, y *big.Int, opts Options) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := schoolbook(x, y)
	if reporter != nil {
		reporter(1.0)
	}
	return res, nil
}

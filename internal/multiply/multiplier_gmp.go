//go:build gmp

// This file provides a GMP-backed multiplier, conditionally compiled with
// the "gmp" build tag. The build tag architecture ensures that:
//   - Projects can build without GMP (the default, using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: Requires MinGW or WSL with libgmp
//
// GMP itself selects schoolbook, Karatsuba, or Toom-Cook internally by
// operand size; registering it alongside the pure-Go algorithms gives the
// comparison harness an independent, assembly-optimized implementation to
// cross-check against.

package multiply

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	RegisterMultiplier("gmp", func() coreMultiplier { return &GMPMultiplier{} })
}

// GMPMultiplier computes products using the GMP library. It requires the
// 'gmp' build tag and the libgmp library installed on the system.
//
// Performance Characteristics:
//   - Excels for very large operands where GMP's assembly-optimized
//     multiplication routines outperform Go's math/big
//   - For small operands, the CGO call overhead may make math/big faster
type GMPMultiplier struct{}

// Name returns the name of the algorithm.
func (m *GMPMultiplier) Name() string {
	return "GMP (libgmp)"
}

// MultiplyCore computes x·y using GMP. Both operands must be non-negative;
// sign handling is the responsibility of the wrapping MulCalculator.
func (m *GMPMultiplier) MultiplyCore(ctx context.Context, reporter ProgressReporter, x, y *big.Int, opts Options) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gx := new(gmp.Int).SetBytes(x.Bytes())
	gy := new(gmp.Int).SetBytes(y.Bytes())
	gz := new(gmp.Int).Mul(gx, gy)

	if reporter != nil {
		reporter(1.0)
	}
	return new(big.Int).SetBytes(gz.Bytes()), nil
}

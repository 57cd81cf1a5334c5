// Package multiply provides implementations of exact big-integer multiplication.
// This file contains the splitter: decomposition of a non-negative integer
// into ordered parts under a decimal base.
package multiply

import "math/big"

var (
	bigTen = big.NewInt(10)
)

// digitLen returns the number of decimal digits of |x|. Zero has one digit.
func digitLen(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(x).Text(10))
}

// pow10 returns 10^m as a fresh big.Int. m must be non-negative.
func pow10(m int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(m)), nil)
}

// SplitTwo decomposes a non-negative integer n under base b into two ordered
// parts (x0, x1) such that n = x0 + x1·b, with x0 in [0, b) and x1 = ⌊n/b⌋
// unbounded above. n = 0 yields (0, 0).
//
// b must be positive; it is chosen by the callers as a power of ten derived
// from the operand's digit length.
func SplitTwo(n, b *big.Int) (x0, x1 *big.Int) {
	x1, x0 = new(big.Int).QuoRem(n, b, new(big.Int))
	return x0, x1
}

// SplitThree decomposes a non-negative integer n under base b into three
// ordered parts (x0, x1, x2) such that n = x0 + x1·b + x2·b², with x0 and x1
// in [0, b) and x2 = ⌊n/b²⌋ unbounded above (no further modulus is applied
// to the top part). n = 0 yields (0, 0, 0).
func SplitThree(n, b *big.Int) (x0, x1, x2 *big.Int) {
	q := new(big.Int)
	q, x0 = q.QuoRem(n, b, new(big.Int))
	x2, x1 = new(big.Int).QuoRem(q, b, new(big.Int))
	return x0, x1, x2
}

// Recombine reconstructs Σ part[i]·b^i using Horner evaluation. It is the
// inverse of the splitters and is shared by the recursion's recombination
// steps, where the parts are product-polynomial coefficients that may be
// negative.
func Recombine(parts []*big.Int, b *big.Int) *big.Int {
	res := new(big.Int)
	for i := len(parts) - 1; i >= 0; i-- {
		res.Mul(res, b)
		res.Add(res, parts[i])
	}
	return res
}

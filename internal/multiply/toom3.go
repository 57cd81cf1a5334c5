// Package multiply provides implementations of exact big-integer multiplication.
package multiply

import (
	"context"
	"math/big"
	"sync"

	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/parallel"
)

// Toom3Multiplier implements three-way divide-and-conquer multiplication
// (Toom-Cook-3).
//
// Formula Derivation:
// Splitting an operand under a base b = 10^⌊n/3⌋ gives the part-polynomial
//
//	P(t) = x2·t² + x1·t + x0,  with x = P(b)
//
// The product x·y is then C(b) where C = P·Q is a degree-4 polynomial with
// five unknown coefficients. C is determined by its values at five points;
// the fixed abscissas {0, 1, −1, 2, ∞} are chosen so that both evaluation
// and interpolation need only additions, doublings, and divisions by 2 and 3
// that are exact by algebraic identity. ∞ is not a real evaluation: it
// denotes the leading coefficient directly and never involves a division.
//
// Each of the five values of C is a single product of the corresponding
// evaluations of P and Q, computed recursively. Five sub-products on
// operands one third the size, against nine for a naive 3×3 split, give the
// cost recurrence T(n) = 5·T(n/3), i.e. O(n^log₃5) ≈ O(n^1.465).
//
// The evaluation at −1 can be negative, so the pointwise products are
// carried out on signed values by factoring the sign out of the recursive
// magnitude multiplication. The interpolated coefficients may likewise be
// negative; recombination of the exact coefficients always yields the true
// non-negative product.
type Toom3Multiplier struct{}

// Name returns the descriptive name of the algorithm.
func (m *Toom3Multiplier) Name() string {
	return "Toom-3 (3-way, O(n^1.465))"
}

// MultiplyCore computes x·y using the Toom-3 recursion. Both operands must
// be non-negative; sign handling is the responsibility of the wrapping
// MulCalculator. Operands below the configured base-case digit count are
// multiplied directly.
func (m *Toom3Multiplier) MultiplyCore(ctx context.Context, reporter ProgressReporter, x, y *big.Int, opts Options) (*big.Int, error) {
	opts = normalizeOptions(opts)

	var rec recurseFunc
	rec = func(ctx context.Context, x, y *big.Int, depth int) (*big.Int, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if digitLen(x) < opts.Toom3BaseDigits || digitLen(y) < opts.Toom3BaseDigits {
			return schoolbook(x, y), nil
		}
		var rep ProgressReporter
		if depth == 0 {
			rep = reporter
		}
		return toom3Step(ctx, x, y, opts, depth, rec, rep)
	}
	return rec(ctx, x, y, 0)
}

// toom3Step performs one three-way split, evaluation, pointwise
// multiplication, interpolation, and recombination step. The five pointwise
// products are mutually independent; for sufficiently large operands they
// run on separate goroutines, bounded by the shared semaphore. Only the
// interpolation depends on all five, so parallel evaluation cannot change
// the result.
func toom3Step(ctx context.Context, x, y *big.Int, opts Options, depth int, rec recurseFunc, reporter ProgressReporter) (*big.Int, error) {
	advance := stepReporter(reporter, 5)

	n := digitLen(x)
	if d := digitLen(y); d > n {
		n = d
	}
	b := pow10(n / 3)

	x0, x1, x2 := SplitThree(x, b)
	y0, y1, y2 := SplitThree(y, b)

	px := evaluatePoints(x0, x1, x2)
	py := evaluatePoints(y0, y1, y2)

	var r [5]*big.Int
	if opts.parallelAllowed(depth, n) {
		var wg sync.WaitGroup
		var ec parallel.ErrorCollector
		for i := range r {
			select {
			case getSemaphore() <- struct{}{}:
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer func() { <-getSemaphore() }()
					prod, err := mulSigned(ctx, px[i], py[i], depth+1, rec)
					if err != nil {
						ec.SetError(err)
						return
					}
					r[i] = prod
				}(i)
			default:
				prod, err := mulSigned(ctx, px[i], py[i], depth+1, rec)
				if err != nil {
					ec.SetError(err)
					continue
				}
				r[i] = prod
			}
		}
		wg.Wait()
		if err := ec.Err(); err != nil {
			return nil, err
		}
		for range r {
			advance()
		}
	} else {
		for i := range r {
			prod, err := mulSigned(ctx, px[i], py[i], depth+1, rec)
			if err != nil {
				return nil, err
			}
			r[i] = prod
			advance()
		}
	}

	c := interpolate(r)
	return Recombine(c[:], b), nil
}

// evaluatePoints evaluates the part-polynomial P(t) = p2·t² + p1·t + p0 at
// the five fixed abscissas and returns [P(0), P(1), P(−1), P(2), P(∞)].
// P(∞) is the leading coefficient p2, handled directly. P(−1) may be
// negative; all other values of a non-negative split are non-negative.
func evaluatePoints(p0, p1, p2 *big.Int) [5]*big.Int {
	at1 := new(big.Int).Add(p0, p1)
	at1.Add(at1, p2)

	atNeg1 := new(big.Int).Sub(p0, p1)
	atNeg1.Add(atNeg1, p2)

	// P(2) = p0 + 2·p1 + 4·p2, built from shifts.
	at2 := new(big.Int).Lsh(p2, 2)
	tmp := acquireBigInt()
	at2.Add(at2, tmp.Lsh(p1, 1))
	at2.Add(at2, p0)
	releaseBigInt(tmp)

	return [5]*big.Int{p0, at1, atNeg1, at2, p2}
}

// mulSigned multiplies two possibly negative evaluation values through rec,
// which operates on magnitudes only. The sign is factored out before the
// recursive call and reapplied to the fresh product.
func mulSigned(ctx context.Context, a, b *big.Int, depth int, rec recurseFunc) (*big.Int, error) {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int), nil
	}
	negative := (a.Sign() < 0) != (b.Sign() < 0)
	aAbs, bAbs := a, b
	if a.Sign() < 0 {
		aAbs = new(big.Int).Abs(a)
	}
	if b.Sign() < 0 {
		bAbs = new(big.Int).Abs(b)
	}
	prod, err := rec(ctx, aAbs, bAbs, depth)
	if err != nil {
		return nil, err
	}
	if negative {
		prod.Neg(prod)
	}
	return prod, nil
}

// interpolate recovers the five coefficients of the degree-4 product
// polynomial from its values r = [C(0), C(1), C(−1), C(2), C(∞)]:
//
//	c0 = C(0)
//	c4 = C(∞)
//	c2 = (C(1) + C(−1))/2 − c0 − c4
//	S  = (C(1) − C(−1))/2          = c1 + c3
//	T  = C(2) − c0 − 4·c2 − 16·c4  = 2·c1 + 8·c3
//	D  = (5·S − T)/3               = c1 − c3
//	c1 = (S + D)/2
//	c3 = (S − D)/2
//
// Every division is exact by algebraic identity of the evaluation points.
// A non-zero remainder cannot arise from any integer part-polynomials; it
// indicates corrupted evaluation arithmetic and triggers a panic rather
// than a silently truncated (and therefore wrong) product.
func interpolate(r [5]*big.Int) [5]*big.Int {
	c0 := new(big.Int).Set(r[0])
	c4 := new(big.Int).Set(r[4])

	c2 := new(big.Int).Add(r[1], r[2])
	exactQuo(c2, 2, "c2 even-part")
	c2.Sub(c2, c0)
	c2.Sub(c2, c4)

	s := new(big.Int).Sub(r[1], r[2])
	exactQuo(s, 2, "odd-part sum")

	t := new(big.Int).Set(r[3])
	t.Sub(t, c0)
	tmp := acquireBigInt()
	t.Sub(t, tmp.Lsh(c2, 2))
	t.Sub(t, tmp.Lsh(c4, 4))
	releaseBigInt(tmp)

	d := new(big.Int).Mul(s, big.NewInt(5))
	d.Sub(d, t)
	exactQuo(d, 3, "odd-part difference")

	c1 := new(big.Int).Add(s, d)
	exactQuo(c1, 2, "c1")
	c3 := new(big.Int).Sub(s, d)
	exactQuo(c3, 2, "c3")

	return [5]*big.Int{c0, c1, c2, c3, c4}
}

// exactQuo divides x by d in place and panics with an InvariantError if the
// division leaves a remainder. Truncating here would corrupt the product,
// so a remainder must fail loudly.
func exactQuo(x *big.Int, d int64, stage string) *big.Int {
	rem := acquireBigInt()
	x.QuoRem(x, big.NewInt(d), rem)
	if rem.Sign() != 0 {
		panic(apperrors.NewInvariantError(
			"toom-3 interpolation: %s division by %d left remainder %s", stage, d, rem.String()))
	}
	releaseBigInt(rem)
	return x
}

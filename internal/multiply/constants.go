// Package multiply provides implementations of exact big-integer multiplication.
package multiply

// ─────────────────────────────────────────────────────────────────────────────
// Algorithm Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants control the base cases and cutover points of the recursive
// multiplication algorithms. They are tunable properties of the implementation,
// not of the algorithms themselves, and can be overridden per call via Options.

const (
	// DefaultKaratsubaBaseDigits is the decimal-digit count below which the
	// Karatsuba recursion falls back to schoolbook multiplication. Operands
	// with fewer digits than this are multiplied directly.
	//
	// A value of 2 reproduces the classic formulation (operands below 10 are
	// a base case). Raising it trades recursion depth for larger leaf
	// multiplications.
	DefaultKaratsubaBaseDigits = 2

	// DefaultToom3BaseDigits is the decimal-digit count below which the
	// Toom-3 recursion falls back to schoolbook multiplication.
	//
	// A value of 4 reproduces the classic formulation (operands below 1000
	// are a base case). The three-way split needs at least three digits to
	// be meaningful; values below 4 are rejected by normalizeOptions.
	DefaultToom3BaseDigits = 4

	// DefaultSchoolbookCutoverDigits is the decimal-digit count below which
	// the adaptive selector multiplies directly instead of recursing.
	//
	// 19 digits fit within two 64-bit words, where big.Int.Mul is a handful
	// of machine multiplications and any splitting overhead is pure loss.
	DefaultSchoolbookCutoverDigits = 19

	// DefaultToom3CutoverDigits is the decimal-digit count above which the
	// adaptive selector prefers Toom-3 over Karatsuba.
	//
	// Toom-3 performs 5 sub-multiplications against Karatsuba's 3, but on
	// operands a third of the size instead of half. The crossover where its
	// lower exponent (log₃5 ≈ 1.465 vs log₂3 ≈ 1.585) pays for the extra
	// evaluation and interpolation work sits around a hundred digits on
	// typical hardware.
	DefaultToom3CutoverDigits = 120

	// DefaultParallelDigitThreshold is the decimal-digit count above which
	// the independent sub-products of a recursion step are evaluated on
	// separate goroutines. Below it, goroutine creation costs more than the
	// parallelism gains.
	DefaultParallelDigitThreshold = 10_000

	// MaxParallelDepth limits how deep in the recursion sub-products may
	// still fork goroutines. Below this depth the fan-out of the recursion
	// already saturates the available cores.
	MaxParallelDepth = 3
)

// ─────────────────────────────────────────────────────────────────────────────
// Progress Reporting Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// ProgressReportThreshold is the minimum progress change (0.0 to 1.0)
	// required before a new progress update is sent, preventing excessive
	// UI updates during fast calculations.
	ProgressReportThreshold = 0.01
)

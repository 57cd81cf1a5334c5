// Package multiply provides implementations of exact big-integer multiplication.
// This file contains configuration options for multiplication runs.
package multiply

// Options configures a multiplication run.
type Options struct {
	// KaratsubaBaseDigits is the decimal-digit count below which the
	// Karatsuba recursion uses schoolbook multiplication.
	// If 0, DefaultKaratsubaBaseDigits is used.
	KaratsubaBaseDigits int
	// Toom3BaseDigits is the decimal-digit count below which the Toom-3
	// recursion uses schoolbook multiplication.
	// If 0, DefaultToom3BaseDigits is used.
	Toom3BaseDigits int
	// SchoolbookCutoverDigits is the decimal-digit count below which the
	// adaptive selector multiplies directly. If 0, the default is used.
	SchoolbookCutoverDigits int
	// Toom3CutoverDigits is the decimal-digit count above which the adaptive
	// selector prefers Toom-3 over Karatsuba. If 0, the default is used.
	Toom3CutoverDigits int
	// ParallelDigitThreshold is the decimal-digit count above which the
	// independent sub-products of a recursion step run on separate
	// goroutines. If 0, the default is used. Set negative to force
	// sequential execution.
	ParallelDigitThreshold int
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values. This ensures consistent threshold handling across all
// multiplier implementations.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.KaratsubaBaseDigits < DefaultKaratsubaBaseDigits {
		normalized.KaratsubaBaseDigits = DefaultKaratsubaBaseDigits
	}
	if normalized.Toom3BaseDigits < DefaultToom3BaseDigits {
		normalized.Toom3BaseDigits = DefaultToom3BaseDigits
	}
	if normalized.SchoolbookCutoverDigits == 0 {
		normalized.SchoolbookCutoverDigits = DefaultSchoolbookCutoverDigits
	}
	if normalized.Toom3CutoverDigits == 0 {
		normalized.Toom3CutoverDigits = DefaultToom3CutoverDigits
	}
	if normalized.ParallelDigitThreshold == 0 {
		normalized.ParallelDigitThreshold = DefaultParallelDigitThreshold
	}
	return normalized
}

// parallelAllowed reports whether a recursion step at the given depth on
// operands of the given digit length may fork its sub-products.
func (o Options) parallelAllowed(depth, digits int) bool {
	return o.ParallelDigitThreshold > 0 &&
		depth < MaxParallelDepth &&
		digits >= o.ParallelDigitThreshold
}

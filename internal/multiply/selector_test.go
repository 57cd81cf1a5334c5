package multiply

import (
	"context"
	"math/rand"
	"testing"
)

func TestSelectAlgorithm(t *testing.T) {
	t.Parallel()

	opts := normalizeOptions(Options{})

	testCases := []struct {
		name   string
		dx, dy int
		want   algorithmChoice
	}{
		{"Both tiny", 5, 5, chooseSchoolbook},
		{"Just below schoolbook cutover", 18, 18, chooseSchoolbook},
		{"At schoolbook cutover", 19, 19, chooseKaratsuba},
		{"Huge times tiny", 100_000, 3, chooseSchoolbook},
		{"Tiny times huge", 3, 100_000, chooseSchoolbook},
		{"Mid-range pair", 50, 80, chooseKaratsuba},
		{"Just below Toom-3 cutover", 119, 119, chooseKaratsuba},
		{"At Toom-3 cutover", 120, 120, chooseToom3},
		{"Large pair", 5000, 6000, chooseToom3},
		{"Large max small min", 30, 5000, chooseKaratsuba},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := selectAlgorithm(tc.dx, tc.dy, opts); got != tc.want {
				t.Errorf("selectAlgorithm(%d, %d) = %d, want %d", tc.dx, tc.dy, got, tc.want)
			}
		})
	}

	t.Run("Symmetric in its arguments", func(t *testing.T) {
		t.Parallel()
		rng := rand.New(rand.NewSource(17))
		for i := 0; i < 100; i++ {
			dx := rng.Intn(1000) + 1
			dy := rng.Intn(1000) + 1
			if selectAlgorithm(dx, dy, opts) != selectAlgorithm(dy, dx, opts) {
				t.Fatalf("selectAlgorithm(%d, %d) differs from swapped arguments", dx, dy)
			}
		}
	})

	t.Run("Custom cutovers", func(t *testing.T) {
		t.Parallel()
		custom := normalizeOptions(Options{SchoolbookCutoverDigits: 5, Toom3CutoverDigits: 10})
		if got := selectAlgorithm(4, 4, custom); got != chooseSchoolbook {
			t.Errorf("below custom cutover = %d, want schoolbook", got)
		}
		if got := selectAlgorithm(7, 7, custom); got != chooseKaratsuba {
			t.Errorf("between custom cutovers = %d, want Karatsuba", got)
		}
		if got := selectAlgorithm(10, 12, custom); got != chooseToom3 {
			t.Errorf("above custom cutover = %d, want Toom-3", got)
		}
	})
}

func TestAdaptiveMultiplyCore(t *testing.T) {
	t.Parallel()

	core := &AdaptiveMultiplier{}
	noop := func(float64) {}

	t.Run("Matches reference across regimes", func(t *testing.T) {
		t.Parallel()
		rng := rand.New(rand.NewSource(18))
		// Digit counts chosen to land in each selector regime and on the
		// cutover boundaries.
		for _, digits := range []int{1, 18, 19, 60, 119, 120, 121, 300} {
			x := randomOperand(t, rng, digits)
			y := randomOperand(t, rng, digits)
			got, err := core.MultiplyCore(context.Background(), noop, x, y, Options{})
			if err != nil {
				t.Fatalf("MultiplyCore(%d digits): %v", digits, err)
			}
			if want := Reference(x, y); got.Cmp(want) != 0 {
				t.Errorf("product of %d-digit operands mismatches reference", digits)
			}
		}
	})

	t.Run("Mixed magnitudes terminate at schoolbook", func(t *testing.T) {
		t.Parallel()
		rng := rand.New(rand.NewSource(19))
		x := randomOperand(t, rng, 2000)
		y := randomOperand(t, rng, 2)
		got, err := core.MultiplyCore(context.Background(), noop, x, y, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if want := Reference(x, y); got.Cmp(want) != 0 {
			t.Error("huge times tiny product mismatches reference")
		}
	})

	t.Run("Descends through all three algorithms", func(t *testing.T) {
		t.Parallel()
		rng := rand.New(rand.NewSource(20))
		// Low cutovers force the recursion to pass from Toom-3 through
		// Karatsuba into schoolbook within a single multiplication.
		opts := Options{SchoolbookCutoverDigits: 4, Toom3CutoverDigits: 12}
		x := randomOperand(t, rng, 100)
		y := randomOperand(t, rng, 100)
		got, err := core.MultiplyCore(context.Background(), noop, x, y, opts)
		if err != nil {
			t.Fatal(err)
		}
		if want := Reference(x, y); got.Cmp(want) != 0 {
			t.Error("multi-regime descent mismatches reference")
		}
	})

	t.Run("Final progress reported", func(t *testing.T) {
		t.Parallel()
		var last float64
		reporter := func(fraction float64) { last = fraction }
		rng := rand.New(rand.NewSource(21))
		x := randomOperand(t, rng, 150)
		if _, err := core.MultiplyCore(context.Background(), reporter, x, x, Options{}); err != nil {
			t.Fatal(err)
		}
		if last != 1.0 {
			t.Errorf("final progress = %v, want 1.0", last)
		}
	})
}

package multiply

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

// randomOperand builds a non-negative integer with exactly the given number
// of decimal digits (non-zero leading digit).
func randomOperand(t *testing.T, rng *rand.Rand, digits int) *big.Int {
	t.Helper()
	var sb strings.Builder
	sb.Grow(digits)
	sb.WriteByte(byte('1' + rng.Intn(9)))
	for i := 1; i < digits; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	n, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok {
		t.Fatalf("failed to build %d-digit operand", digits)
	}
	return n
}

// mustBig parses a decimal string or fails the test.
func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("invalid integer literal %q", s)
	}
	return n
}

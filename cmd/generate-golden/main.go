package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"path/filepath"
)

// GoldenData represents a single test case in the golden file
type GoldenData struct {
	X       string `json:"x"`
	Y       string `json:"y"`
	Product string `json:"product"`
}

func main() {
	outputDir := flag.String("out", "internal/multiply/testdata", "Output directory for the golden file")
	seed := flag.Int64("seed", 42, "Seed for the deterministic operand generator")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "multiply_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Generate operand pairs covering the interesting shapes:
	// - Zero and single-digit operands
	// - Boundary sizes around the algorithm cutovers
	// - Strongly asymmetric pairs (huge times tiny)
	// - Random large pairs, including operands with zero middle parts
	rng := rand.New(rand.NewSource(*seed))

	pairs := [][2]string{
		{"0", "0"},
		{"0", "987654321"},
		{"7", "8"},
		{"123", "456"},
		{"999999999", "999999999"},
		{"12345678901234567890", "98765432109876543210"},
		{randomDigits(rng, 25), randomDigits(rng, 25)},
		{randomDigits(rng, 40), randomDigits(rng, 40)},
		{randomDigits(rng, 60), randomDigits(rng, 60)},
		{randomDigits(rng, 97), randomDigits(rng, 97)},
		{randomDigits(rng, 150), randomDigits(rng, 150)},
		{randomDigits(rng, 300), "3"},
		{zeroMiddle(rng, 90), randomDigits(rng, 90)},
	}

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, p := range pairs {
		x, _ := new(big.Int).SetString(p[0], 10)
		y, _ := new(big.Int).SetString(p[1], 10)
		product := new(big.Int).Mul(x, y)
		data = append(data, GoldenData{
			X:       p[0],
			Y:       p[1],
			Product: product.String(),
		})
		fmt.Printf("Generated %d-digit x %d-digit product\n", len(p[0]), len(p[1]))
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// randomDigits builds a decimal string of exactly n digits with a non-zero
// leading digit.
func randomDigits(rng *rand.Rand, n int) string {
	buf := make([]byte, n)
	buf[0] = byte('1' + rng.Intn(9))
	for i := 1; i < n; i++ {
		buf[i] = byte('0' + rng.Intn(10))
	}
	return string(buf)
}

// zeroMiddle builds an n-digit operand whose middle third is all zeros, which
// exercises the split paths where a limb of the operand vanishes.
func zeroMiddle(rng *rand.Rand, n int) string {
	third := n / 3
	head := randomDigits(rng, n-2*third)
	tail := randomDigits(rng, third)
	mid := make([]byte, third)
	for i := range mid {
		mid[i] = '0'
	}
	return head + string(mid) + tail
}

package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/agbru/mulcalc/internal/config"
	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/multiply"
)

// TestParseOperand tests the ParseOperand function.
func TestParseOperand(t *testing.T) {
	t.Parallel()

	t.Run("Valid operands", func(t *testing.T) {
		t.Parallel()
		testCases := []struct {
			text string
			want string
		}{
			{"0", "0"},
			{"42", "42"},
			{"-42", "-42"},
			{"+7", "7"},
			{"  123456789  ", "123456789"},
			{"9035768214590328757036509673105730225871", "9035768214590328757036509673105730225871"},
		}
		for _, tc := range testCases {
			got, err := ParseOperand("x", tc.text)
			if err != nil {
				t.Errorf("ParseOperand(%q): %v", tc.text, err)
				continue
			}
			if got.String() != tc.want {
				t.Errorf("ParseOperand(%q) = %s, want %s", tc.text, got, tc.want)
			}
		}
	})

	t.Run("Invalid operands", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{"", "   ", "12a34", "0x1F", "1.5", "1e10", "--5"} {
			_, err := ParseOperand("y", text)
			if err == nil {
				t.Errorf("ParseOperand(%q) succeeded, want error", text)
				continue
			}
			var validationErr apperrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("ParseOperand(%q) error is %T, want ValidationError", text, err)
			}
		}
	})

	t.Run("Field name appears in error", func(t *testing.T) {
		t.Parallel()
		_, err := ParseOperand("y", "bogus")
		var validationErr apperrors.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("error is %T, want ValidationError", err)
		}
		if validationErr.Field != "y" {
			t.Errorf("Field = %q, want %q", validationErr.Field, "y")
		}
	})
}

// TestGetMultipliersToRun tests the GetMultipliersToRun function.
func TestGetMultipliersToRun(t *testing.T) {
	t.Parallel()
	factory := multiply.GlobalFactory()

	t.Run("Single algorithm returns one multiplier", func(t *testing.T) {
		t.Parallel()
		cfg := config.AppConfig{Algo: "karatsuba"}
		multipliers := GetMultipliersToRun(cfg, factory)

		if len(multipliers) != 1 {
			t.Fatalf("Expected 1 multiplier, got %d", len(multipliers))
		}
		if multipliers[0].Name() == "" {
			t.Error("Multiplier name should not be empty")
		}
	})

	t.Run("All algorithms returns every registered multiplier", func(t *testing.T) {
		t.Parallel()
		cfg := config.AppConfig{Algo: "all"}
		multipliers := GetMultipliersToRun(cfg, factory)

		if len(multipliers) != len(factory.List()) {
			t.Errorf("Expected %d multipliers for 'all', got %d", len(factory.List()), len(multipliers))
		}
	})

	t.Run("Toom-3 algorithm", func(t *testing.T) {
		t.Parallel()
		cfg := config.AppConfig{Algo: "toom3"}
		multipliers := GetMultipliersToRun(cfg, factory)

		if len(multipliers) != 1 {
			t.Errorf("Expected 1 multiplier, got %d", len(multipliers))
		}
	})

	t.Run("Unknown algorithm returns nil", func(t *testing.T) {
		t.Parallel()
		cfg := config.AppConfig{Algo: "fft"}
		if multipliers := GetMultipliersToRun(cfg, factory); multipliers != nil {
			t.Errorf("Expected nil for unknown algorithm, got %d multipliers", len(multipliers))
		}
	})
}

// TestPrintExecutionConfig tests the PrintExecutionConfig function.
func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := config.AppConfig{
		Timeout:           time.Minute,
		SchoolbookCutover: 19,
		Toom3Cutover:      120,
		ParallelThreshold: 10000,
	}

	PrintExecutionConfig(cfg, 40, 40, &buf)

	output := buf.String()
	if output == "" {
		t.Error("PrintExecutionConfig should produce output")
	}
	if len(output) < 50 {
		t.Errorf("PrintExecutionConfig output seems too short: %s", output)
	}
	if !bytes.Contains(buf.Bytes(), []byte("40-digit")) {
		t.Errorf("output does not mention the operand sizes: %s", output)
	}
}

// TestPrintExecutionMode tests the PrintExecutionMode function.
func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()
	factory := multiply.GlobalFactory()

	t.Run("Single multiplier mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		multipliers := []multiply.Multiplier{factory.MustGet("karatsuba")}

		PrintExecutionMode(multipliers, &buf)

		output := buf.String()
		if output == "" {
			t.Error("PrintExecutionMode should produce output")
		}
	})

	t.Run("Comparison mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cfg := config.AppConfig{Algo: "all"}
		multipliers := GetMultipliersToRun(cfg, factory)

		PrintExecutionMode(multipliers, &buf)

		if !bytes.Contains(buf.Bytes(), []byte("comparison")) {
			t.Errorf("comparison mode not announced: %s", buf.String())
		}
	})
}

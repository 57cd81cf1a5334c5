package cli

import (
	"fmt"
	"io"
	"math/big"
	"runtime"
	"strings"

	"github.com/agbru/mulcalc/internal/config"
	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/multiply"
)

// ParseOperand converts the decimal text of an operand into a big integer.
// An optional leading '+' or '-' sign is accepted; the remainder must be
// decimal digits. Invalid text is rejected here, before any multiplication
// runs.
//
// Parameters:
//   - field: The name of the operand ("x" or "y"), used in error messages.
//   - text: The operand text to parse.
//
// Returns:
//   - *big.Int: The parsed operand.
//   - error: A ValidationError if the text is not a valid integer.
func ParseOperand(field, text string) (*big.Int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.NewValidationError(field, "operand must not be empty", text)
	}
	value, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, apperrors.NewValidationError(field, "operand is not a valid decimal integer", text)
	}
	return value, nil
}

// GetMultipliersToRun determines which multipliers should be executed based on
// the configuration. Returns multipliers in alphabetically sorted order for
// consistent, reproducible behavior.
//
// Parameters:
//   - cfg: The application configuration containing the algorithm selection.
//   - factory: The multiplier factory to retrieve implementations from.
//
// Returns:
//   - []multiply.Multiplier: A slice of multipliers to execute.
func GetMultipliersToRun(cfg config.AppConfig, factory multiply.MultiplierFactory) []multiply.Multiplier {
	if cfg.Algo == "all" {
		keys := factory.List() // List() returns sorted keys
		multipliers := make([]multiply.Multiplier, 0, len(keys))
		for _, k := range keys {
			if m, err := factory.Get(k); err == nil {
				multipliers = append(multipliers, m)
			}
		}
		return multipliers
	}
	if m, err := factory.Get(cfg.Algo); err == nil {
		return []multiply.Multiplier{m}
	}
	return nil
}

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the operand sizes, timeout, environment details, and algorithm
// thresholds.
//
// Parameters:
//   - cfg: The application configuration.
//   - digitsX: The digit count of the first operand.
//   - digitsY: The digit count of the second operand.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, digitsX, digitsY int, out io.Writer) {
	writeOut(out, "--- Execution Configuration ---\n")
	writeOut(out, "Multiplying %s%d-digit%s by %s%d-digit%s operands with a timeout of %s%s%s.\n",
		ColorMagenta(), digitsX, ColorReset(), ColorMagenta(), digitsY, ColorReset(),
		ColorYellow(), cfg.Timeout, ColorReset())
	writeOut(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
	writeOut(out, "Algorithm thresholds: Schoolbook<%s%d%s digits, Toom-3>=%s%d%s digits, Parallelism=%s%d%s digits.\n",
		ColorCyan(), cfg.SchoolbookCutover, ColorReset(),
		ColorCyan(), cfg.Toom3Cutover, ColorReset(),
		ColorCyan(), cfg.ParallelThreshold, ColorReset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs comparison).
//
// Parameters:
//   - multipliers: The slice of multipliers that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(multipliers []multiply.Multiplier, out io.Writer) {
	var modeDesc string
	if len(multipliers) > 1 {
		modeDesc = "Parallel comparison of all algorithms"
	} else {
		modeDesc = fmt.Sprintf("Single multiplication with the %s%s%s algorithm",
			ColorGreen(), multipliers[0].Name(), ColorReset())
	}
	writeOut(out, "Execution mode: %s.\n", modeDesc)
	writeOut(out, "\n--- Starting Execution ---\n")
}

// writeOut writes a formatted string to the output writer.
//
// Parameters:
//   - out: The destination writer.
//   - format: The format string (see fmt.Printf).
//   - a: Arguments for the format string.
func writeOut(out io.Writer, format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}

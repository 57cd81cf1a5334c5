// Package config provides the configuration management for the mulcalc application.
// It defines the data structure for the configuration, handles the parsing of
// command-line arguments, and performs validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/multiply"
)

const (
	// EnvPrefix is the prefix for all environment variables used by mulcalc.
	// Environment variables provide an alternative to CLI flags for configuration,
	// following the 12-Factor App methodology.
	EnvPrefix = "MULCALC_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultX is the default first operand.
	DefaultX = "9035768214590328757036509673105730225871"
	// DefaultY is the default second operand.
	DefaultY = "4871002895716320958203941870398256096314"
	// DefaultTimeout is the default calculation timeout.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultAlgo is the default algorithm selection.
	DefaultAlgo = "all"
	// DefaultMaxDigits caps operand length to keep requests bounded.
	DefaultMaxDigits = 10_000_000
)

// AppConfig aggregates the application's configuration parameters, parsed from
// command-line flags. It encapsulates all settings that control the execution,
// from the operands to multiply, to performance-tuning parameters.
type AppConfig struct {
	// X is the decimal text of the first operand.
	X string
	// Y is the decimal text of the second operand.
	Y string
	// Verbose, if true, instructs the application to display the full product.
	Verbose bool
	// Details, if true, provides a detailed report including performance metrics.
	Details bool
	// Timeout sets the maximum duration for the calculation.
	Timeout time.Duration
	// Algo specifies the algorithm to use ("all", "karatsuba", "toom3", etc.).
	Algo string
	// KaratsubaBase is the digit count below which Karatsuba falls back
	// to the schoolbook product.
	KaratsubaBase int
	// Toom3Base is the digit count below which Toom-3 falls back to the
	// schoolbook product.
	Toom3Base int
	// SchoolbookCutover is the digit count below which the adaptive
	// selector uses the schoolbook product directly.
	SchoolbookCutover int
	// Toom3Cutover is the digit count at which the adaptive selector
	// switches from Karatsuba to Toom-3.
	Toom3Cutover int
	// ParallelThreshold is the digit count at which sub-products are
	// computed in parallel. Zero disables parallel recursion.
	ParallelThreshold int
	// MaxDigits caps the accepted operand length (0 means unlimited).
	MaxDigits int
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool

	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses progress bars, banners, and informational messages.
	Quiet bool
	// HexOutput, if true, displays the product in hexadecimal format.
	HexOutput bool
}

// ToMultiplyOptions converts the application configuration into
// multiply.Options for use by the multipliers.
func (c AppConfig) ToMultiplyOptions() multiply.Options {
	return multiply.Options{
		KaratsubaBaseDigits:     c.KaratsubaBase,
		Toom3BaseDigits:         c.Toom3Base,
		SchoolbookCutoverDigits: c.SchoolbookCutover,
		Toom3CutoverDigits:      c.Toom3Cutover,
		ParallelDigitThreshold:  c.ParallelThreshold,
	}
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges and that the chosen
// algorithm is supported.
//
// Parameters:
//   - availableAlgos: A slice of strings listing the valid algorithm names
//     (e.g., ["karatsuba", "toom3"]).
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.KaratsubaBase < 1 {
		return apperrors.NewConfigError("karatsuba base-case threshold must be at least 1 digit: %d", c.KaratsubaBase)
	}
	if c.Toom3Base < 3 {
		return apperrors.NewConfigError("toom-3 base-case threshold must be at least 3 digits: %d", c.Toom3Base)
	}
	if c.SchoolbookCutover < 1 {
		return apperrors.NewConfigError("schoolbook cutover must be at least 1 digit: %d", c.SchoolbookCutover)
	}
	if c.Toom3Cutover < c.SchoolbookCutover {
		return apperrors.NewConfigError("toom-3 cutover (%d) cannot be below the schoolbook cutover (%d)", c.Toom3Cutover, c.SchoolbookCutover)
	}
	if c.ParallelThreshold < 0 {
		return apperrors.NewConfigError("parallelism threshold cannot be negative: %d", c.ParallelThreshold)
	}
	if c.MaxDigits < 0 {
		return apperrors.NewConfigError("max digits cannot be negative: %d", c.MaxDigits)
	}
	isAlgoAvailable := false
	for _, a := range availableAlgos {
		if a == c.Algo {
			isAlgoAvailable = true
			break
		}
	}
	if c.Algo != "all" && !isAlgoAvailable {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values, and
// handles the parsing process. After parsing, it performs validation on the
// resulting configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//   - availableAlgos: A slice of valid algorithm names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Algorithm to use: 'all' (default) or one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.StringVar(&config.X, "x", DefaultX, "First operand, as decimal text (optional leading sign).")
	fs.StringVar(&config.Y, "y", DefaultY, "Second operand, as decimal text (optional leading sign).")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full value of the product (can be very long).")
	fs.BoolVar(&config.Details, "d", false, "Display performance details and result metadata.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the calculation.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.IntVar(&config.KaratsubaBase, "karatsuba-base", multiply.DefaultKaratsubaBaseDigits, "Digit count below which Karatsuba uses the schoolbook product.")
	fs.IntVar(&config.Toom3Base, "toom3-base", multiply.DefaultToom3BaseDigits, "Digit count below which Toom-3 uses the schoolbook product.")
	fs.IntVar(&config.SchoolbookCutover, "schoolbook-cutover", multiply.DefaultSchoolbookCutoverDigits, "Digit count below which the adaptive selector uses the schoolbook product.")
	fs.IntVar(&config.Toom3Cutover, "toom3-cutover", multiply.DefaultToom3CutoverDigits, "Digit count at which the adaptive selector switches to Toom-3.")
	fs.IntVar(&config.ParallelThreshold, "parallel-threshold", multiply.DefaultParallelDigitThreshold, "Digit count above which sub-products run in parallel (0 to disable).")
	fs.IntVar(&config.MaxDigits, "max-digits", DefaultMaxDigits, "Maximum accepted operand length in digits (0 for unlimited).")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")

	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.HexOutput, "hex", false, "Display product in hexadecimal format.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}

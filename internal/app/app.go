package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/agbru/mulcalc/internal/cli"
	"github.com/agbru/mulcalc/internal/config"
	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/multiply"
	"github.com/agbru/mulcalc/internal/orchestration"
	"github.com/agbru/mulcalc/internal/server"
	"github.com/agbru/mulcalc/internal/ui"
)

// Application represents the mulcalc application instance.
// It encapsulates the configuration and provides methods to run
// the application in various modes (CLI, server).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Factory provides access to the multiplier implementations.
	// Uses the interface type for better testability and dependency injection.
	Factory multiply.MultiplierFactory
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	factory := multiply.GlobalFactory()
	availableAlgos := factory.List()

	// args[0] is program name, args[1:] are the actual arguments
	programName := "mulcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Factory:   factory,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// It dispatches to the appropriate handler (server or CLI).
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	// Server mode
	if a.Config.ServerMode {
		return a.runServer()
	}

	// Standard CLI multiplication mode
	return a.runMultiply(ctx, out)
}

// runServer starts the HTTP server mode.
func (a *Application) runServer() int {
	srv := server.NewServer(a.Factory, a.Config)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runMultiply orchestrates the execution of the CLI multiplication command.
func (a *Application) runMultiply(ctx context.Context, out io.Writer) int {
	// Parse operands before any work starts
	x, err := cli.ParseOperand("x", a.Config.X)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid operand: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	y, err := cli.ParseOperand("y", a.Config.Y)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid operand: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	// Setup lifecycle (timeout + signals)
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	// Get multipliers to run
	multipliersToRun := cli.GetMultipliersToRun(a.Config, a.Factory)

	digitsX := len(new(big.Int).Abs(x).Text(10))
	digitsY := len(new(big.Int).Abs(y).Text(10))

	// Skip verbose output in quiet mode
	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, digitsX, digitsY, out)
		cli.PrintExecutionMode(multipliersToRun, out)
	}

	// In quiet mode, use a discard writer for progress display
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
	}

	// Execute multiplications
	results := orchestration.ExecuteMultiplications(ctx, multipliersToRun, x, y, a.Config, progressOut)

	// Handle JSON output
	if a.Config.JSONOutput {
		return printJSONResults(results, out)
	}

	// Build output config for the CLI options
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		HexOutput:  a.Config.HexOutput,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Details:    a.Config.Details,
	}

	return a.analyzeResultsWithOutput(results, multiply.Reference(x, y), digitsX, digitsY, outputCfg, out)
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.MultiplicationResult, reference *big.Int, digitsX, digitsY int, outputCfg cli.OutputConfig, out io.Writer) int {
	bestResult := findBestResult(results)

	// Handle quiet mode for single result
	if outputCfg.Quiet && bestResult != nil {
		cli.DisplayQuietResult(out, bestResult.Result, outputCfg.HexOutput)

		// Save to file if requested
		if err := a.saveResultIfNeeded(bestResult, digitsX, digitsY, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}

		return apperrors.ExitSuccess
	}

	// Use standard analysis for non-quiet mode
	exitCode := orchestration.AnalyzeComparisonResults(results, reference, a.Config, out)

	// Handle file output and hex display for non-quiet mode
	if bestResult != nil && exitCode == apperrors.ExitSuccess {
		// Display hex format if requested
		a.displayHexIfNeeded(bestResult, outputCfg, out)

		// Save to file if requested
		if err := a.saveResultIfNeeded(bestResult, digitsX, digitsY, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if outputCfg.OutputFile != "" {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				cli.ColorGreen(), cli.ColorCyan(), outputCfg.OutputFile, cli.ColorReset())
		}
	}

	return exitCode
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

func findBestResult(results []orchestration.MultiplicationResult) *orchestration.MultiplicationResult {
	var bestResult *orchestration.MultiplicationResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func (a *Application) saveResultIfNeeded(res *orchestration.MultiplicationResult, digitsX, digitsY int, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(res.Result, digitsX, digitsY, res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving result: %v\n", err)
		return err
	}
	return nil
}

func (a *Application) displayHexIfNeeded(res *orchestration.MultiplicationResult, cfg cli.OutputConfig, out io.Writer) {
	if !cfg.HexOutput {
		return
	}
	fmt.Fprintf(out, "\n%s--- Hexadecimal Format ---%s\n", cli.ColorBold(), cli.ColorReset())
	hexStr := res.Result.Text(16)
	if len(hexStr) > 100 && !a.Config.Verbose {
		fmt.Fprintf(out, "x * y [hex] = %s0x%s...%s%s\n",
			cli.ColorGreen(), hexStr[:40], hexStr[len(hexStr)-40:], cli.ColorReset())
	} else {
		fmt.Fprintf(out, "x * y [hex] = %s0x%s%s\n",
			cli.ColorGreen(), hexStr, cli.ColorReset())
	}
}

// jsonResult represents a single multiplication result in JSON format.
type jsonResult struct {
	Algorithm string `json:"algorithm"`
	Duration  string `json:"duration"`
	Result    string `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
}

// printJSONResults formats the multiplication results as a JSON array and writes
// them to the output. This is useful for programmatic consumption of the results.
func printJSONResults(results []orchestration.MultiplicationResult, out io.Writer) int {
	output := make([]jsonResult, len(results))
	for i, res := range results {
		jr := jsonResult{
			Algorithm: res.Name,
			Duration:  res.Duration.String(),
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		} else {
			jr.Result = res.Result.String()
		}
		output[i] = jr
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

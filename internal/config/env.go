// Package config provides the configuration management for the mulcalc application.
// This file contains environment variable utilities for configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int, or the default value if not set
// or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as bool, or the default value if not set.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as time.Duration, or the default value if not
// set or invalid. Accepts formats like "5m", "30s", "1h30m".
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables:
//   - MULCALC_X: First operand as decimal text (string)
//   - MULCALC_Y: Second operand as decimal text (string)
//   - MULCALC_ALGO: Algorithm to use (string: schoolbook, karatsuba, toom3, adaptive, all)
//   - MULCALC_PORT: Port for server mode (string)
//   - MULCALC_TIMEOUT: Calculation timeout (duration: "5m", "30s")
//   - MULCALC_KARATSUBA_BASE: Karatsuba base-case threshold in digits (int)
//   - MULCALC_TOOM3_BASE: Toom-3 base-case threshold in digits (int)
//   - MULCALC_SCHOOLBOOK_CUTOVER: Adaptive schoolbook cutover in digits (int)
//   - MULCALC_TOOM3_CUTOVER: Adaptive Toom-3 cutover in digits (int)
//   - MULCALC_PARALLEL_THRESHOLD: Parallelism threshold in digits (int)
//   - MULCALC_MAX_DIGITS: Maximum accepted operand length in digits (int)
//   - MULCALC_SERVER: Enable server mode (bool: true/false, 1/0, yes/no)
//   - MULCALC_JSON: Enable JSON output (bool)
//   - MULCALC_VERBOSE: Enable verbose output (bool)
//   - MULCALC_QUIET: Enable quiet mode (bool)
//   - MULCALC_HEX: Enable hexadecimal output (bool)
//   - MULCALC_NO_COLOR: Disable colored output (bool)
//   - MULCALC_OUTPUT: Output file path (string)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	applyNumericOverrides(config, fs)
	applyDurationOverrides(config, fs)
	applyStringOverrides(config, fs)
	applyBooleanOverrides(config, fs)
}

func applyNumericOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "karatsuba-base") {
		config.KaratsubaBase = getEnvInt("KARATSUBA_BASE", config.KaratsubaBase)
	}
	if !isFlagSet(fs, "toom3-base") {
		config.Toom3Base = getEnvInt("TOOM3_BASE", config.Toom3Base)
	}
	if !isFlagSet(fs, "schoolbook-cutover") {
		config.SchoolbookCutover = getEnvInt("SCHOOLBOOK_CUTOVER", config.SchoolbookCutover)
	}
	if !isFlagSet(fs, "toom3-cutover") {
		config.Toom3Cutover = getEnvInt("TOOM3_CUTOVER", config.Toom3Cutover)
	}
	if !isFlagSet(fs, "parallel-threshold") {
		config.ParallelThreshold = getEnvInt("PARALLEL_THRESHOLD", config.ParallelThreshold)
	}
	if !isFlagSet(fs, "max-digits") {
		config.MaxDigits = getEnvInt("MAX_DIGITS", config.MaxDigits)
	}
}

func applyDurationOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
}

func applyStringOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "x") {
		config.X = getEnvString("X", config.X)
	}
	if !isFlagSet(fs, "y") {
		config.Y = getEnvString("Y", config.Y)
	}
	if !isFlagSet(fs, "algo") {
		config.Algo = getEnvString("ALGO", config.Algo)
	}
	if !isFlagSet(fs, "port") {
		config.Port = getEnvString("PORT", config.Port)
	}
	if !isFlagSet(fs, "output") && !isFlagSet(fs, "o") {
		config.OutputFile = getEnvString("OUTPUT", config.OutputFile)
	}
}

func applyBooleanOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "server") {
		config.ServerMode = getEnvBool("SERVER", config.ServerMode)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "v") {
		config.Verbose = getEnvBool("VERBOSE", config.Verbose)
	}
	if !isFlagSet(fs, "d") && !isFlagSet(fs, "details") {
		config.Details = getEnvBool("DETAILS", config.Details)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "hex") {
		config.HexOutput = getEnvBool("HEX", config.HexOutput)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
}

package cli

import apperrors "github.com/agbru/mulcalc/internal/errors"

var _ apperrors.ColorProvider = CLIColorProvider{}

// CLIColorProvider feeds the active theme's color codes to the errors
// package, so error handlers can colorize status lines without importing
// the cli package's theme machinery directly.
type CLIColorProvider struct{}

// Yellow returns the theme's yellow escape code.
func (c CLIColorProvider) Yellow() string { return ColorYellow() }

// Reset returns the theme's reset escape code.
func (c CLIColorProvider) Reset() string { return ColorReset() }

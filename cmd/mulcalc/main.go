// Command mulcalc multiplies arbitrary-precision integers using divide and
// conquer algorithms (Karatsuba, Toom-3) and compares their results against
// each other for correctness.
package main

import (
	"context"
	"os"

	"github.com/agbru/mulcalc/internal/app"
	apperrors "github.com/agbru/mulcalc/internal/errors"
)

func main() {
	// Handle --version before any configuration parsing
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}

package service

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/agbru/mulcalc/internal/config"
	apperrors "github.com/agbru/mulcalc/internal/errors"
	"github.com/agbru/mulcalc/internal/multiply"
)

var (
	// ErrMaxDigitsExceeded is returned when an operand exceeds the configured
	// maximum digit count.
	ErrMaxDigitsExceeded = errors.New("maximum operand digit count exceeded")
)

// Service defines the interface for multiplication services.
// This abstraction enables dependency injection and easier testing/mocking.
type Service interface {
	// Multiply performs the multiplication for the given algorithm and operands.
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - algoName: The name of the algorithm to use.
	//   - x: The first operand as decimal text.
	//   - y: The second operand as decimal text.
	//
	// Returns:
	//   - *big.Int: The product.
	//   - error: An error if validation or calculation fails.
	Multiply(ctx context.Context, algoName, x, y string) (*big.Int, error)
}

// MultiplierService handles the core logic for multiplying big integers.
// It centralizes validation, algorithm retrieval, and execution options.
// Implements the Service interface.
type MultiplierService struct {
	factory   multiply.MultiplierFactory
	config    config.AppConfig
	maxDigits int
}

// Ensure MultiplierService implements Service interface.
var _ Service = (*MultiplierService)(nil)

// NewMultiplierService creates a new instance of MultiplierService.
//
// Parameters:
//   - factory: The factory to retrieve multipliers from.
//   - cfg: The application configuration.
//   - maxDigits: The maximum allowed operand length in digits (0 for no limit).
func NewMultiplierService(factory multiply.MultiplierFactory, cfg config.AppConfig, maxDigits int) *MultiplierService {
	return &MultiplierService{
		factory:   factory,
		config:    cfg,
		maxDigits: maxDigits,
	}
}

// parseOperand converts operand text into a big integer, rejecting text that
// is not a decimal integer with an optional leading sign.
func parseOperand(field, text string) (*big.Int, error) {
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

// Multiply retrieves the requested multiplier and executes the multiplication
// with the configured options. It also validates both operands.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - algoName: The name of the algorithm to use.
//   - x: The first operand as decimal text.
//   - y: The second operand as decimal text.
//
// Returns:
//   - *big.Int: The product.
//   - error: An error if validation or calculation fails.
func (s *MultiplierService) Multiply(ctx context.Context, algoName, x, y string) (*big.Int, error) {
	// Validation
	opX, err := parseOperand("x", x)
	if err != nil {
		return nil, err
	}
	opY, err := parseOperand("y", y)
	if err != nil {
		return nil, err
	}
	if s.maxDigits > 0 {
		dx := len(strings.TrimPrefix(opX.Text(10), "-"))
		dy := len(strings.TrimPrefix(opY.Text(10), "-"))
		if dx > s.maxDigits || dy > s.maxDigits {
			return nil, ErrMaxDigitsExceeded
		}
	}

	// Retrieve Algorithm
	m, err := s.factory.Get(algoName)
	if err != nil {
		return nil, err
	}

	// Multiply with centralized options
	// Note: We pass nil for progressChan as this is intended for synchronous/service usage
	// where progress updates might not be needed or handled differently.
	return m.Multiply(ctx, nil, 0, opX, opY, s.config.ToMultiplyOptions())
}

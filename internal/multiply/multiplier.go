// Package multiply provides implementations of exact multiplication of
// arbitrary-precision integers. It exposes a `Multiplier` interface that
// abstracts the underlying algorithm, allowing different strategies
// (Schoolbook, Karatsuba, Toom-3, adaptive selection) to be used
// interchangeably. The package integrates scratch-memory pooling, optional
// parallel evaluation of independent sub-products, and progress reporting.
package multiply

import (
	"context"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

var (
	multiplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mulcalc_multiplications_total",
			Help: "The total number of multiplications processed",
		},
		[]string{"algorithm", "status"},
	)
	multiplicationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "mulcalc_multiplication_duration_seconds",
			Help: "The duration of multiplications in seconds",
		},
		[]string{"algorithm"},
	)
)

// Multiplier defines the public interface for an exact big-integer
// multiplier. It is the primary abstraction used by the application's
// orchestration layer to interact with the different algorithms.
type Multiplier interface {
	// Multiply computes the exact product x·y. It is designed for safe
	// concurrent execution and supports cancellation through the provided
	// context. Progress updates are sent asynchronously to progressChan.
	//
	// Operands may be negative: the sign of each operand is factored out,
	// the magnitudes are multiplied by the underlying algorithm, and the
	// combined sign is reapplied to the result. The operands are never
	// mutated.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for sending progress updates (may be nil).
	//   - mulIndex: A unique index for the multiplier instance.
	//   - x, y: The operands.
	//   - opts: Configuration options for the multiplication.
	//
	// Returns:
	//   - *big.Int: The exact product.
	//   - error: An error if one occurred (e.g., context cancellation).
	Multiply(ctx context.Context, progressChan chan<- ProgressUpdate, mulIndex int, x, y *big.Int, opts Options) (*big.Int, error)

	// Name returns the display name of the algorithm (e.g., "Karatsuba").
	Name() string
}

// coreMultiplier defines the internal interface for a pure multiplication
// algorithm. Cores operate on non-negative operands only.
type coreMultiplier interface {
	MultiplyCore(ctx context.Context, reporter ProgressReporter, x, y *big.Int, opts Options) (*big.Int, error)
	Name() string
}

// MulCalculator is an implementation of the Multiplier interface that uses
// the Decorator design pattern. It wraps a coreMultiplier to add
// cross-cutting concerns: sign factoring, the direct fast path for small
// operands, metrics, tracing, and the adaptation of the progress reporting
// mechanism.
type MulCalculator struct {
	core coreMultiplier
}

// NewMultiplier is a factory function that constructs and returns a new
// MulCalculator wrapping the given core algorithm. It panics if the core
// is nil, ensuring system integrity.
func NewMultiplier(core coreMultiplier) Multiplier {
	if core == nil {
		panic("multiply: the `coreMultiplier` implementation cannot be nil")
	}
	return &MulCalculator{core: core}
}

// Name returns the name of the encapsulated coreMultiplier, fulfilling the
// Multiplier interface by delegating the call.
func (c *MulCalculator) Name() string {
	return c.core.Name()
}

// Multiply orchestrates the multiplication process with channel-based
// progress reporting. For flexible observer-based progress reporting, use
// MultiplyWithObservers.
func (c *MulCalculator) Multiply(ctx context.Context, progressChan chan<- ProgressUpdate, mulIndex int, x, y *big.Int, opts Options) (*big.Int, error) {
	subject := NewProgressSubject()
	if progressChan != nil {
		subject.Register(NewChannelObserver(progressChan))
	}
	return c.MultiplyWithObservers(ctx, subject, mulIndex, x, y, opts)
}

// MultiplyWithObservers executes the multiplication with observer-based
// progress reporting. This method allows dynamic registration of multiple
// progress observers, enabling decoupled handling of progress events for
// UI, logging, metrics, etc.
//
// It first factors out the operand signs (the recursive cores operate on
// magnitudes only) and short-circuits operands small enough that direct
// multiplication beats any splitting. For larger operands it adapts the
// subject into a ProgressReporter callback and delegates to the wrapped
// core. Progress is reported as complete upon successful calculation.
func (c *MulCalculator) MultiplyWithObservers(ctx context.Context, subject *ProgressSubject, mulIndex int, x, y *big.Int, opts Options) (result *big.Int, err error) {
	tracer := otel.Tracer("multiply")
	ctx, span := tracer.Start(ctx, "Multiply")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		algoName := c.core.Name()
		multiplicationsTotal.WithLabelValues(algoName, status).Inc()
		multiplicationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Int("xDigits", digitLen(x)).
			Int("yDigits", digitLen(y)).
			Float64("duration", duration).
			Str("status", status).
			Msg("multiplication completed")
	}()

	var reporter ProgressReporter
	if subject != nil {
		reporter = subject.AsProgressReporter(mulIndex)
	} else {
		reporter = func(float64) {} // No-op reporter
	}

	// Factor out the signs; the cores see magnitudes only.
	negative := (x.Sign() < 0) != (y.Sign() < 0)
	xAbs, yAbs := x, y
	if x.Sign() < 0 {
		xAbs = new(big.Int).Abs(x)
	}
	if y.Sign() < 0 {
		yAbs = new(big.Int).Abs(y)
	}

	opts = normalizeOptions(opts)
	if digitLen(xAbs) < opts.SchoolbookCutoverDigits && digitLen(yAbs) < opts.SchoolbookCutoverDigits {
		reporter(1.0)
		result = schoolbook(xAbs, yAbs)
	} else {
		result, err = c.core.MultiplyCore(ctx, reporter, xAbs, yAbs, opts)
		if err == nil && result != nil {
			reporter(1.0)
		}
	}
	if err == nil && negative && result.Sign() != 0 {
		result.Neg(result)
	}
	return result, err
}

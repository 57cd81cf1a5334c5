package multiply

import (
	"context"
	"math/big"
)

// MockMultiplier is a mock implementation of the Multiplier interface.
// It is exported to allow external packages (like the orchestration and
// server tests) to use it without pulling in a mocking framework.
type MockMultiplier struct {
	Result *big.Int
	Err    error
	Fn     func(ctx context.Context, x, y *big.Int) (*big.Int, error)
}

// Name returns the multiplier name.
func (m *MockMultiplier) Name() string {
	return "mock"
}

// Multiply returns the pre-configured Result and Err, or calls Fn if provided.
func (m *MockMultiplier) Multiply(ctx context.Context, progressChan chan<- ProgressUpdate, mulIndex int, x, y *big.Int, opts Options) (*big.Int, error) {
	if m.Fn != nil {
		return m.Fn(ctx, x, y)
	}
	if progressChan != nil {
		progressChan <- ProgressUpdate{MultiplierIndex: mulIndex, Value: 1.0}
	}
	return m.Result, m.Err
}

// TestFactory is a MultiplierFactory implementation designed for testing.
// It allows tests in other packages to create factories with mock
// multipliers.
type TestFactory struct {
	multipliers map[string]Multiplier
}

// NewTestFactory creates a factory pre-populated with the given multipliers.
// This is intended for use in tests where mock multipliers are needed.
func NewTestFactory(multipliers map[string]Multiplier) *TestFactory {
	if multipliers == nil {
		multipliers = make(map[string]Multiplier)
	}
	return &TestFactory{multipliers: multipliers}
}

// Create returns the multiplier by name.
func (f *TestFactory) Create(name string) (Multiplier, error) {
	return f.Get(name)
}

// Get returns the multiplier by name.
func (f *TestFactory) Get(name string) (Multiplier, error) {
	m, ok := f.multipliers[name]
	if !ok {
		return nil, &UnknownMultiplierError{Name: name}
	}
	return m, nil
}

// List returns all registered multiplier names.
func (f *TestFactory) List() []string {
	names := make([]string, 0, len(f.multipliers))
	for name := range f.multipliers {
		names = append(names, name)
	}
	return names
}

// Register is a no-op for TestFactory as multipliers are provided at
// construction.
func (f *TestFactory) Register(name string, creator func() coreMultiplier) error {
	return nil
}

// GetAll returns all multipliers.
func (f *TestFactory) GetAll() map[string]Multiplier {
	result := make(map[string]Multiplier, len(f.multipliers))
	for k, v := range f.multipliers {
		result[k] = v
	}
	return result
}

// UnknownMultiplierError is returned when a multiplier name is not found.
type UnknownMultiplierError struct {
	Name string
}

func (e *UnknownMultiplierError) Error() string {
	return "unknown multiplier: " + e.Name
}

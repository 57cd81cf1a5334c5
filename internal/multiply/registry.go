package multiply

import (
	"fmt"
	"sort"
	"sync"
)

// MultiplierFactory is an interface for creating Multiplier instances.
// It allows for flexible multiplier instantiation and registration,
// enabling dependency injection and easier testing.
type MultiplierFactory interface {
	// Create creates a new Multiplier instance by name.
	// Returns an error if the multiplier type is not registered.
	Create(name string) (Multiplier, error)

	// Get returns an existing Multiplier instance by name.
	// Returns an error if the multiplier type is not registered.
	Get(name string) (Multiplier, error)

	// List returns a sorted list of registered multiplier names.
	List() []string

	// Register adds a new multiplier type to the factory.
	Register(name string, creator func() coreMultiplier) error

	// GetAll returns a map of all registered multipliers.
	GetAll() map[string]Multiplier
}

// DefaultFactory is the default implementation of MultiplierFactory.
// It maintains a thread-safe registry of multiplier creators and caches
// Multiplier instances for reuse.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreMultiplier
	multipliers map[string]Multiplier
}

// NewDefaultFactory creates a new DefaultFactory with the standard
// multiplication algorithms pre-registered.
//
// Pre-registered multipliers:
//   - "schoolbook": SchoolbookMultiplier (direct, quadratic)
//   - "karatsuba": KaratsubaMultiplier (2-way split, 3 sub-products)
//   - "toom3": Toom3Multiplier (3-way split, 5 sub-products)
//   - "adaptive": AdaptiveMultiplier (magnitude-based selection)
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreMultiplier),
		multipliers: make(map[string]Multiplier),
	}

	_ = f.Register("schoolbook", func() coreMultiplier { return &SchoolbookMultiplier{} })
	_ = f.Register("karatsuba", func() coreMultiplier { return &KaratsubaMultiplier{} })
	_ = f.Register("toom3", func() coreMultiplier { return &Toom3Multiplier{} })
	_ = f.Register("adaptive", func() coreMultiplier { return &AdaptiveMultiplier{} })

	return f
}

// Register adds a new multiplier type to the factory.
// The creator function is called lazily when the multiplier is first
// requested. If a multiplier with the same name already exists, it will be
// replaced.
func (f *DefaultFactory) Register(name string, creator func() coreMultiplier) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	// Clear cached multiplier so it will be recreated with the new creator
	delete(f.multipliers, name)
	return nil
}

// Create creates a new Multiplier instance by name.
// Unlike Get(), this always creates a fresh instance without caching.
func (f *DefaultFactory) Create(name string) (Multiplier, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown multiplier: %s", name)
	}
	return NewMultiplier(creator()), nil
}

// Get returns a Multiplier instance by name.
// Instances are cached and reused for subsequent calls with the same name.
// This is the preferred method for most use cases.
func (f *DefaultFactory) Get(name string) (Multiplier, error) {
	f.mu.RLock()
	if m, exists := f.multipliers[name]; exists {
		f.mu.RUnlock()
		return m, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock
	if m, exists := f.multipliers[name]; exists {
		return m, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown multiplier: %s", name)
	}

	m := NewMultiplier(creator())
	f.multipliers[name] = m
	return m, nil
}

// List returns a sorted list of all registered multiplier names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a map of all registered multipliers, lazily initializing
// any that haven't been created yet.
func (f *DefaultFactory) GetAll() map[string]Multiplier {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.multipliers[name]; !exists {
			f.multipliers[name] = NewMultiplier(creator())
		}
	}

	// Return a copy to prevent external modifications
	result := make(map[string]Multiplier, len(f.multipliers))
	for name, m := range f.multipliers {
		result[name] = m
	}
	return result
}

// MustGet is like Get but panics if the multiplier is not found.
// This is useful in initialization code where a missing multiplier is a
// programming error.
func (f *DefaultFactory) MustGet(name string) Multiplier {
	m, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("multiply: required multiplier not found: %s", name))
	}
	return m
}

// Has checks if a multiplier with the given name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// globalFactory is the default global factory instance.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the global factory instance.
// This is a convenience for applications that don't need multiple factory
// instances.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterMultiplier registers a multiplier in the global factory.
// This is a convenience function for adding custom algorithms.
func RegisterMultiplier(name string, creator func() coreMultiplier) error {
	return globalFactory.Register(name, creator)
}

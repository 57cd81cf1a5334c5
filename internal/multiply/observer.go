// Package multiply provides implementations of exact big-integer multiplication.
// This file contains the Observer pattern implementation for progress reporting.
package multiply

import (
	"sync"
)

// ProgressObserver defines the interface for observing progress events.
// Implementations receive notifications when multiplication progress changes,
// enabling decoupled handling of progress updates for UI, logging, metrics, etc.
type ProgressObserver interface {
	// Update is called when progress changes.
	//
	// Parameters:
	//   - mulIndex: The multiplier instance identifier (for concurrent runs)
	//   - progress: The normalized progress value (0.0 to 1.0)
	Update(mulIndex int, progress float64)
}

// ProgressSubject manages observer registration and notification for progress
// events. It implements the Subject part of the Observer pattern, allowing
// multiple observers to be notified of progress updates without tight
// coupling between the multiplier and its consumers.
//
// ProgressSubject is safe for concurrent use.
type ProgressSubject struct {
	observers []ProgressObserver
	mu        sync.RWMutex
}

// NewProgressSubject creates a new subject for managing progress observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{
		observers: make([]ProgressObserver, 0),
	}
}

// Register adds an observer to receive progress updates.
// Observers are notified in the order they are registered.
// A nil observer is ignored.
func (s *ProgressSubject) Register(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// Unregister removes an observer from receiving updates.
// If the observer is not found, this call is a no-op.
func (s *ProgressSubject) Unregister(observer ProgressObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify sends a progress update to all registered observers.
// Observers are notified synchronously in registration order.
//
// Parameters:
//   - mulIndex: The multiplier instance identifier.
//   - progress: The normalized progress value (0.0 to 1.0).
func (s *ProgressSubject) Notify(mulIndex int, progress float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, observer := range s.observers {
		observer.Update(mulIndex, progress)
	}
}

// ObserverCount returns the number of registered observers.
// This is primarily useful for testing and diagnostics.
func (s *ProgressSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// AsProgressReporter returns a ProgressReporter function that notifies all
// observers. This bridges the functional reporter type used by the core
// algorithms to the observer mechanism.
//
// Parameters:
//   - mulIndex: The multiplier instance identifier to include in notifications.
func (s *ProgressSubject) AsProgressReporter(mulIndex int) ProgressReporter {
	return func(progress float64) {
		s.Notify(mulIndex, progress)
	}
}

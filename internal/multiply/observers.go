// Package multiply provides implementations of exact big-integer multiplication.
// This file contains concrete observer implementations for the Observer pattern.
package multiply

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// ─────────────────────────────────────────────────────────────────────────────
// Channel Observer
// ─────────────────────────────────────────────────────────────────────────────

// ChannelObserver adapts the Observer pattern to channel-based communication.
// The CLI progress display consumes ProgressUpdate values from a channel;
// this observer forwards notifications onto it.
type ChannelObserver struct {
	channel chan<- ProgressUpdate
}

// NewChannelObserver creates an observer that sends updates to a channel.
// The channel should have sufficient buffer capacity to avoid blocking.
// A nil channel yields an observer that discards updates.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{channel: ch}
}

// Update implements ProgressObserver by sending to the channel.
// Uses a non-blocking send to avoid deadlocks when the channel is full.
func (o *ChannelObserver) Update(mulIndex int, progress float64) {
	if o.channel == nil {
		return
	}

	if progress > 1.0 {
		progress = 1.0
	}

	update := ProgressUpdate{MultiplierIndex: mulIndex, Value: progress}

	select {
	case o.channel <- update:
	default:
		// Channel full, drop update (UI will catch up on next update)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver logs progress updates using zerolog.
// It throttles logging based on a threshold to avoid log spam.
type LoggingObserver struct {
	logger    zerolog.Logger
	threshold float64         // Minimum progress change to log
	lastLog   map[int]float64 // Last logged progress per multiplier
	mu        sync.Mutex
}

// NewLoggingObserver creates an observer that logs progress.
// It only logs when progress changes by at least the threshold amount.
//
// Parameters:
//   - logger: The zerolog logger to use.
//   - threshold: Minimum progress change to trigger a log (e.g., 0.1 for 10%).
func NewLoggingObserver(logger zerolog.Logger, threshold float64) *LoggingObserver {
	if threshold <= 0 {
		threshold = 0.1
	}
	return &LoggingObserver{
		logger:    logger,
		threshold: threshold,
		lastLog:   make(map[int]float64),
	}
}

// Update implements ProgressObserver by logging significant progress changes.
func (o *LoggingObserver) Update(mulIndex int, progress float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	lastProgress := o.lastLog[mulIndex]

	shouldLog := progress >= 1.0 ||
		lastProgress == 0 && progress > 0 ||
		progress-lastProgress >= o.threshold

	if shouldLog {
		o.logger.Debug().
			Int("multiplier", mulIndex).
			Float64("progress", progress).
			Str("percent", fmt.Sprintf("%.1f%%", progress*100)).
			Msg("multiplication progress")
		o.lastLog[mulIndex] = progress
	}
}

package cli

import (
	"fmt"
	"time"
)

// ProgressWithETA wraps a ProgressState and derives an estimated time to
// completion from the observed rate of progress. The rate is smoothed
// exponentially so that bursty progress reports from the recursive cores do
// not make the estimate jump around.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // smoothed, in progress units per second
}

// NewProgressWithETA creates an ETA-aware tracker for numMultipliers
// concurrently running multipliers.
func NewProgressWithETA(numMultipliers int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numMultipliers),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records a progress value for the multiplier at index and
// returns the new aggregate progress together with the estimated time
// remaining. The estimate is zero while too little time or progress has
// accumulated to be meaningful.
//
// Parameters:
//   - index: The index of the multiplier (0 to numMultipliers-1).
//   - value: The new progress value (0.0 to 1.0).
//
// Returns:
//   - progress: The current average progress (0.0 to 1.0).
//   - eta: The estimated time remaining, or 0 when no estimate exists yet.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (progress float64, eta time.Duration) {
	p.Update(index, value)
	progress = p.CalculateAverage()

	now := time.Now()
	elapsed := now.Sub(p.startTime)

	if elapsed < 100*time.Millisecond || progress <= 0.001 {
		p.lastUpdate = now
		p.lastProgress = progress
		return progress, 0
	}

	// Fold a new instantaneous rate into the smoothed rate at most every
	// 50ms, weighting the history 70/30.
	timeSinceUpdate := now.Sub(p.lastUpdate).Seconds()
	if timeSinceUpdate > 0.05 {
		progressDelta := progress - p.lastProgress
		if progressDelta > 0 {
			instantRate := progressDelta / timeSinceUpdate
			if p.progressRate > 0 {
				p.progressRate = 0.7*p.progressRate + 0.3*instantRate
			} else {
				p.progressRate = progress / elapsed.Seconds()
			}
		}
		p.lastUpdate = now
		p.lastProgress = progress
	}

	if p.progressRate > 0 && progress < 1.0 {
		eta = etaFromRate(progress, p.progressRate)
	}
	return progress, eta
}

// GetETA returns the estimate implied by the current smoothed rate without
// recording any new progress.
func (p *ProgressWithETA) GetETA() time.Duration {
	progress := p.CalculateAverage()
	if p.progressRate <= 0 || progress >= 1.0 {
		return 0
	}
	return etaFromRate(progress, p.progressRate)
}

// etaFromRate converts remaining progress at the given rate into a
// duration, capped at 24h so a stalled multiplication never reports an
// absurd estimate.
func etaFromRate(progress, rate float64) time.Duration {
	remaining := 1.0 - progress
	eta := time.Duration(remaining / rate * float64(time.Second))
	if eta > 24*time.Hour {
		eta = 24 * time.Hour
	}
	return eta
}

// FormatETA renders a duration as a compact human-readable estimate,
// choosing the unit granularity from the magnitude: "< 1s", "45s", "2m30s",
// "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		minutes := int(eta.Minutes())
		seconds := int(eta.Seconds()) % 60
		if seconds > 0 {
			return fmt.Sprintf("%dm%ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	default:
		hours := int(eta.Hours())
		minutes := int(eta.Minutes()) % 60
		if minutes > 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	}
}

// FormatProgressBarWithETA combines the percentage, the visual bar and the
// time estimate into a single status line, e.g.
// " 45.00% [████░░░░] ETA: 2m30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%6.2f%% [%s] ETA: %s", progress*100, progressBar(progress, width), FormatETA(eta))
}

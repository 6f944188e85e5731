package port

import "time"

// MintMetrics records what the mint flow does. Implementations must be safe for concurrent use.
type MintMetrics interface {
	AvailabilityChecked(backend, result string)
	MintFinished(backend, outcome string, elapsed time.Duration)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) AvailabilityChecked(string, string) {}
func (NopMetrics) MintFinished(string, string, time.Duration) {}

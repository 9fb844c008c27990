package judge

import "time"

// BackoffPolicy is a value object describing the retry schedule: a fixed
// sequence of delays, doubling the last one once the sequence is exhausted.
// Keeping it as plain data lets tests exercise retry behaviour without real
// timers.
type BackoffPolicy struct {
	// Delays is the base delay sequence, indexed by attempt number.
	Delays []time.Duration
	// MaxAttempts is the total attempt ceiling, including the first try.
	MaxAttempts int
}

// DefaultBackoff mirrors the production retry schedule.
func DefaultBackoff() BackoffPolicy {
	return BackoffPolicy{
		Delays:      []time.Duration{time.Second, 2 * time.Second, 4 * time.Second},
		MaxAttempts: 3,
	}
}

// Delay returns the wait before retrying after the given zero-based attempt.
func (p BackoffPolicy) Delay(attempt int) time.Duration {
	if len(p.Delays) == 0 {
		return 0
	}
	if attempt < len(p.Delays) {
		return p.Delays[attempt]
	}
	last := p.Delays[len(p.Delays)-1]
	for i := len(p.Delays) - 1; i < attempt; i++ {
		last *= 2
	}
	return last
}

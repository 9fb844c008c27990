package batch

import "time"

// ProgressSnapshot is the state handed to progress callbacks. Sequential
// runs also emit one before each ticket starts, with CurrentTicket naming
// the ticket about to be evaluated. CurrentTicket is best-effort under
// concurrency.
type ProgressSnapshot struct {
	Total         int
	Completed     int
	ErrorCount    int
	CurrentTicket string
	Elapsed       time.Duration
	// ETA is the linear extrapolation elapsed/completed * remaining. It is
	// only meaningful once HasETA is true (at least one completion).
	ETA    time.Duration
	HasETA bool
}

// ProgressFunc receives progress updates. Callbacks run on the orchestrator
// goroutine holding the completion lock, so they must return promptly.
type ProgressFunc func(ProgressSnapshot)

// snapshot builds a ProgressSnapshot from the tracker's counters.
func snapshot(total, completed, errCount int, current string, elapsed time.Duration) ProgressSnapshot {
	s := ProgressSnapshot{
		Total:         total,
		Completed:     completed,
		ErrorCount:    errCount,
		CurrentTicket: current,
		Elapsed:       elapsed,
	}
	if completed > 0 {
		remaining := total - completed
		s.ETA = time.Duration(int64(elapsed) / int64(completed) * int64(remaining))
		s.HasETA = true
	}
	return s
}

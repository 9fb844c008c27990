package judge

import "sync"

// Pricing used for the cost estimate, in dollars per million tokens.
const (
	inputCostPerMillion  = 2.50
	outputCostPerMillion = 10.00
)

// UsageSnapshot is an immutable view of cumulative token consumption.
type UsageSnapshot struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
	RequestCount     int64
}

// EstimatedCost returns the dollar estimate for the recorded usage.
func (u UsageSnapshot) EstimatedCost() float64 {
	input := float64(u.PromptTokens) / 1_000_000 * inputCostPerMillion
	output := float64(u.CompletionTokens) / 1_000_000 * outputCostPerMillion
	return input + output
}

// usageTracker accumulates token usage across calls. Counters only reset on
// explicit request, never implicitly.
type usageTracker struct {
	mu       sync.Mutex
	snapshot UsageSnapshot
}

func (t *usageTracker) add(prompt, completion int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snapshot.PromptTokens += prompt
	t.snapshot.CompletionTokens += completion
	t.snapshot.TotalTokens += prompt + completion
	t.snapshot.RequestCount++
}

func (t *usageTracker) current() UsageSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot
}

// reset zeroes the counters and returns the final snapshot.
func (t *usageTracker) reset() UsageSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.snapshot
	t.snapshot = UsageSnapshot{}
	return out
}

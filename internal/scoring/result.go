package scoring

import (
	"time"

	"github.com/godilite/review-server/internal/rubric"
)

// EvaluationResult is the final evaluation of one ticket against one rubric.
// Built once by the aggregator and immutable thereafter.
type EvaluationResult struct {
	TicketNumber string
	RubricID     string

	BaseScore      int
	DeductionTotal int
	AutoFail       bool
	AutoFailReason string
	FinalScore     int
	MaxScore       int
	Percentage     float64
	Band           Band
	Passed         bool

	Outcomes     []rubric.CriterionOutcome
	Strengths    []string
	Improvements []string

	EvaluatedAt    time.Time
	EvaluationTime time.Duration
}

// BatchSummary is the order-independent reduction over a batch's completed
// evaluations. Derived once, never mutated.
type BatchSummary struct {
	TotalTickets int
	PassedCount  int
	FailedCount  int

	AverageScore      float64
	AveragePercentage float64

	BandDistribution map[Band]int

	// TopImprovements lists the most recurring improvement areas across the
	// batch, most frequent first.
	TopImprovements []string

	TotalElapsed time.Duration
}

// PassRate returns the batch pass percentage, rounded to one decimal.
func (s BatchSummary) PassRate() float64 {
	if s.TotalTickets == 0 {
		return 0
	}
	return round1(float64(s.PassedCount) / float64(s.TotalTickets) * 100)
}

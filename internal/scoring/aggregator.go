// Package scoring aggregates criterion outcomes into the final evaluation:
// auto-fail check, base score, deductions, percentage, performance band and
// pass/fail verdict. The aggregator is a pure function of its inputs and
// holds no state between tickets.
package scoring

import (
	"math"
	"sort"
	"time"

	"github.com/godilite/review-server/internal/rubric"
)

const (
	passThresholdPercent   = 90.0
	strengthThreshold      = 0.9
	improvementThreshold   = 0.7
	maxHighlightedCriteria = 5
)

// Aggregate combines the outcomes for one ticket into an EvaluationResult.
func Aggregate(ticketNumber string, r rubric.Rubric, outcomes []rubric.CriterionOutcome, took time.Duration) EvaluationResult {
	result := EvaluationResult{
		TicketNumber:   ticketNumber,
		RubricID:       r.ID,
		MaxScore:       r.MaxScore(),
		Outcomes:       outcomes,
		EvaluatedAt:    time.Now(),
		EvaluationTime: took,
	}

	// Auto-fail is terminal: remaining outcomes are recorded for display
	// but no longer affect the score.
	for _, o := range outcomes {
		if o.Kind == rubric.Fail {
			result.AutoFail = true
			result.AutoFailReason = o.Reasoning
			result.Band = BandPurple
			result.Strengths, result.Improvements = highlights(r, outcomes)
			return result
		}
	}

	deductionIDs := make(map[string]bool)
	for _, c := range r.DeductionCriteria() {
		deductionIDs[c.ID] = true
	}

	base, deductions := 0, 0
	for _, o := range outcomes {
		switch o.Kind {
		case rubric.Numeric:
			if !deductionIDs[o.CriterionID] {
				base += o.Points
			}
		case rubric.Deduction:
			if deductionIDs[o.CriterionID] {
				deductions += o.Points
			}
		}
	}
	// Defensive clamp; well-formed rubrics never need it.
	if base > result.MaxScore {
		base = result.MaxScore
	}

	final := base + deductions
	if final < 0 {
		final = 0
	}

	result.BaseScore = base
	result.DeductionTotal = deductions
	result.FinalScore = final
	if result.MaxScore > 0 {
		result.Percentage = round1(float64(final) / float64(result.MaxScore) * 100)
	}
	result.Band = BandFromPercentage(result.Percentage)
	result.Passed = result.Percentage >= passThresholdPercent
	result.Strengths, result.Improvements = highlights(r, outcomes)
	return result
}

// highlights derives the strengths and improvements lists: criteria at or
// above 90% of max (or Pass) versus below 70% (or Fail/Deduction), each
// capped at five with the most material criteria first.
func highlights(r rubric.Rubric, outcomes []rubric.CriterionOutcome) (strengths, improvements []string) {
	type entry struct {
		name   string
		weight int
	}
	var strong, weak []entry

	for _, o := range outcomes {
		name := o.CriterionID
		weight := o.MaxPoints
		if c, ok := r.Criterion(o.CriterionID); ok {
			name = c.Name
			if c.MaxPoints > weight {
				weight = c.MaxPoints
			}
		}

		switch o.Kind {
		case rubric.Pass:
			strong = append(strong, entry{name, weight})
		case rubric.Fail:
			weak = append(weak, entry{name, weight})
		case rubric.Deduction:
			if o.Points < 0 {
				weak = append(weak, entry{name, -o.Points})
			}
		case rubric.Numeric:
			if o.MaxPoints <= 0 {
				continue
			}
			ratio := float64(o.Points) / float64(o.MaxPoints)
			if ratio >= strengthThreshold {
				strong = append(strong, entry{name, weight})
			} else if ratio < improvementThreshold {
				weak = append(weak, entry{name, weight})
			}
		}
	}

	byWeight := func(entries []entry) []string {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].weight > entries[j].weight
		})
		if len(entries) > maxHighlightedCriteria {
			entries = entries[:maxHighlightedCriteria]
		}
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.name
		}
		return out
	}
	return byWeight(strong), byWeight(weak)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

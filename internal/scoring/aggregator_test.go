package scoring_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/scoring"
)

func additiveRubric() rubric.Rubric {
	return rubric.Rubric{
		ID:   "additive",
		Name: "Additive",
		Criteria: []rubric.Criterion{
			{ID: "notes", Name: "Notes", MaxPoints: 20, EvaluationType: rubric.EvalJudge},
			{ID: "handling", Name: "Handling", MaxPoints: 15, EvaluationType: rubric.EvalJudge},
			{ID: "format", Name: "Format", MaxPoints: 5, EvaluationType: rubric.EvalRules},
			{ID: "compliance", Name: "Compliance", IsDeduction: true, EvaluationType: rubric.EvalRules},
		},
	}
}

func TestAggregate(t *testing.T) {
	r := additiveRubric()

	t.Run("base score with deduction", func(t *testing.T) {
		outcomes := []rubric.CriterionOutcome{
			rubric.NumericOutcome("notes", 18, 20, "", "", ""),
			rubric.NumericOutcome("handling", 12, 15, "", "", ""),
			rubric.NumericOutcome("format", 5, 5, "", "", ""),
			rubric.DeductionOutcome("compliance", 15, "", "", ""),
		}

		result := scoring.Aggregate("INC0031001", r, outcomes, 250*time.Millisecond)

		assert.Equal(t, "INC0031001", result.TicketNumber)
		assert.Equal(t, "additive", result.RubricID)
		assert.Equal(t, 35, result.BaseScore)
		assert.Equal(t, -15, result.DeductionTotal)
		assert.Equal(t, 20, result.FinalScore)
		assert.Equal(t, 40, result.MaxScore)
		assert.InDelta(t, 50.0, result.Percentage, 0.001)
		assert.Equal(t, scoring.BandRed, result.Band)
		assert.False(t, result.Passed)
		assert.False(t, result.AutoFail)
		assert.Equal(t, 250*time.Millisecond, result.EvaluationTime)
		assert.False(t, result.EvaluatedAt.IsZero())
	})

	t.Run("perfect score passes", func(t *testing.T) {
		outcomes := []rubric.CriterionOutcome{
			rubric.NumericOutcome("notes", 20, 20, "", "", ""),
			rubric.NumericOutcome("handling", 15, 15, "", "", ""),
			rubric.NumericOutcome("format", 5, 5, "", "", ""),
			rubric.PassOutcome("compliance", "", "", ""),
		}

		result := scoring.Aggregate("INC0031002", r, outcomes, time.Millisecond)

		assert.Equal(t, 40, result.FinalScore)
		assert.InDelta(t, 100.0, result.Percentage, 0.001)
		assert.Equal(t, scoring.BandBlue, result.Band)
		assert.True(t, result.Passed)
	})

	t.Run("deductions never push final below zero", func(t *testing.T) {
		outcomes := []rubric.CriterionOutcome{
			rubric.NumericOutcome("notes", 5, 20, "", "", ""),
			rubric.NumericOutcome("handling", 0, 15, "", "", ""),
			rubric.NumericOutcome("format", 2, 5, "", "", ""),
			rubric.DeductionOutcome("compliance", 35, "", "", ""),
		}

		result := scoring.Aggregate("INC0031003", r, outcomes, time.Millisecond)

		assert.Equal(t, 7, result.BaseScore)
		assert.Equal(t, -35, result.DeductionTotal)
		assert.Equal(t, 0, result.FinalScore)
		assert.Equal(t, scoring.BandPurple, result.Band)
	})

	t.Run("auto fail is terminal", func(t *testing.T) {
		outcomes := []rubric.CriterionOutcome{
			rubric.NumericOutcome("notes", 20, 20, "", "", ""),
			rubric.NumericOutcome("handling", 15, 15, "", "", ""),
			rubric.NumericOutcome("format", 5, 5, "", "", ""),
			rubric.FailOutcome("compliance", "evidence", "password sent directly to user", ""),
		}

		result := scoring.Aggregate("INC0031004", r, outcomes, time.Millisecond)

		require.True(t, result.AutoFail)
		assert.Equal(t, "password sent directly to user", result.AutoFailReason)
		assert.Equal(t, 0, result.FinalScore)
		assert.Zero(t, result.Percentage)
		assert.Equal(t, scoring.BandPurple, result.Band)
		assert.False(t, result.Passed)
		// Outcomes are preserved for display even though scoring stopped.
		assert.Len(t, result.Outcomes, 4)
	})

	t.Run("deduction from a non-deduction criterion is ignored", func(t *testing.T) {
		outcomes := []rubric.CriterionOutcome{
			rubric.NumericOutcome("notes", 20, 20, "", "", ""),
			rubric.DeductionOutcome("notes", 10, "", "", ""),
		}

		result := scoring.Aggregate("INC0031005", r, outcomes, time.Millisecond)

		assert.Equal(t, 20, result.BaseScore)
		assert.Zero(t, result.DeductionTotal)
	})

	t.Run("empty rubric yields purple zero", func(t *testing.T) {
		result := scoring.Aggregate("INC0031006", rubric.Rubric{ID: "empty"}, nil, time.Millisecond)

		assert.Zero(t, result.FinalScore)
		assert.Zero(t, result.MaxScore)
		assert.Zero(t, result.Percentage)
		assert.Equal(t, scoring.BandPurple, result.Band)
		assert.False(t, result.Passed)
	})
}

func TestBandBoundaries(t *testing.T) {
	// A single 1000-point criterion makes the percentage exactly score/10.
	r := rubric.Rubric{
		ID:       "boundaries",
		Criteria: []rubric.Criterion{{ID: "only", Name: "Only", MaxPoints: 1000, EvaluationType: rubric.EvalJudge}},
	}

	cases := []struct {
		points int
		band   scoring.Band
		passed bool
	}{
		{1000, scoring.BandBlue, true},
		{950, scoring.BandBlue, true},
		{949, scoring.BandGreen, true},
		{900, scoring.BandGreen, true},
		{899, scoring.BandYellow, false},
		{750, scoring.BandYellow, false},
		{749, scoring.BandRed, false},
		{500, scoring.BandRed, false},
		{499, scoring.BandPurple, false},
		{0, scoring.BandPurple, false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d of 1000 is %s", tc.points, tc.band), func(t *testing.T) {
			outcomes := []rubric.CriterionOutcome{
				rubric.NumericOutcome("only", tc.points, 1000, "", "", ""),
			}
			result := scoring.Aggregate("INC0031100", r, outcomes, time.Millisecond)
			assert.Equal(t, tc.band, result.Band)
			assert.Equal(t, tc.passed, result.Passed)
		})
	}
}

func TestHighlights(t *testing.T) {
	r := rubric.Rubric{
		ID: "highlights",
		Criteria: []rubric.Criterion{
			{ID: "big", Name: "Big Criterion", MaxPoints: 30, EvaluationType: rubric.EvalJudge},
			{ID: "mid", Name: "Mid Criterion", MaxPoints: 20, EvaluationType: rubric.EvalJudge},
			{ID: "small", Name: "Small Criterion", MaxPoints: 10, EvaluationType: rubric.EvalRules},
			{ID: "pen", Name: "Penalty Criterion", IsDeduction: true, EvaluationType: rubric.EvalRules},
		},
	}

	t.Run("thresholds split strengths and improvements", func(t *testing.T) {
		outcomes := []rubric.CriterionOutcome{
			rubric.NumericOutcome("big", 27, 30, "", "", ""),  // exactly 0.9: strength
			rubric.NumericOutcome("mid", 13, 20, "", "", ""),  // 0.65: improvement
			rubric.NumericOutcome("small", 8, 10, "", "", ""), // 0.8: neither
			rubric.DeductionOutcome("pen", 15, "", "", ""),    // improvement
		}

		result := scoring.Aggregate("INC0031200", r, outcomes, time.Millisecond)

		assert.Equal(t, []string{"Big Criterion"}, result.Strengths)
		assert.Equal(t, []string{"Mid Criterion", "Penalty Criterion"}, result.Improvements)
	})

	t.Run("pass counts as strength and names come from the rubric", func(t *testing.T) {
		outcomes := []rubric.CriterionOutcome{
			rubric.PassOutcome("pen", "", "all good", ""),
			rubric.NumericOutcome("big", 30, 30, "", "", ""),
		}

		result := scoring.Aggregate("INC0031201", r, outcomes, time.Millisecond)

		assert.Equal(t, []string{"Big Criterion", "Penalty Criterion"}, result.Strengths)
		assert.Empty(t, result.Improvements)
	})

	t.Run("capped at five", func(t *testing.T) {
		var criteria []rubric.Criterion
		var outcomes []rubric.CriterionOutcome
		for i := 0; i < 8; i++ {
			id := fmt.Sprintf("c%d", i)
			criteria = append(criteria, rubric.Criterion{
				ID: id, Name: id, MaxPoints: 10 + i, EvaluationType: rubric.EvalJudge,
			})
			outcomes = append(outcomes, rubric.NumericOutcome(id, 0, 10+i, "", "", ""))
		}

		result := scoring.Aggregate("INC0031202", rubric.Rubric{ID: "wide", Criteria: criteria}, outcomes, time.Millisecond)

		require.Len(t, result.Improvements, 5)
		// Heaviest criteria first.
		assert.Equal(t, "c7", result.Improvements[0])
		assert.Equal(t, "c3", result.Improvements[4])
	})
}

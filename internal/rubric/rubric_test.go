package rubric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/review-server/internal/rubric"
)

func TestMaxScore(t *testing.T) {
	t.Run("sums non-deduction criteria only", func(t *testing.T) {
		r := rubric.Rubric{
			ID: "custom",
			Criteria: []rubric.Criterion{
				{ID: "a", MaxPoints: 10},
				{ID: "b", MaxPoints: 20},
				{ID: "pen", MaxPoints: 0, IsDeduction: true},
			},
		}
		assert.Equal(t, 30, r.MaxScore())
	})

	t.Run("incident review totals 88", func(t *testing.T) {
		assert.Equal(t, 88, rubric.IncidentReview().MaxScore())
	})

	t.Run("onsite review totals 90", func(t *testing.T) {
		assert.Equal(t, 90, rubric.OnsiteReview().MaxScore())
	})

	t.Run("empty rubric totals zero", func(t *testing.T) {
		assert.Equal(t, 0, rubric.Rubric{ID: "empty"}.MaxScore())
	})
}

func TestCriterionLookup(t *testing.T) {
	r := rubric.IncidentReview()

	c, ok := r.Criterion("incident_notes")
	require.True(t, ok)
	assert.Equal(t, "Incident Notes Quality", c.Name)
	assert.Equal(t, 20, c.MaxPoints)

	_, ok = r.Criterion("nonexistent")
	assert.False(t, ok)
}

func TestCriteriaPartitions(t *testing.T) {
	r := rubric.IncidentReview()

	scoring := r.ScoringCriteria()
	deductions := r.DeductionCriteria()
	assert.Len(t, scoring, 8)
	assert.Len(t, deductions, 2)
	assert.Len(t, r.Criteria, len(scoring)+len(deductions))

	for _, c := range deductions {
		assert.True(t, c.IsDeduction)
		assert.Equal(t, rubric.EvalRules, c.EvaluationType)
	}

	judge := r.JudgeCriteria()
	assert.Len(t, judge, 3)
	for _, c := range judge {
		assert.Equal(t, rubric.EvalJudge, c.EvaluationType)
	}

	// Onsite rubric has no deductions, so auto-fail machinery never engages.
	onsite := rubric.OnsiteReview()
	assert.Empty(t, onsite.DeductionCriteria())
	assert.Len(t, onsite.JudgeCriteria(), 7)
}

func TestOutcomeConstructors(t *testing.T) {
	t.Run("numeric clamps into range", func(t *testing.T) {
		o := rubric.NumericOutcome("c", 15, 10, "ev", "reason", "")
		assert.Equal(t, 10, o.Points)
		assert.Equal(t, rubric.Numeric, o.Kind)

		o = rubric.NumericOutcome("c", -3, 10, "", "", "")
		assert.Equal(t, 0, o.Points)
	})

	t.Run("deduction negates positive magnitudes", func(t *testing.T) {
		o := rubric.DeductionOutcome("c", 15, "ev", "reason", "coach")
		assert.Equal(t, -15, o.Points)
		assert.Equal(t, rubric.Deduction, o.Kind)

		o = rubric.DeductionOutcome("c", -15, "", "", "")
		assert.Equal(t, -15, o.Points)
	})

	t.Run("pass and fail carry no points", func(t *testing.T) {
		pass := rubric.PassOutcome("c", "ev", "ok", "")
		assert.Equal(t, rubric.Pass, pass.Kind)
		assert.Zero(t, pass.Points)

		fail := rubric.FailOutcome("c", "ev", "violation", "coach")
		assert.Equal(t, rubric.Fail, fail.Kind)
		assert.Equal(t, "violation", fail.Reasoning)
	})
}

func TestOutcomeKindRoundTrip(t *testing.T) {
	kinds := []rubric.OutcomeKind{
		rubric.Numeric, rubric.Pass, rubric.Fail,
		rubric.NotApplicable, rubric.Deduction,
	}
	for _, k := range kinds {
		assert.Equal(t, k, rubric.ParseOutcomeKind(k.String()))
	}

	assert.Equal(t, "n/a", rubric.NotApplicable.String())
	assert.Equal(t, rubric.NotApplicable, rubric.ParseOutcomeKind("garbage"))
	assert.Equal(t, rubric.NotApplicable, rubric.ParseOutcomeKind(""))
}

func TestIsPerfect(t *testing.T) {
	assert.True(t, rubric.PassOutcome("c", "", "", "").IsPerfect())
	assert.True(t, rubric.NumericOutcome("c", 10, 10, "", "", "").IsPerfect())
	assert.False(t, rubric.NumericOutcome("c", 9, 10, "", "", "").IsPerfect())
	assert.False(t, rubric.NumericOutcome("c", 0, 0, "", "", "").IsPerfect())
	assert.False(t, rubric.FailOutcome("c", "", "", "").IsPerfect())
	assert.False(t, rubric.NotApplicableOutcome("c", "", "").IsPerfect())
}

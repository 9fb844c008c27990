package judge_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/review-server/internal/judge"
	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/ticket"
)

type recordedCall struct {
	system string
	user   string
}

// stubClient satisfies judge.Client with a canned completion function.
type stubClient struct {
	completeFunc func(system, user string) (map[string]any, error)
	calls        []recordedCall
}

func (s *stubClient) Complete(_ context.Context, system, user string) (map[string]any, error) {
	s.calls = append(s.calls, recordedCall{system: system, user: user})
	return s.completeFunc(system, user)
}

func (s *stubClient) Usage() judge.UsageSnapshot      { return judge.UsageSnapshot{} }
func (s *stubClient) ResetUsage() judge.UsageSnapshot { return judge.UsageSnapshot{} }

func sampleTicket() ticket.Ticket {
	return ticket.Ticket{
		Number:           "INC0043001",
		ShortDescription: "MARSH - Sydney - VDI - Unable to connect",
		Description:      "User cannot reach the virtual desktop.",
		Category:         "software",
		Subcategory:      "access",
	}
}

func TestNewEvaluatorRequiresClient(t *testing.T) {
	assert.Panics(t, func() {
		judge.NewEvaluator(nil, nil)
	})
}

func TestEvaluateGroupsFieldCorrectness(t *testing.T) {
	stub := &stubClient{
		completeFunc: func(system, user string) (map[string]any, error) {
			if strings.Contains(user, "category_score") {
				return map[string]any{
					"category_score":        float64(5),
					"category_reasoning":    "matches the issue",
					"subcategory_score":     float64(4),
					"subcategory_reasoning": "close but generic",
					"service_score":         float64(5),
					"service_reasoning":     "correct service",
					"ci_score":              float64(8),
					"ci_reasoning":          "pool CI acceptable",
					"evidence":              "classification fields reviewed",
					"coaching":              "pick the specific subcategory",
				}, nil
			}
			return map[string]any{
				"score":     float64(17),
				"evidence":  "work notes are thorough",
				"reasoning": "clear troubleshooting trail",
			}, nil
		},
	}
	evaluator := judge.NewEvaluator(stub, nil)

	outcomes := evaluator.Evaluate(context.Background(), sampleTicket(), rubric.OnsiteReview())

	// 4 field-correctness criteria in one call, 3 individual criteria.
	// opened_for_correct is rules-typed and must not reach the judge.
	assert.Len(t, stub.calls, 4)
	require.Len(t, outcomes, 7)

	byID := make(map[string]rubric.CriterionOutcome, len(outcomes))
	for _, o := range outcomes {
		byID[o.CriterionID] = o
	}
	assert.NotContains(t, byID, "opened_for_correct")

	category := byID[judge.CriterionCorrectCategory]
	assert.Equal(t, 5, category.Points)
	assert.Equal(t, "matches the issue", category.Reasoning)
	assert.Equal(t, "classification fields reviewed", category.Evidence)
	assert.Equal(t, "pick the specific subcategory", category.Coaching)

	ci := byID[judge.CriterionCorrectCI]
	assert.Equal(t, 8, ci.Points)
	assert.Equal(t, 10, ci.MaxPoints)

	notes := byID["incident_notes"]
	assert.Equal(t, 17, notes.Points)
	assert.Equal(t, "clear troubleshooting trail", notes.Reasoning)
}

func TestEvaluateFallbackOnFailure(t *testing.T) {
	stub := &stubClient{
		completeFunc: func(system, user string) (map[string]any, error) {
			return nil, errors.New("judge unreachable")
		},
	}
	evaluator := judge.NewEvaluator(stub, nil)

	r := rubric.Rubric{
		ID: "judge-only",
		Criteria: []rubric.Criterion{
			{ID: "incident_notes", Name: "Incident Notes Quality", MaxPoints: 20, EvaluationType: rubric.EvalJudge},
		},
	}

	outcomes := evaluator.Evaluate(context.Background(), sampleTicket(), r)

	require.Len(t, outcomes, 1)
	assert.Equal(t, rubric.Numeric, outcomes[0].Kind)
	assert.Zero(t, outcomes[0].Points)
	assert.Equal(t, 20, outcomes[0].MaxPoints)
	assert.Contains(t, outcomes[0].Reasoning, "Judge evaluation unavailable")
	assert.Contains(t, outcomes[0].Coaching, "manual review")
}

func TestEvaluateLenientFields(t *testing.T) {
	cases := []struct {
		name         string
		response     map[string]any
		wantPoints   int
		wantEvidence string
	}{
		{
			name:         "score as string",
			response:     map[string]any{"score": "7", "evidence": "quoted"},
			wantPoints:   7,
			wantEvidence: "quoted",
		},
		{
			name:         "evidence as array",
			response:     map[string]any{"score": float64(5), "evidence": []any{"first", "second"}},
			wantPoints:   5,
			wantEvidence: "first; second",
		},
		{
			name:         "missing score defaults to zero",
			response:     map[string]any{"reasoning": "no score key"},
			wantPoints:   0,
			wantEvidence: "",
		},
		{
			name:       "score above max is clamped",
			response:   map[string]any{"score": float64(99)},
			wantPoints: 20,
		},
	}

	r := rubric.Rubric{
		ID: "judge-only",
		Criteria: []rubric.Criterion{
			{ID: "incident_notes", Name: "Incident Notes Quality", MaxPoints: 20, EvaluationType: rubric.EvalJudge},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubClient{
				completeFunc: func(system, user string) (map[string]any, error) {
					return tc.response, nil
				},
			}
			evaluator := judge.NewEvaluator(stub, nil)

			outcomes := evaluator.Evaluate(context.Background(), sampleTicket(), r)

			require.Len(t, outcomes, 1)
			assert.Equal(t, tc.wantPoints, outcomes[0].Points)
			assert.Equal(t, tc.wantEvidence, outcomes[0].Evidence)
		})
	}
}

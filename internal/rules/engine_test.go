package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/rules"
	"github.com/godilite/review-server/internal/ticket"
)

func TestEngineEvaluatesRulesCriteriaOnly(t *testing.T) {
	engine := rules.NewEngine(rules.DefaultTaxonomy(), zap.NewNop())

	tk := ticket.Ticket{
		Number:           "INC0042001",
		ShortDescription: "MARSH - Sydney - VDI - Unable to connect",
		Description:      "Validated by: OKTA Push. User cannot reach the virtual desktop.",
		WorkNotes:        "Reset the session host assignment, confirmed access restored.",
		Category:         "software",
		Subcategory:      "access",
		ContactType:      "phone",
		BusinessService:  "Virtual Desktop",
		ConfigItem:       "VDI-POOL-03",
	}

	outcomes := engine.Evaluate(tk, rubric.IncidentReview())

	require.Len(t, outcomes, 7)

	byID := make(map[string]rubric.CriterionOutcome, len(outcomes))
	for _, o := range outcomes {
		byID[o.CriterionID] = o
	}

	// Every rules-typed criterion is present; judge criteria are left alone.
	for _, id := range []string{
		rules.CriterionShortDescription,
		rules.CriterionCategory,
		rules.CriterionSubcategory,
		rules.CriterionService,
		rules.CriterionCI,
		rules.CriterionValidation,
		rules.CriterionCriticalProcess,
	} {
		assert.Contains(t, byID, id)
	}
	assert.NotContains(t, byID, "incident_notes")

	assert.Equal(t, 8, byID[rules.CriterionShortDescription].Points)
	assert.Equal(t, rubric.Pass, byID[rules.CriterionValidation].Kind)
	assert.Equal(t, rubric.NotApplicable, byID[rules.CriterionCriticalProcess].Kind)
}

func TestEngineUnknownCriterion(t *testing.T) {
	engine := rules.NewEngine(nil, nil)

	r := rubric.Rubric{
		ID: "custom",
		Criteria: []rubric.Criterion{
			{ID: "bespoke_check", Name: "Bespoke Check", MaxPoints: 10, EvaluationType: rubric.EvalRules},
		},
	}

	outcomes := engine.Evaluate(ticket.Ticket{Number: "INC0042002"}, r)

	require.Len(t, outcomes, 1)
	assert.Equal(t, rubric.NotApplicable, outcomes[0].Kind)
	assert.Equal(t, "bespoke_check", outcomes[0].CriterionID)
}

package judge

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/ticket"
)

// Field-correctness criterion ids, evaluated together in a single call.
const (
	CriterionCorrectCategory    = "correct_category"
	CriterionCorrectSubcategory = "correct_subcategory"
	CriterionCorrectService     = "correct_service"
	CriterionCorrectCI          = "correct_ci"
)

// System prompts per criterion id. Criteria the table does not know are
// scored with the generic prompt, keeping the evaluator rubric-driven.
var criterionSystems = map[string]string{
	"incident_notes":    incidentNotesSystem,
	"incident_handling": incidentHandlingSystem,
	"resolution_notes":  resolutionNotesSystem,
}

// Evaluator obtains criterion outcomes from the external judge. Any
// unrecoverable per-criterion failure is substituted with a zero-score
// outcome flagging manual review; it never aborts the ticket.
type Evaluator struct {
	client Client
	logger *zap.Logger
}

// NewEvaluator wraps a judge client.
func NewEvaluator(client Client, logger *zap.Logger) *Evaluator {
	if client == nil {
		panic("nil judge client provided to NewEvaluator")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{client: client, logger: logger.Named("judge")}
}

// Evaluate scores every judge-typed criterion of the rubric. The four
// field-correctness criteria share one call; every other criterion gets its
// own.
func (e *Evaluator) Evaluate(ctx context.Context, t ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome {
	var outcomes []rubric.CriterionOutcome

	fieldCriteria := make(map[string]rubric.Criterion)
	var rest []rubric.Criterion
	for _, c := range r.JudgeCriteria() {
		switch c.ID {
		case CriterionCorrectCategory, CriterionCorrectSubcategory, CriterionCorrectService, CriterionCorrectCI:
			fieldCriteria[c.ID] = c
		default:
			rest = append(rest, c)
		}
	}

	if len(fieldCriteria) > 0 {
		outcomes = append(outcomes, e.evaluateFieldCorrectness(ctx, t, fieldCriteria)...)
	}
	for _, c := range rest {
		outcomes = append(outcomes, e.evaluateCriterion(ctx, t, c))
	}
	return outcomes
}

func (e *Evaluator) evaluateFieldCorrectness(ctx context.Context, t ticket.Ticket, criteria map[string]rubric.Criterion) []rubric.CriterionOutcome {
	maxPoints := map[string]int{
		"category":    criteria[CriterionCorrectCategory].MaxPoints,
		"subcategory": criteria[CriterionCorrectSubcategory].MaxPoints,
		"service":     criteria[CriterionCorrectService].MaxPoints,
		"ci":          criteria[CriterionCorrectCI].MaxPoints,
	}

	obj, err := e.client.Complete(ctx, fieldCorrectnessSystem, fieldCorrectnessUser(t, maxPoints))
	if err != nil {
		e.logger.Error("field correctness evaluation failed",
			zap.String("ticket", t.Number), zap.Error(err))
		out := make([]rubric.CriterionOutcome, 0, len(criteria))
		for _, c := range criteria {
			out = append(out, fallbackOutcome(c, err))
		}
		return out
	}

	evidence := evidenceField(obj, "evidence")
	coaching := stringField(obj, "coaching", "")

	fields := []struct {
		id        string
		scoreKey  string
		reasonKey string
	}{
		{CriterionCorrectCategory, "category_score", "category_reasoning"},
		{CriterionCorrectSubcategory, "subcategory_score", "subcategory_reasoning"},
		{CriterionCorrectService, "service_score", "service_reasoning"},
		{CriterionCorrectCI, "ci_score", "ci_reasoning"},
	}

	var out []rubric.CriterionOutcome
	for _, f := range fields {
		c, ok := criteria[f.id]
		if !ok {
			continue
		}
		out = append(out, rubric.NumericOutcome(
			c.ID,
			intField(obj, f.scoreKey, 0),
			c.MaxPoints,
			evidence,
			stringField(obj, f.reasonKey, "No reasoning provided"),
			coaching,
		))
	}
	return out
}

func (e *Evaluator) evaluateCriterion(ctx context.Context, t ticket.Ticket, c rubric.Criterion) rubric.CriterionOutcome {
	system, ok := criterionSystems[c.ID]
	if !ok {
		system = genericCriterionSystem
	}

	obj, err := e.client.Complete(ctx, system, criterionUser(t, c.Name, c.MaxPoints))
	if err != nil {
		e.logger.Error("criterion evaluation failed",
			zap.String("ticket", t.Number),
			zap.String("criterion", c.ID),
			zap.Error(err))
		return fallbackOutcome(c, err)
	}

	return rubric.NumericOutcome(
		c.ID,
		intField(obj, "score", 0),
		c.MaxPoints,
		evidenceField(obj, "evidence"),
		stringField(obj, "reasoning", "No reasoning provided"),
		stringField(obj, "coaching", ""),
	)
}

// fallbackOutcome is the zero-score substitute for an unrecoverable judge
// failure.
func fallbackOutcome(c rubric.Criterion, err error) rubric.CriterionOutcome {
	return rubric.NumericOutcome(
		c.ID,
		0,
		c.MaxPoints,
		"",
		fmt.Sprintf("Judge evaluation unavailable: %v", err),
		"Flagged for manual review: the automated judge could not score this criterion",
	)
}

// Package rules implements the deterministic rule evaluators: pure functions
// that inspect ticket text and fields against static tables and produce
// criterion outcomes without any external calls. Evaluators share no mutable
// state, so one Engine serves any number of concurrent evaluations.
package rules

import (
	"go.uber.org/zap"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/ticket"
)

// evaluatorFunc scores one rules criterion for one ticket.
type evaluatorFunc func(t ticket.Ticket, c rubric.Criterion) rubric.CriterionOutcome

// Engine dispatches rubric criteria marked for rules evaluation to the
// matching evaluator through a criterion-id strategy map.
type Engine struct {
	logger     *zap.Logger
	evaluators map[string]evaluatorFunc
}

// NewEngine wires the built-in evaluators over the given taxonomy.
func NewEngine(tx *Taxonomy, logger *zap.Logger) *Engine {
	if tx == nil {
		tx = DefaultTaxonomy()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	critical := NewCriticalProcessDetector()
	validation := NewValidationDetector()
	category := NewCategoryMatcher(tx)
	shortDesc := NewShortDescriptionParser(tx)
	openedFor := NewOpenedForValidator()

	return &Engine{
		logger: logger.Named("rules"),
		evaluators: map[string]evaluatorFunc{
			CriterionCriticalProcess: func(t ticket.Ticket, _ rubric.Criterion) rubric.CriterionOutcome {
				return critical.Evaluate(t)
			},
			CriterionValidation: func(t ticket.Ticket, _ rubric.Criterion) rubric.CriterionOutcome {
				return validation.Evaluate(t)
			},
			CriterionCategory: func(t ticket.Ticket, c rubric.Criterion) rubric.CriterionOutcome {
				return category.EvaluateCategory(t, c.MaxPoints)
			},
			CriterionSubcategory: func(t ticket.Ticket, c rubric.Criterion) rubric.CriterionOutcome {
				return category.EvaluateSubcategory(t, c.MaxPoints)
			},
			CriterionService: func(t ticket.Ticket, c rubric.Criterion) rubric.CriterionOutcome {
				return category.EvaluateService(t, c.MaxPoints)
			},
			CriterionCI: func(t ticket.Ticket, c rubric.Criterion) rubric.CriterionOutcome {
				return category.EvaluateCI(t, c.MaxPoints)
			},
			CriterionShortDescription: func(t ticket.Ticket, _ rubric.Criterion) rubric.CriterionOutcome {
				return shortDesc.Evaluate(t)
			},
			CriterionOpenedFor: func(t ticket.Ticket, c rubric.Criterion) rubric.CriterionOutcome {
				return openedFor.Evaluate(t, c.MaxPoints)
			},
		},
	}
}

// Evaluate runs every rules-typed criterion of the rubric against the
// ticket. A criterion with no registered evaluator resolves to
// NotApplicable: unknown rules are never penalized.
func (e *Engine) Evaluate(t ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome {
	var outcomes []rubric.CriterionOutcome
	for _, c := range r.Criteria {
		if c.EvaluationType != rubric.EvalRules {
			continue
		}
		fn, ok := e.evaluators[c.ID]
		if !ok {
			e.logger.Warn("no rule evaluator registered for criterion",
				zap.String("criterion", c.ID),
				zap.String("ticket", t.Number))
			outcomes = append(outcomes, rubric.NotApplicableOutcome(c.ID,
				"No rule evaluator registered",
				"Criterion could not be assessed by rules"))
			continue
		}
		outcomes = append(outcomes, fn(t, c))
	}
	return outcomes
}

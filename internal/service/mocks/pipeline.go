package mocks

import (
	"context"

	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/ticket"
)

// MockRuleEngine is a mock implementation of the RuleEngine interface.
type MockRuleEngine struct {
	EvaluateFunc func(t ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome
}

// Evaluate implements the RuleEngine interface
func (m *MockRuleEngine) Evaluate(t ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(t, r)
	}
	return nil
}

// MockJudgeEvaluator is a mock implementation of the JudgeEvaluator interface.
type MockJudgeEvaluator struct {
	EvaluateFunc func(ctx context.Context, t ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome
}

// Evaluate implements the JudgeEvaluator interface
func (m *MockJudgeEvaluator) Evaluate(ctx context.Context, t ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, t, r)
	}
	return nil
}

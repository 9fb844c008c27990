package service

import (
	"context"
	"time"

	"github.com/godilite/review-server/internal/judge"
	"github.com/godilite/review-server/internal/repository/models"
	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/ticket"
)

// RuleEngine runs the deterministic evaluators over a ticket.
type RuleEngine interface {
	Evaluate(t ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome
}

// JudgeEvaluator scores the judge-typed criteria of a rubric.
type JudgeEvaluator interface {
	Evaluate(ctx context.Context, t ticket.Ticket, r rubric.Rubric) []rubric.CriterionOutcome
}

// UsageReporter exposes the judge's accumulated token usage.
type UsageReporter interface {
	Usage() judge.UsageSnapshot
	ResetUsage() judge.UsageSnapshot
}

// EvaluationRepository defines the persistence operations the service needs.
type EvaluationRepository interface {
	SaveEvaluation(ctx context.Context, rec models.EvaluationRecord, outcomes []models.OutcomeRecord) (int64, error)
	GetLatestEvaluation(ctx context.Context, ticketNumber string) (models.EvaluationRecord, []models.OutcomeRecord, error)
	GetBandDistribution(ctx context.Context, start, end time.Time) ([]models.BandCount, error)
	GetPassRate(ctx context.Context, start, end time.Time) (models.PassRateResult, error)
	GetRecurringImprovements(ctx context.Context, start, end time.Time, limit int) ([]models.ImprovementCount, error)
}

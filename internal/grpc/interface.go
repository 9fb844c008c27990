package grpc

import (
	"context"
	"time"

	"github.com/godilite/review-server/internal/batch"
	"github.com/godilite/review-server/internal/scoring"
	"github.com/godilite/review-server/internal/service"
	"github.com/godilite/review-server/internal/ticket"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// ReviewService is the evaluation surface the handlers consume.
type ReviewService interface {
	EvaluateTicket(ctx context.Context, t ticket.Ticket, rubricID string) (scoring.EvaluationResult, error)
	EvaluateBatch(ctx context.Context, tickets []ticket.Ticket, rubricID string, onProgress batch.ProgressFunc) (batch.Result, error)
	GetEvaluation(ctx context.Context, ticketNumber string) (scoring.EvaluationResult, error)
	GetPassRate(ctx context.Context, start, end time.Time) (service.PassRateReport, error)
	GetBandDistribution(ctx context.Context, start, end time.Time) ([]service.BandSlice, error)
	GetImprovementAreas(ctx context.Context, start, end time.Time, limit int) ([]service.ImprovementArea, error)
	JudgeUsage() (service.UsageReport, bool)
	ResetJudgeUsage() (service.UsageReport, bool)
}

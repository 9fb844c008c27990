package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/godilite/review-server/internal/batch"
	"github.com/godilite/review-server/internal/scoring"
	"github.com/godilite/review-server/internal/service"
	"github.com/godilite/review-server/internal/ticket"
)

// MockReviewService is a mock implementation of the ReviewService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockReviewService struct {
	EvaluateTicketFunc      func(ctx context.Context, t ticket.Ticket, rubricID string) (scoring.EvaluationResult, error)
	EvaluateBatchFunc       func(ctx context.Context, tickets []ticket.Ticket, rubricID string, onProgress batch.ProgressFunc) (batch.Result, error)
	GetEvaluationFunc       func(ctx context.Context, ticketNumber string) (scoring.EvaluationResult, error)
	GetPassRateFunc         func(ctx context.Context, start, end time.Time) (service.PassRateReport, error)
	GetBandDistributionFunc func(ctx context.Context, start, end time.Time) ([]service.BandSlice, error)
	GetImprovementAreasFunc func(ctx context.Context, start, end time.Time, limit int) ([]service.ImprovementArea, error)
	JudgeUsageFunc          func() (service.UsageReport, bool)
	ResetJudgeUsageFunc     func() (service.UsageReport, bool)
}

// EvaluateTicket implements the ReviewService interface
func (m *MockReviewService) EvaluateTicket(ctx context.Context, t ticket.Ticket, rubricID string) (scoring.EvaluationResult, error) {
	if m.EvaluateTicketFunc != nil {
		return m.EvaluateTicketFunc(ctx, t, rubricID)
	}
	return scoring.EvaluationResult{}, errors.New("EvaluateTicketFunc not implemented")
}

// EvaluateBatch implements the ReviewService interface
func (m *MockReviewService) EvaluateBatch(ctx context.Context, tickets []ticket.Ticket, rubricID string, onProgress batch.ProgressFunc) (batch.Result, error) {
	if m.EvaluateBatchFunc != nil {
		return m.EvaluateBatchFunc(ctx, tickets, rubricID, onProgress)
	}
	return batch.Result{}, errors.New("EvaluateBatchFunc not implemented")
}

// GetEvaluation implements the ReviewService interface
func (m *MockReviewService) GetEvaluation(ctx context.Context, ticketNumber string) (scoring.EvaluationResult, error) {
	if m.GetEvaluationFunc != nil {
		return m.GetEvaluationFunc(ctx, ticketNumber)
	}
	return scoring.EvaluationResult{}, errors.New("GetEvaluationFunc not implemented")
}

// GetPassRate implements the ReviewService interface
func (m *MockReviewService) GetPassRate(ctx context.Context, start, end time.Time) (service.PassRateReport, error) {
	if m.GetPassRateFunc != nil {
		return m.GetPassRateFunc(ctx, start, end)
	}
	return service.PassRateReport{}, errors.New("GetPassRateFunc not implemented")
}

// GetBandDistribution implements the ReviewService interface
func (m *MockReviewService) GetBandDistribution(ctx context.Context, start, end time.Time) ([]service.BandSlice, error) {
	if m.GetBandDistributionFunc != nil {
		return m.GetBandDistributionFunc(ctx, start, end)
	}
	return nil, errors.New("GetBandDistributionFunc not implemented")
}

// GetImprovementAreas implements the ReviewService interface
func (m *MockReviewService) GetImprovementAreas(ctx context.Context, start, end time.Time, limit int) ([]service.ImprovementArea, error) {
	if m.GetImprovementAreasFunc != nil {
		return m.GetImprovementAreasFunc(ctx, start, end, limit)
	}
	return nil, errors.New("GetImprovementAreasFunc not implemented")
}

// JudgeUsage implements the ReviewService interface
func (m *MockReviewService) JudgeUsage() (service.UsageReport, bool) {
	if m.JudgeUsageFunc != nil {
		return m.JudgeUsageFunc()
	}
	return service.UsageReport{}, false
}

// ResetJudgeUsage implements the ReviewService interface
func (m *MockReviewService) ResetJudgeUsage() (service.UsageReport, bool) {
	if m.ResetJudgeUsageFunc != nil {
		return m.ResetJudgeUsageFunc()
	}
	return service.UsageReport{}, false
}

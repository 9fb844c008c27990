package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/godilite/review-server/internal/repository/models"
)

// MockEvaluationRepository is a mock implementation of the
// EvaluationRepository interface for testing the service layer.
type MockEvaluationRepository struct {
	SaveEvaluationFunc           func(ctx context.Context, rec models.EvaluationRecord, outcomes []models.OutcomeRecord) (int64, error)
	GetLatestEvaluationFunc      func(ctx context.Context, ticketNumber string) (models.EvaluationRecord, []models.OutcomeRecord, error)
	GetBandDistributionFunc      func(ctx context.Context, start, end time.Time) ([]models.BandCount, error)
	GetPassRateFunc              func(ctx context.Context, start, end time.Time) (models.PassRateResult, error)
	GetRecurringImprovementsFunc func(ctx context.Context, start, end time.Time, limit int) ([]models.ImprovementCount, error)
}

// SaveEvaluation implements the EvaluationRepository interface
func (m *MockEvaluationRepository) SaveEvaluation(ctx context.Context, rec models.EvaluationRecord, outcomes []models.OutcomeRecord) (int64, error) {
	if m.SaveEvaluationFunc != nil {
		return m.SaveEvaluationFunc(ctx, rec, outcomes)
	}
	return 1, nil
}

// GetLatestEvaluation implements the EvaluationRepository interface
func (m *MockEvaluationRepository) GetLatestEvaluation(ctx context.Context, ticketNumber string) (models.EvaluationRecord, []models.OutcomeRecord, error) {
	if m.GetLatestEvaluationFunc != nil {
		return m.GetLatestEvaluationFunc(ctx, ticketNumber)
	}
	return models.EvaluationRecord{}, nil, errors.New("GetLatestEvaluationFunc not implemented")
}

// GetBandDistribution implements the EvaluationRepository interface
func (m *MockEvaluationRepository) GetBandDistribution(ctx context.Context, start, end time.Time) ([]models.BandCount, error) {
	if m.GetBandDistributionFunc != nil {
		return m.GetBandDistributionFunc(ctx, start, end)
	}
	return nil, errors.New("GetBandDistributionFunc not implemented")
}

// GetPassRate implements the EvaluationRepository interface
func (m *MockEvaluationRepository) GetPassRate(ctx context.Context, start, end time.Time) (models.PassRateResult, error) {
	if m.GetPassRateFunc != nil {
		return m.GetPassRateFunc(ctx, start, end)
	}
	return models.PassRateResult{}, errors.New("GetPassRateFunc not implemented")
}

// GetRecurringImprovements implements the EvaluationRepository interface
func (m *MockEvaluationRepository) GetRecurringImprovements(ctx context.Context, start, end time.Time, limit int) ([]models.ImprovementCount, error) {
	if m.GetRecurringImprovementsFunc != nil {
		return m.GetRecurringImprovementsFunc(ctx, start, end, limit)
	}
	return nil, errors.New("GetRecurringImprovementsFunc not implemented")
}

// Package service composes the evaluation pipeline: deterministic rules, the
// external judge and the score aggregator, with results persisted for later
// reporting.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/godilite/review-server/internal/batch"
	"github.com/godilite/review-server/internal/judge"
	"github.com/godilite/review-server/internal/repository"
	"github.com/godilite/review-server/internal/rubric"
	"github.com/godilite/review-server/internal/scoring"
	"github.com/godilite/review-server/internal/ticket"
)

const (
	dbTimeout = 1 * time.Second

	defaultImprovementLimit = 5
)

var (
	ErrUnknownRubric      = errors.New("unknown rubric")
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrStorageFailure     = errors.New("storage failure")
)

// EvaluationService runs ticket evaluations and answers reporting queries.
type EvaluationService struct {
	rules       RuleEngine
	judge       JudgeEvaluator
	storage     EvaluationRepository
	usage       UsageReporter
	rubrics     map[string]rubric.Rubric
	defaultID   string
	concurrency int
	logger      *zap.Logger
}

// Option customises an EvaluationService.
type Option func(*EvaluationService)

// WithRubrics replaces the built-in rubric set. The first argument becomes
// the default rubric.
func WithRubrics(rubrics ...rubric.Rubric) Option {
	return func(s *EvaluationService) {
		s.rubrics = make(map[string]rubric.Rubric, len(rubrics))
		for i, r := range rubrics {
			if i == 0 {
				s.defaultID = r.ID
			}
			s.rubrics[r.ID] = r
		}
	}
}

// WithBatchConcurrency sets how many tickets a batch evaluates in parallel.
func WithBatchConcurrency(n int) Option {
	return func(s *EvaluationService) { s.concurrency = n }
}

// WithUsageReporter attaches the judge's token usage reporter.
func WithUsageReporter(u UsageReporter) Option {
	return func(s *EvaluationService) { s.usage = u }
}

// NewEvaluationService creates a new EvaluationService instance.
func NewEvaluationService(rules RuleEngine, judgeEval JudgeEvaluator, storage EvaluationRepository, logger *zap.Logger, opts ...Option) *EvaluationService {
	if rules == nil || judgeEval == nil {
		panic("rules and judge evaluators must not be nil")
	}
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}

	s := &EvaluationService{
		rules:       rules,
		judge:       judgeEval,
		storage:     storage,
		concurrency: 1,
		logger:      logger.Named("evaluation"),
	}
	WithRubrics(rubric.IncidentReview(), rubric.OnsiteReview())(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *EvaluationService) rubricByID(id string) (rubric.Rubric, error) {
	if id == "" {
		id = s.defaultID
	}
	r, ok := s.rubrics[id]
	if !ok {
		return rubric.Rubric{}, fmt.Errorf("%w: %q", ErrUnknownRubric, id)
	}
	return r, nil
}

// EvaluateTicket runs the full pipeline for one ticket: rules first, then
// the judge, then aggregation. The result is persisted best-effort; a
// storage failure is logged but never discards a computed evaluation.
func (s *EvaluationService) EvaluateTicket(ctx context.Context, t ticket.Ticket, rubricID string) (scoring.EvaluationResult, error) {
	r, err := s.rubricByID(rubricID)
	if err != nil {
		return scoring.EvaluationResult{}, err
	}

	start := time.Now()
	outcomes := s.rules.Evaluate(t, r)
	outcomes = append(outcomes, s.judge.Evaluate(ctx, t, r)...)
	result := scoring.Aggregate(t.Number, r, outcomes, time.Since(start))

	s.logger.Info("ticket evaluated",
		zap.String("ticket", t.Number),
		zap.String("rubric", r.ID),
		zap.Int("final_score", result.FinalScore),
		zap.String("band", string(result.Band)),
		zap.Bool("passed", result.Passed),
		zap.Duration("took", result.EvaluationTime))

	s.persist(ctx, result)
	return result, nil
}

func (s *EvaluationService) persist(ctx context.Context, result scoring.EvaluationResult) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := s.storage.SaveEvaluation(dbCtx, toRecord(result), toOutcomeRecords(result.Outcomes)); err != nil {
		s.logger.Error("failed to persist evaluation",
			zap.String("ticket", result.TicketNumber),
			zap.Error(err))
	}
}

// EvaluateBatch runs the pipeline over a whole batch with the configured
// concurrency. Per-ticket failures land in the result's error list; the
// batch itself only fails on context cancellation before any work happens.
func (s *EvaluationService) EvaluateBatch(ctx context.Context, tickets []ticket.Ticket, rubricID string, onProgress batch.ProgressFunc) (batch.Result, error) {
	r, err := s.rubricByID(rubricID)
	if err != nil {
		return batch.Result{}, err
	}

	orchestrator := batch.NewOrchestrator(
		func(ctx context.Context, t ticket.Ticket) (scoring.EvaluationResult, error) {
			return s.EvaluateTicket(ctx, t, r.ID)
		},
		batch.WithConcurrency(s.concurrency),
		batch.WithProgress(onProgress),
		batch.WithLogger(s.logger),
	)

	res := orchestrator.Run(ctx, tickets)
	s.logger.Info("batch evaluated",
		zap.String("rubric", r.ID),
		zap.Int("tickets", len(tickets)),
		zap.Int("succeeded", len(res.Results)),
		zap.Int("failed", len(res.Errors)),
		zap.Duration("elapsed", res.Summary.TotalElapsed))
	return res, nil
}

// GetEvaluation returns the most recent stored evaluation for a ticket.
func (s *EvaluationService) GetEvaluation(ctx context.Context, ticketNumber string) (scoring.EvaluationResult, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rec, outcomes, err := s.storage.GetLatestEvaluation(dbCtx, ticketNumber)
	if err != nil {
		if errors.Is(err, repository.ErrEvaluationNotFound) {
			return scoring.EvaluationResult{}, ErrEvaluationNotFound
		}
		return scoring.EvaluationResult{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return fromRecord(rec, outcomes), nil
}

// GetPassRate reports the pass rate over the requested window.
func (s *EvaluationService) GetPassRate(ctx context.Context, start, end time.Time) (PassRateReport, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	result, err := s.storage.GetPassRate(dbCtx, start, end)
	if err != nil {
		return PassRateReport{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if result.Total == 0 {
		return PassRateReport{}, ErrEvaluationNotFound
	}

	report := PassRateReport{
		Total:    result.Total,
		Passed:   result.Passed,
		PassRate: float64(result.Passed) / float64(result.Total) * 100,
	}
	return report, nil
}

// GetBandDistribution reports per-band evaluation counts over the window.
func (s *EvaluationService) GetBandDistribution(ctx context.Context, start, end time.Time) ([]BandSlice, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	counts, err := s.storage.GetBandDistribution(dbCtx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(counts) == 0 {
		return nil, ErrEvaluationNotFound
	}

	slices := make([]BandSlice, len(counts))
	for i, bc := range counts {
		slices[i] = BandSlice{Band: bc.Band, Count: bc.Count}
	}
	return slices, nil
}

// GetImprovementAreas reports the criteria that most often scored below the
// improvement threshold over the window.
func (s *EvaluationService) GetImprovementAreas(ctx context.Context, start, end time.Time, limit int) ([]ImprovementArea, error) {
	if limit <= 0 {
		limit = defaultImprovementLimit
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	counts, err := s.storage.GetRecurringImprovements(dbCtx, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	areas := make([]ImprovementArea, len(counts))
	for i, ic := range counts {
		areas[i] = ImprovementArea{CriterionID: ic.CriterionID, Count: ic.Count}
	}
	return areas, nil
}

// JudgeUsage returns the judge's accumulated token usage, if a reporter was
// attached.
func (s *EvaluationService) JudgeUsage() (report UsageReport, ok bool) {
	if s.usage == nil {
		return UsageReport{}, false
	}
	snap := s.usage.Usage()
	return usageReport(snap), true
}

// ResetJudgeUsage zeroes the judge's usage counters and returns the final
// tally.
func (s *EvaluationService) ResetJudgeUsage() (report UsageReport, ok bool) {
	if s.usage == nil {
		return UsageReport{}, false
	}
	return usageReport(s.usage.ResetUsage()), true
}

func usageReport(snap judge.UsageSnapshot) UsageReport {
	return UsageReport{
		PromptTokens:     snap.PromptTokens,
		CompletionTokens: snap.CompletionTokens,
		TotalTokens:      snap.TotalTokens,
		RequestCount:     snap.RequestCount,
		EstimatedCost:    snap.EstimatedCost(),
	}
}

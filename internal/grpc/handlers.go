package grpc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/godilite/review-server/api/v1"
	"github.com/godilite/review-server/internal/batch"
	"github.com/godilite/review-server/internal/scoring"
	"github.com/godilite/review-server/internal/service"
	"github.com/godilite/review-server/internal/ticket"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
	// Batch runs call the judge per ticket; they get a far longer budget.
	batchGRPCTimeout = 30 * time.Minute

	maxBatchSize = 500
)

type CacheKeyType string

const (
	cacheKeyPassRate         CacheKeyType = "grpc:pass_rate"
	cacheKeyBandDistribution CacheKeyType = "grpc:band_distribution"
	cacheKeyImprovements     CacheKeyType = "grpc:improvement_areas"
)

type GRPCHandlers struct {
	pb.UnimplementedTicketReviewServer
	review   ReviewService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(review ReviewService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if review == nil {
		panic("nil ReviewService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		review:   review,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func parsePeriod(start, end *timestamppb.Timestamp) (s, e time.Time, err error) {
	s = start.AsTime()
	e = end.AsTime()

	if s.IsZero() || e.IsZero() || start == nil || end == nil {
		err = status.Error(codes.InvalidArgument, "start and end dates are required")
		return
	}
	if e.Before(s) {
		err = status.Error(codes.InvalidArgument, "end date must be after start date")
		return
	}
	return
}

func normalizeKey(prefix CacheKeyType, start, end time.Time) string {
	s := start.UTC().Truncate(24 * time.Hour).Format("2006-01-02")
	e := end.UTC().Truncate(24 * time.Hour).Format("2006-01-02")
	return fmt.Sprintf("%s:%s:%s", prefix, s, e)
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrUnknownRubric):
		s.logger.Info("unknown rubric requested", zap.String("op", op))
		return status.Error(codes.InvalidArgument, "unknown rubric")
	case errors.Is(err, service.ErrEvaluationNotFound):
		s.logger.Info("no evaluations found", zap.String("op", op))
		return status.Error(codes.NotFound, "no evaluations found for the given request")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) EvaluateTicket(ctx context.Context, req *pb.EvaluateTicketRequest) (*pb.EvaluationResponse, error) {
	if req.GetTicket() == nil || req.GetTicket().GetNumber() == "" {
		return nil, status.Error(codes.InvalidArgument, "ticket with a ticket number is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := s.review.EvaluateTicket(ctx, ticketFromProto(req.GetTicket()), req.GetRubricId())
	if err != nil {
		return nil, s.handleError(ctx, "EvaluateTicket", err)
	}
	return toProtoResult(result), nil
}

func (s *GRPCHandlers) EvaluateBatch(ctx context.Context, req *pb.EvaluateBatchRequest) (*pb.EvaluateBatchResponse, error) {
	if len(req.GetTickets()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one ticket is required")
	}
	if len(req.GetTickets()) > maxBatchSize {
		return nil, status.Errorf(codes.InvalidArgument, "batch exceeds the %d ticket limit", maxBatchSize)
	}

	ctx, cancel := context.WithTimeout(ctx, batchGRPCTimeout)
	defer cancel()

	tickets := make([]ticket.Ticket, len(req.GetTickets()))
	for i, t := range req.GetTickets() {
		tickets[i] = ticketFromProto(t)
	}

	res, err := s.review.EvaluateBatch(ctx, tickets, req.GetRubricId(), s.logProgress(len(tickets)))
	if err != nil {
		return nil, s.handleError(ctx, "EvaluateBatch", err)
	}
	return toProtoBatch(res), nil
}

// logProgress reports batch progress through the server log at coarse steps
// so long runs remain observable without flooding it.
func (s *GRPCHandlers) logProgress(total int) batch.ProgressFunc {
	step := total / 10
	if step < 1 {
		step = 1
	}
	return func(p batch.ProgressSnapshot) {
		if p.Completed%step != 0 && p.Completed != p.Total {
			return
		}
		fields := []zap.Field{
			zap.Int("completed", p.Completed),
			zap.Int("total", p.Total),
			zap.Int("errors", p.ErrorCount),
			zap.Duration("elapsed", p.Elapsed),
		}
		if p.HasETA {
			fields = append(fields, zap.Duration("eta", p.ETA))
		}
		s.logger.Info("batch progress", fields...)
	}
}

func (s *GRPCHandlers) GetEvaluation(ctx context.Context, req *pb.GetEvaluationRequest) (*pb.EvaluationResponse, error) {
	if req.GetTicketNumber() == "" {
		return nil, status.Error(codes.InvalidArgument, "ticket number is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := s.review.GetEvaluation(ctx, req.GetTicketNumber())
	if err != nil {
		return nil, s.handleError(ctx, "GetEvaluation", err)
	}
	return toProtoResult(result), nil
}

func (s *GRPCHandlers) GetPassRate(ctx context.Context, req *pb.TimePeriodRequest) (*pb.PassRateResponse, error) {
	start, end, err := parsePeriod(req.GetStartDate(), req.GetEndDate())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyPassRate, start, end)
	report, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.PassRateReport, error) {
		return s.review.GetPassRate(fetchCtx, start, end)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetPassRate", err)
	}

	return &pb.PassRateResponse{
		Total:    report.Total,
		Passed:   report.Passed,
		PassRate: report.PassRate,
	}, nil
}

func (s *GRPCHandlers) GetBandDistribution(ctx context.Context, req *pb.TimePeriodRequest) (*pb.BandDistributionResponse, error) {
	start, end, err := parsePeriod(req.GetStartDate(), req.GetEndDate())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeyBandDistribution, start, end)
	slices, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.BandSlice, error) {
		return s.review.GetBandDistribution(fetchCtx, start, end)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetBandDistribution", err)
	}

	counts := make(map[string]int64, len(slices))
	for _, bs := range slices {
		counts[bs.Band] = bs.Count
	}
	return &pb.BandDistributionResponse{BandCounts: counts}, nil
}

func (s *GRPCHandlers) GetImprovementAreas(ctx context.Context, req *pb.ImprovementAreasRequest) (*pb.ImprovementAreasResponse, error) {
	start, end, err := parsePeriod(req.GetStartDate(), req.GetEndDate())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	limit := int(req.GetLimit())
	cacheKey := fmt.Sprintf("%s:%d", normalizeKey(cacheKeyImprovements, start, end), limit)
	areas, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.ImprovementArea, error) {
		return s.review.GetImprovementAreas(fetchCtx, start, end, limit)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetImprovementAreas", err)
	}

	out := make([]*pb.ImprovementArea, len(areas))
	for i, a := range areas {
		out[i] = &pb.ImprovementArea{CriterionId: a.CriterionID, Count: a.Count}
	}
	return &pb.ImprovementAreasResponse{Areas: out}, nil
}

func (s *GRPCHandlers) GetJudgeUsage(ctx context.Context, req *pb.JudgeUsageRequest) (*pb.JudgeUsageResponse, error) {
	var (
		report service.UsageReport
		ok     bool
	)
	if req.GetReset_() {
		report, ok = s.review.ResetJudgeUsage()
	} else {
		report, ok = s.review.JudgeUsage()
	}
	if !ok {
		return nil, status.Error(codes.Unavailable, "judge usage reporting is not configured")
	}

	return &pb.JudgeUsageResponse{
		PromptTokens:     report.PromptTokens,
		CompletionTokens: report.CompletionTokens,
		TotalTokens:      report.TotalTokens,
		RequestCount:     report.RequestCount,
		EstimatedCost:    report.EstimatedCost,
	}, nil
}

func ticketFromProto(t *pb.Ticket) ticket.Ticket {
	out := ticket.Ticket{
		Number:           t.GetNumber(),
		SysID:            t.GetSysId(),
		Category:         t.GetCategory(),
		Subcategory:      t.GetSubcategory(),
		ContactType:      t.GetContactType(),
		Priority:         strconv.Itoa(int(t.GetPriority())),
		ShortDescription: t.GetShortDescription(),
		Description:      t.GetDescription(),
		WorkNotes:        t.GetWorkNotes(),
		CloseNotes:       t.GetCloseNotes(),
		BusinessService:  t.GetBusinessService(),
		ConfigItem:       t.GetConfigItem(),
		OpenedFor:        t.GetOpenedFor(),
		LineOfBusiness:   t.GetLineOfBusiness(),
	}
	if t.GetOpenedAt() != nil {
		out.OpenedAt = t.GetOpenedAt().AsTime()
	}
	if t.GetResolvedAt() != nil {
		out.ResolvedAt = t.GetResolvedAt().AsTime()
	}
	if t.GetClosedAt() != nil {
		out.ClosedAt = t.GetClosedAt().AsTime()
	}
	return out
}

func toProtoResult(r scoring.EvaluationResult) *pb.EvaluationResponse {
	outcomes := make([]*pb.CriterionOutcome, len(r.Outcomes))
	for i, o := range r.Outcomes {
		outcomes[i] = &pb.CriterionOutcome{
			CriterionId: o.CriterionID,
			Kind:        o.Kind.String(),
			Points:      int32(o.Points),
			MaxPoints:   int32(o.MaxPoints),
			Evidence:    o.Evidence,
			Reasoning:   o.Reasoning,
			Coaching:    o.Coaching,
		}
	}
	return &pb.EvaluationResponse{
		TicketNumber:   r.TicketNumber,
		RubricId:       r.RubricID,
		BaseScore:      int32(r.BaseScore),
		DeductionTotal: int32(r.DeductionTotal),
		AutoFail:       r.AutoFail,
		AutoFailReason: r.AutoFailReason,
		FinalScore:     int32(r.FinalScore),
		MaxScore:       int32(r.MaxScore),
		Percentage:     r.Percentage,
		Band:           string(r.Band),
		Passed:         r.Passed,
		Outcomes:       outcomes,
		Strengths:      r.Strengths,
		Improvements:   r.Improvements,
		EvaluatedAt:    timestamppb.New(r.EvaluatedAt),
		EvaluationMs:   r.EvaluationTime.Milliseconds(),
	}
}

func toProtoBatch(res batch.Result) *pb.EvaluateBatchResponse {
	results := make([]*pb.EvaluationResponse, len(res.Results))
	for i, r := range res.Results {
		results[i] = toProtoResult(r)
	}
	errs := make([]*pb.TicketError, len(res.Errors))
	for i, e := range res.Errors {
		errs[i] = &pb.TicketError{TicketNumber: e.TicketNumber, Message: e.Message}
	}

	bands := make(map[string]int64, len(res.Summary.BandDistribution))
	for band, count := range res.Summary.BandDistribution {
		bands[string(band)] = int64(count)
	}
	return &pb.EvaluateBatchResponse{
		Results: results,
		Errors:  errs,
		Summary: &pb.BatchSummary{
			TotalTickets:      int32(res.Summary.TotalTickets),
			PassedCount:       int32(res.Summary.PassedCount),
			FailedCount:       int32(res.Summary.FailedCount),
			AverageScore:      res.Summary.AverageScore,
			AveragePercentage: res.Summary.AveragePercentage,
			BandDistribution:  bands,
			TopImprovements:   res.Summary.TopImprovements,
			TotalElapsedMs:    res.Summary.TotalElapsed.Milliseconds(),
		},
	}
}
